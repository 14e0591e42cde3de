package orderbook

import (
	"time"

	"limitbook/domain"
)

// nextMarketClose returns the next instant at closeHour:00 local time
// strictly after now (today's close if it hasn't happened yet,
// otherwise tomorrow's).
func nextMarketClose(now time.Time, closeHour int) time.Time {
	closeAt := time.Date(now.Year(), now.Month(), now.Day(), closeHour, 0, 0, 0, now.Location())
	if !closeAt.After(now) {
		closeAt = closeAt.Add(24 * time.Hour)
	}
	return closeAt
}

// dayOrderIDsLocked collects the ids of every resting Day order across
// both sides. Caller must hold b.mu.
func (b *OrderBook) dayOrderIDsLocked() []domain.OrderId {
	var ids []domain.OrderId
	for id, order := range b.index {
		if order.Type == domain.Day {
			ids = append(ids, id)
		}
	}
	return ids
}

// runExpiryWorker is the single long-lived background goroutine owned
// by the book (spec §4.G). Each iteration sleeps until the next market
// close or shutdown, whichever comes first; on a real close it collects
// day-order ids under the lock, releases it, and cancels each one
// through the normal cancellation path — never holding the lock across
// the whole sweep, so a concurrent caller is never blocked by it for
// longer than a single cancel.
func (b *OrderBook) runExpiryWorker() {
	defer b.wg.Done()

	for {
		now := b.clock()
		deadline := nextMarketClose(now, b.marketCloseHour)
		wait := deadline.Sub(now)
		if wait < 0 {
			wait = 0
		}
		timer := b.newTimer(wait)

		select {
		case <-b.stopCh:
			timer.Stop()
			return
		case <-timer.C:
		}

		b.mu.Lock()
		ids := b.dayOrderIDsLocked()
		b.mu.Unlock()

		if len(ids) > 0 {
			b.log.Info().Int("day_orders", len(ids)).Msg("expiring day orders at market close")
		}
		for _, id := range ids {
			// CancelOrder re-acquires the lock per id; another
			// caller may cancel the same id first, which is a safe
			// no-op (spec §9, "Expiry worker and re-entrancy").
			b.CancelOrder(id)
		}
	}
}
