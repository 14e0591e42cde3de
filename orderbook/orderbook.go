// Package orderbook implements a single-instrument, price-time-priority
// limit order book: price levels ordered per side, a FIFO queue per
// level, an id index for O(1)/O(log P) cancel and amend, the matching
// cascade, the order-type state machine (market→IOC, FOK precheck, IOC
// residual cancellation, GTC/day resting), and a background worker that
// expires day orders at market close.
package orderbook

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"limitbook/domain"
)

// defaultMarketCloseHour is the build-time constant from spec §6: day
// orders expire at 16:00 local time.
const defaultMarketCloseHour = 16

// IndexKind selects which data structure backs each side's price
// levels. Both give identical price-time-priority behavior.
type IndexKind = indexKind

const (
	RBTIndex  = rbtKind
	ListIndex = listKind
)

// OrderBook is the core matching engine for one instrument. It is
// neither copyable nor movable: its price indices hold direct pointers
// into live price levels, and its expiry worker's lifetime is tied to
// this specific instance. Copy an *OrderBook, never an OrderBook value.
type OrderBook struct {
	mu sync.Mutex

	bids priceIndex
	asks priceIndex
	// index mirrors spec's {order, locator} pairing as one struct: an
	// *domain.Order already carries both its own fields and its
	// Locator into the price-level queue it currently rests in.
	index map[domain.OrderId]*domain.Order

	marketCloseHour int
	clock           func() time.Time
	// newTimer creates the expiry worker's wakeup timer from a wait
	// duration computed against clock. Tests that accelerate clock
	// must scale newTimer's duration by the same factor, since a
	// faster clock alone does not shrink a duration already handed
	// to time.NewTimer (real wall-clock time). No exported Option
	// wraps this: it exists purely to let white-box tests drive the
	// worker deterministically.
	newTimer func(time.Duration) *time.Timer
	log      zerolog.Logger

	stopCh    chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// Option configures an OrderBook at construction.
type Option func(*OrderBook)

// WithIndexKind overrides the default red-black-tree price index with
// an alternate backend. Default is RBTIndex.
func WithIndexKind(kind IndexKind) Option {
	return func(b *OrderBook) {
		b.bids = newPriceIndex(kind, true)
		b.asks = newPriceIndex(kind, false)
	}
}

// WithMarketCloseHour overrides the 16:00 market-close hour, mainly so
// tests can exercise day-order expiry without waiting for a real close.
func WithMarketCloseHour(hour int) Option {
	return func(b *OrderBook) { b.marketCloseHour = hour }
}

// WithClock overrides the wall-clock time source the expiry worker
// uses to compute the next market close. Tests substitute a fake clock
// to exercise expiry deterministically.
func WithClock(now func() time.Time) Option {
	return func(b *OrderBook) { b.clock = now }
}

// WithLogger overrides the zerolog logger the expiry worker reports
// its sweeps through. Defaults to a disabled logger so an OrderBook
// built without a logger stays silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *OrderBook) { b.log = logger }
}

// withTimerFactory overrides the expiry worker's timer constructor.
// Unexported: it exists only so a white-box test can accelerate the
// worker's wait alongside WithClock, applied (like every Option)
// before the worker goroutine starts, so there is no race with its
// first read of b.newTimer.
func withTimerFactory(f func(time.Duration) *time.Timer) Option {
	return func(b *OrderBook) { b.newTimer = f }
}

// NewOrderBook creates an order book and starts its expiry worker.
// Call Close to stop the worker and release its goroutine.
func NewOrderBook(opts ...Option) *OrderBook {
	b := &OrderBook{
		bids:            newPriceIndex(rbtKind, true),
		asks:            newPriceIndex(rbtKind, false),
		index:           make(map[domain.OrderId]*domain.Order),
		marketCloseHour: defaultMarketCloseHour,
		clock:           time.Now,
		newTimer:        time.NewTimer,
		log:             zerolog.Nop(),
		stopCh:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.wg.Add(1)
	go b.runExpiryWorker()
	return b
}

// Close signals the expiry worker to stop and blocks until it exits.
// Safe to call more than once.
func (b *OrderBook) Close() {
	b.closeOnce.Do(func() { close(b.stopCh) })
	b.wg.Wait()
}

func (b *OrderBook) sideIndex(side domain.Side) priceIndex {
	if side == domain.Buy {
		return b.bids
	}
	return b.asks
}

func (b *OrderBook) oppositeIndex(side domain.Side) priceIndex {
	if side == domain.Buy {
		return b.asks
	}
	return b.bids
}

// insertLocked appends order to the tail of its side's level and
// registers it in the id index. Caller must hold b.mu.
func (b *OrderBook) insertLocked(order *domain.Order) {
	b.sideIndex(order.Side).insert(order)
	b.index[order.ID] = order
}

// cancelLocked removes order from its level's queue (dropping the
// level if it becomes empty) and from the id index. It is the single
// removal path shared by explicit cancellation, IOC/market residual
// cleanup, and fully-filled orders falling out of the book during
// matching. Caller must hold b.mu.
func (b *OrderBook) cancelLocked(order *domain.Order) {
	b.sideIndex(order.Side).remove(order)
	delete(b.index, order.ID)
}

// placeLocked runs the full order-type state machine from spec §4.F.
// Caller must hold b.mu.
func (b *OrderBook) placeLocked(order *domain.Order) []domain.Trade {
	if _, exists := b.index[order.ID]; exists {
		return nil
	}

	cancelResidual := false
	switch order.Type {
	case domain.Market:
		worst, ok := b.worstOppositePrice(order.Side)
		if !ok {
			return nil
		}
		order.ToIOC(worst)
		cancelResidual = true
	case domain.FOK:
		if !b.fokAvailable(order.Side, order.Price, order.InitialQty) {
			return nil
		}
	case domain.IOC:
		if !b.crosses(order.Side, order.Price) {
			return nil
		}
		cancelResidual = true
	}

	b.insertLocked(order)
	trades := b.matchLocked()

	if cancelResidual && !order.IsFilled() {
		b.cancelLocked(order)
	}
	return trades
}

// PlaceOrder submits order for matching, returning the trades it
// produced. It silently rejects (returns an empty slice) a duplicate
// id, an unfulfillable market/FOK/IOC order — see spec §4.F and §7;
// none of these are recoverable errors, each is a valid market state.
func (b *OrderBook) PlaceOrder(order *domain.Order) []domain.Trade {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.placeLocked(order)
}

// CancelOrder removes id from the book. No-op if id is absent.
func (b *OrderBook) CancelOrder(id domain.OrderId) {
	b.mu.Lock()
	defer b.mu.Unlock()
	order, ok := b.index[id]
	if !ok {
		return
	}
	b.cancelLocked(order)
}

// UpdateOrder replaces the order named by amend.ID with one at its new
// price and quantity, inheriting side and type from the order being
// replaced. The replacement re-enters at the tail of its new price
// level: amendment deliberately loses time priority. No-op if the id
// is absent.
func (b *OrderBook) UpdateOrder(amend domain.Amendment) []domain.Trade {
	b.mu.Lock()
	defer b.mu.Unlock()
	existing, ok := b.index[amend.ID]
	if !ok {
		return nil
	}
	side, typ := existing.Side, existing.Type
	b.cancelLocked(existing)
	return b.placeLocked(amend.ToOrder(side, typ))
}

// LevelsInfo snapshots both sides by price level, best-first (bids
// descending, asks ascending). It never mutates book state.
func (b *OrderBook) LevelsInfo() domain.LevelsInfo {
	b.mu.Lock()
	defer b.mu.Unlock()

	bidLevels := b.bids.levels()
	askLevels := b.asks.levels()
	info := domain.LevelsInfo{
		Bids: make([]domain.LevelInfo, 0, len(bidLevels)),
		Asks: make([]domain.LevelInfo, 0, len(askLevels)),
	}
	for _, l := range bidLevels {
		info.Bids = append(info.Bids, domain.LevelInfo{Price: l.Price, Quantity: l.Volume})
	}
	for _, l := range askLevels {
		info.Asks = append(info.Asks, domain.LevelInfo{Price: l.Price, Quantity: l.Volume})
	}
	return info
}

// Size returns the count of resting orders across both sides.
func (b *OrderBook) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.index)
}
