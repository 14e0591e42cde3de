package orderbook

import "limitbook/domain"

// crosses reports whether an order on side resting (or arriving) at
// price would cross the opposite side's current touch. Grounded
// directly on OrderBook::canMatch in the original C++ implementation
// (_examples/original_source/src/order_book.cpp): for a buy, the best
// ask must be at or below price; for a sell, the best bid must be at
// or above price.
func (b *OrderBook) crosses(side domain.Side, price domain.Price) bool {
	if side == domain.Buy {
		level := b.asks.best()
		return level != nil && level.Price <= price
	}
	level := b.bids.best()
	return level != nil && level.Price >= price
}

// worstOppositePrice returns the least favorable resting price on the
// opposite side of side: the highest ask for a buy, the lowest bid for
// a sell. It is the price a Market order converts to, guaranteeing the
// converted IOC crosses every resting level on that side.
func (b *OrderBook) worstOppositePrice(side domain.Side) (domain.Price, bool) {
	levels := b.oppositeIndex(side).levels()
	if len(levels) == 0 {
		return domain.InvalidPrice, false
	}
	return levels[len(levels)-1].Price, true
}

// fokAvailable walks the opposite side in match order, accumulating
// resting quantity, and stops as soon as a level would not cross price.
// It never mutates the book.
func (b *OrderBook) fokAvailable(side domain.Side, price domain.Price, needed domain.Quantity) bool {
	var acc domain.Quantity
	for _, level := range b.oppositeIndex(side).levels() {
		if side == domain.Buy && level.Price > price {
			break
		}
		if side == domain.Sell && level.Price < price {
			break
		}
		acc += level.Volume
		if acc >= needed {
			return true
		}
	}
	return acc >= needed
}

// matchLocked runs the price-time priority cascade until the touch no
// longer crosses, producing trades in liquidity-proximity order (best
// prices first) and FIFO order within each price level. Caller must
// hold b.mu.
func (b *OrderBook) matchLocked() []domain.Trade {
	var trades []domain.Trade
	for {
		bidLevel := b.bids.best()
		askLevel := b.asks.best()
		if bidLevel == nil || askLevel == nil {
			break
		}
		if bidLevel.Price < askLevel.Price {
			break
		}

		for bidLevel.Orders.len() > 0 && askLevel.Orders.len() > 0 {
			buyOrder := bidLevel.Orders.front()
			sellOrder := askLevel.Orders.front()

			qty := buyOrder.RemainingQty
			if sellOrder.RemainingQty < qty {
				qty = sellOrder.RemainingQty
			}

			trades = append(trades, domain.Trade{
				Quantity: qty,
				Buy:      domain.TradeSideInfo{OrderId: buyOrder.ID, Price: bidLevel.Price},
				Sell:     domain.TradeSideInfo{OrderId: sellOrder.ID, Price: askLevel.Price},
			})

			buyOrder.Fill(qty)
			sellOrder.Fill(qty)
			bidLevel.Volume -= qty
			askLevel.Volume -= qty

			if buyOrder.IsFilled() {
				b.cancelLocked(buyOrder)
			}
			if sellOrder.IsFilled() {
				b.cancelLocked(sellOrder)
			}
		}
	}
	return trades
}
