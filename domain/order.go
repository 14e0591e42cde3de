package domain

import "fmt"

// Order is a mutable order record. Identity, type, side and price are
// fixed at construction (type and price are rewritten exactly once, by
// the book, when a Market order converts to IOC); InitialQty never changes;
// RemainingQty is driven down by fills until the order is fully filled,
// cancelled, or amended away.
//
// Locator is an opaque reference to the order's position within its
// price-level FIFO queue, set by the book on insertion and cleared on
// removal. It lets the book delete an order in O(1) without scanning
// the level. Callers must not touch it.
type Order struct {
	ID           OrderId
	Type         OrderType
	Side         Side
	Price        Price
	InitialQty   Quantity
	RemainingQty Quantity
	Locator      any
}

// NewOrder constructs an order ready for OrderBook.PlaceOrder. Market
// orders are constructed with price InvalidPrice; the book rewrites it
// on acceptance.
func NewOrder(id OrderId, typ OrderType, side Side, price Price, qty Quantity) *Order {
	return &Order{
		ID:           id,
		Type:         typ,
		Side:         side,
		Price:        price,
		InitialQty:   qty,
		RemainingQty: qty,
	}
}

// NewMarketOrder constructs a market order, which carries no limit
// price until the book converts it to IOC at acceptance.
func NewMarketOrder(id OrderId, side Side, qty Quantity) *Order {
	return NewOrder(id, Market, side, InvalidPrice, qty)
}

// FilledQty is the quantity already executed.
func (o *Order) FilledQty() Quantity {
	return o.InitialQty - o.RemainingQty
}

// IsFilled reports whether the order has no remaining quantity.
func (o *Order) IsFilled() bool {
	return o.RemainingQty == 0
}

// Fill reduces the remaining quantity by qty. Overfilling a resting
// order can never happen from correct matching logic; it is a
// programming error and panics rather than silently corrupting the
// book, mirroring Order::fill's std::runtime_error in the C++ original.
func (o *Order) Fill(qty Quantity) {
	if qty > o.RemainingQty {
		panic(fmt.Sprintf("domain: fill %d exceeds remaining %d on order %d", qty, o.RemainingQty, o.ID))
	}
	o.RemainingQty -= qty
}

// ToIOC converts a Market order into an IOC resting at price, the
// worst currently available level on the opposite side. Calling it on
// anything but a Market order is a programming error.
func (o *Order) ToIOC(price Price) {
	if o.Type != Market {
		panic(fmt.Sprintf("domain: ToIOC called on non-market order %d (type %s)", o.ID, o.Type))
	}
	o.Type = IOC
	o.Price = price
}
