package domain

// Amendment is an immutable request to replace a resting order with
// one at a new price and quantity. Side and type are not carried here;
// they are inherited from the order being replaced (see
// OrderBook.UpdateOrder), matching how the original C++ AdjustableOrder
// inherits side and type through its own toOrder(side, type).
type Amendment struct {
	ID       OrderId
	NewPrice Price
	NewQty   Quantity
}

// ToOrder materializes the replacement order, inheriting side and type
// from the order being amended. Grounded directly on
// AdjustableOrder::toOrder in the original implementation.
func (a Amendment) ToOrder(side Side, typ OrderType) *Order {
	return NewOrder(a.ID, typ, side, a.NewPrice, a.NewQty)
}
