package domain

// TradeSideInfo records one side's execution detail for a trade: the
// order that participated and the price at which its side executed.
type TradeSideInfo struct {
	OrderId OrderId
	Price   Price
}

// Trade is an immutable record of one fill. Buy.Price and Sell.Price
// are recorded independently (each side's own resting limit, or the
// aggressor's limit when the aggressor itself is the one filled at its
// own price) even though for a non-crossing match they coincide.
type Trade struct {
	Quantity Quantity
	Buy      TradeSideInfo
	Sell     TradeSideInfo
}
