package domain

// LevelInfo is an aggregated snapshot of one price level: the price and
// the summed remaining quantity of every order resting at it.
type LevelInfo struct {
	Price    Price
	Quantity Quantity
}

// LevelsInfo pairs the two sides' snapshots. Bids are ordered
// best-first (descending price); Asks are ordered best-first
// (ascending price).
type LevelsInfo struct {
	Bids []LevelInfo
	Asks []LevelInfo
}
