package orderbook

import "limitbook/domain"

// priceLevel aggregates every order resting at one price. Orders form a
// FIFO queue so that time priority within a level is just "front of the
// queue trades first"; Volume is the summed remaining quantity, kept
// incrementally so levelsInfo never has to re-scan a queue it is about
// to read again on the next snapshot.
type priceLevel struct {
	Price  domain.Price
	Orders *orderQueue
	Volume domain.Quantity
}

// priceIndex orders one side's price levels (descending for bids,
// ascending for asks) and hands back the best level. Two
// implementations are provided (rbtIndex, listIndex); both satisfy this
// contract, generalized from the teacher's PriceTreeInterface to
// operate on domain.Price/domain.Order instead of raw int64s.
type priceIndex interface {
	// insert adds order to the level at order.Price, creating the
	// level if absent, and records the order's locator for O(1)
	// removal.
	insert(order *domain.Order)

	// remove takes order out of its level's queue via its stored
	// locator, and drops the level if it becomes empty.
	remove(order *domain.Order)

	// best returns the best (most aggressive) level, or nil if the
	// side is empty.
	best() *priceLevel

	// levelAt returns the level at price, or nil if none rests there.
	levelAt(price domain.Price) *priceLevel

	// levels returns every level, best-first, without mutating state.
	// Used for level snapshots and the FOK precheck walk.
	levels() []*priceLevel

	empty() bool
	levelCount() int
}

// indexKind selects a priceIndex implementation. Both give correct
// price-time priority; they differ in the data structure backing
// best-price access, matching the teacher's own factory
// (NewPriceTreeWithType) offering interchangeable backends behind one
// contract.
type indexKind int

const (
	// rbtKind backs a side with a red-black tree over price levels,
	// directly mirroring the original C++ std::map<Price, Orders>
	// (libstdc++'s std::map is itself a red-black tree) and giving the
	// O(log P) cancel/amend the spec asks for.
	rbtKind indexKind = iota
	// listKind backs a side with a hashmap of levels plus a manually
	// maintained doubly linked list ordering them, as the teacher's
	// HashMapListPriceTree does: O(1) best-price access, O(n) worst
	// case to splice in a brand new price level.
	listKind
)

func newPriceIndex(kind indexKind, descending bool) priceIndex {
	if kind == listKind {
		return newListIndex(descending)
	}
	return newRBTIndex(descending)
}
