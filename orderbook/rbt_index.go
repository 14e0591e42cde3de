package orderbook

import (
	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"

	"limitbook/domain"
)

// rbtIndex backs one side of the book with a red-black tree keyed by
// price, directly mirroring the original C++ order book's
// std::map<Price, Orders, ...> (libstdc++'s std::map is itself a
// red-black tree) and the comparator-flip trick the teacher's sharded
// tree (orderbook/price_tree_sharded.go in the retrieval pack) and the
// TanishqAgarwal matching engine example both use to get descending
// order for bids out of the same ascending-only tree type: Insert,
// Remove and Get are all O(log P) for P resting price levels.
type rbtIndex struct {
	tree *rbt.Tree[domain.Price, *priceLevel]
}

func newRBTIndex(descending bool) *rbtIndex {
	cmp := func(a, b domain.Price) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	if descending {
		inner := cmp
		cmp = func(a, b domain.Price) int { return inner(b, a) }
	}
	return &rbtIndex{tree: rbt.NewWith[domain.Price, *priceLevel](cmp)}
}

func (x *rbtIndex) insert(order *domain.Order) {
	level, ok := x.tree.Get(order.Price)
	if !ok {
		level = &priceLevel{Price: order.Price, Orders: newOrderQueue()}
		x.tree.Put(order.Price, level)
	}
	level.Orders.pushBack(order)
	level.Volume += order.RemainingQty
}

func (x *rbtIndex) remove(order *domain.Order) {
	level, ok := x.tree.Get(order.Price)
	if !ok {
		return
	}
	level.Orders.remove(order)
	level.Volume -= order.RemainingQty
	if level.Orders.len() == 0 {
		x.tree.Remove(order.Price)
	}
}

func (x *rbtIndex) best() *priceLevel {
	node := x.tree.Left()
	if node == nil {
		return nil
	}
	return node.Value
}

func (x *rbtIndex) levelAt(price domain.Price) *priceLevel {
	level, ok := x.tree.Get(price)
	if !ok {
		return nil
	}
	return level
}

func (x *rbtIndex) levels() []*priceLevel {
	out := make([]*priceLevel, 0, x.tree.Size())
	it := x.tree.Iterator()
	for it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func (x *rbtIndex) empty() bool { return x.tree.Empty() }

func (x *rbtIndex) levelCount() int { return x.tree.Size() }
