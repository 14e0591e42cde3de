package orderbook

import "limitbook/domain"

// listIndex backs one side of the book with a hashmap of price levels
// plus a manually maintained doubly linked list ordering them by price,
// adapted from the teacher's HashMapListPriceTree
// (orderbook/price_tree.go in the retrieval pack): O(1) best-price
// access via a cached pointer, O(1) removal, O(n) worst case to splice
// in a brand new price level (rare once the book has any depth). Kept
// as an alternate, explicitly selectable backend alongside rbtIndex —
// see NewOrderBook's WithIndexKind option.
type listIndex struct {
	byPrice    map[domain.Price]*listLevel
	best_      *listLevel
	descending bool
}

type listLevel struct {
	level      priceLevel
	next, prev *listLevel
}

func newListIndex(descending bool) *listIndex {
	return &listIndex{
		byPrice:    make(map[domain.Price]*listLevel),
		descending: descending,
	}
}

func (x *listIndex) isBetter(a, b domain.Price) bool {
	if x.descending {
		return a > b
	}
	return a < b
}

func (x *listIndex) insert(order *domain.Order) {
	node, ok := x.byPrice[order.Price]
	if !ok {
		node = &listLevel{level: priceLevel{Price: order.Price, Orders: newOrderQueue()}}
		x.byPrice[order.Price] = node
		x.link(node)
	}
	node.level.Orders.pushBack(order)
	node.level.Volume += order.RemainingQty
}

func (x *listIndex) remove(order *domain.Order) {
	node, ok := x.byPrice[order.Price]
	if !ok {
		return
	}
	node.level.Orders.remove(order)
	node.level.Volume -= order.RemainingQty
	if node.level.Orders.len() == 0 {
		x.unlink(node)
		delete(x.byPrice, order.Price)
	}
}

func (x *listIndex) best() *priceLevel {
	if x.best_ == nil {
		return nil
	}
	return &x.best_.level
}

func (x *listIndex) levelAt(price domain.Price) *priceLevel {
	node, ok := x.byPrice[price]
	if !ok {
		return nil
	}
	return &node.level
}

func (x *listIndex) levels() []*priceLevel {
	out := make([]*priceLevel, 0, len(x.byPrice))
	for cur := x.best_; cur != nil; cur = cur.next {
		out = append(out, &cur.level)
	}
	return out
}

func (x *listIndex) empty() bool { return x.best_ == nil }

func (x *listIndex) levelCount() int { return len(x.byPrice) }

// link splices a freshly created node into the price-ordered list.
func (x *listIndex) link(node *listLevel) {
	if x.best_ == nil {
		x.best_ = node
		return
	}
	if x.isBetter(node.level.Price, x.best_.level.Price) {
		node.next = x.best_
		x.best_.prev = node
		x.best_ = node
		return
	}
	cur := x.best_
	for cur.next != nil && !x.isBetter(node.level.Price, cur.next.level.Price) {
		cur = cur.next
	}
	node.next = cur.next
	node.prev = cur
	if cur.next != nil {
		cur.next.prev = node
	}
	cur.next = node
}

func (x *listIndex) unlink(node *listLevel) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		x.best_ = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	}
	node.next, node.prev = nil, nil
}
