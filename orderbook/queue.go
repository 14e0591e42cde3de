package orderbook

import (
	"container/list"

	"limitbook/domain"
)

// orderQueue is the FIFO of orders resting at one price level.
// container/list gives the stable, O(1)-erasable element references
// the spec's locator requires: pushing or popping at one end never
// invalidates another order's position, exactly as the teacher's
// price-level queues rely on *list.Element for O(1) deletion.
type orderQueue struct {
	l *list.List
}

func newOrderQueue() *orderQueue {
	return &orderQueue{l: list.New()}
}

// pushBack enqueues order at the tail and stores the resulting locator
// on the order itself for later O(1) removal.
func (q *orderQueue) pushBack(order *domain.Order) {
	order.Locator = q.l.PushBack(order)
}

// remove erases order via its stored locator. No-op if the order
// carries no locator (already removed).
func (q *orderQueue) remove(order *domain.Order) {
	if order.Locator == nil {
		return
	}
	q.l.Remove(order.Locator.(*list.Element))
	order.Locator = nil
}

func (q *orderQueue) front() *domain.Order {
	if e := q.l.Front(); e != nil {
		return e.Value.(*domain.Order)
	}
	return nil
}

func (q *orderQueue) len() int {
	return q.l.Len()
}
