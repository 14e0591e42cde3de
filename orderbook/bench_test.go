package orderbook

import (
	"testing"

	"limitbook/domain"
)

// BenchmarkPlaceOrderNoMatch measures inserting resting GTC orders
// spread across many price levels, exercising priceIndex.insert's
// level-creation path. Modeled on the teacher's
// orderbook/datastructure_bench_test.go.
func BenchmarkPlaceOrderNoMatch(b *testing.B) {
	book := NewOrderBook()
	defer book.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := domain.OrderId(i + 1)
		price := domain.Price(1 + i%10000)
		book.PlaceOrder(domain.NewOrder(id, domain.GTC, domain.Buy, price, 10))
	}
}

// BenchmarkMatchCascade measures the matching hot path: one resting
// order per price level on the ask side, then a single large GTC buy
// that cascades through all of them.
func BenchmarkMatchCascade(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		book := NewOrderBook()
		const levels = 500
		for p := 0; p < levels; p++ {
			book.PlaceOrder(domain.NewOrder(domain.OrderId(p+1), domain.GTC, domain.Sell, domain.Price(p+1), 10))
		}
		b.StartTimer()

		book.PlaceOrder(domain.NewOrder(domain.OrderId(levels+1), domain.GTC, domain.Buy, domain.Price(levels), domain.Quantity(levels*10)))
		book.Close()
	}
}

func BenchmarkCancelOrder(b *testing.B) {
	book := NewOrderBook()
	defer book.Close()
	for i := 0; i < b.N; i++ {
		id := domain.OrderId(i + 1)
		book.PlaceOrder(domain.NewOrder(id, domain.GTC, domain.Buy, domain.Price(1+i%10000), 10))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		book.CancelOrder(domain.OrderId(i + 1))
	}
}
