// Command demo walks a handful of orders through a single OrderBook
// and prints the resulting trades, in the spirit of the teacher's
// cmd/benchmark and cmd/profile harnesses but scoped to this spec's
// single-instrument core rather than a multi-symbol throughput test.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"limitbook/domain"
	"limitbook/orderbook"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	book := orderbook.NewOrderBook(orderbook.WithLogger(logger))
	defer book.Close()

	logger.Info().Msg("order book started")

	place := func(id domain.OrderId, typ domain.OrderType, side domain.Side, price domain.Price, qty domain.Quantity) {
		order := domain.NewOrder(id, typ, side, price, qty)
		trades := book.PlaceOrder(order)
		logger.Info().
			Uint64("id", uint64(id)).
			Str("type", typ.String()).
			Str("side", side.String()).
			Int("trades", len(trades)).
			Msg("placed order")
		for _, t := range trades {
			logger.Info().
				Uint64("buy_id", uint64(t.Buy.OrderId)).
				Uint64("sell_id", uint64(t.Sell.OrderId)).
				Uint64("qty", uint64(t.Quantity)).
				Msg("trade")
		}
	}

	place(1, domain.GTC, domain.Sell, 101, 25)
	place(2, domain.GTC, domain.Sell, 100, 50)
	place(3, domain.GTC, domain.Buy, 100, 125)
	place(4, domain.IOC, domain.Sell, 99, 100)

	levels := book.LevelsInfo()
	for _, l := range levels.Bids {
		logger.Info().Uint64("price", uint64(l.Price)).Uint64("qty", uint64(l.Quantity)).Msg("bid level")
	}
	for _, l := range levels.Asks {
		logger.Info().Uint64("price", uint64(l.Price)).Uint64("qty", uint64(l.Quantity)).Msg("ask level")
	}
	logger.Info().Int("resting_orders", book.Size()).Msg("final book size")
}
