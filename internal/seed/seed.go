// Package seed generates realistic mock stock data for development and
// demos: a handful of well-known symbols following a random walk with
// per-symbol volatility and mild mean reversion.
package seed

import (
	"context"
	"math"
	"math/rand"
	"time"

	"stockpulse/internal/domain/models"
	"stockpulse/internal/logger"
	"stockpulse/internal/storage"
)

// batchSize bounds a single store write during seeding.
const batchSize = 500

// symbols and their starting prices / volatility. Higher volatility
// symbols wander further per step.
var (
	symbols    = []string{"AAPL", "GOOGL", "MSFT", "TSLA", "AMZN"}
	basePrices = map[string]float64{
		"AAPL":  150.0,
		"GOOGL": 2800.0,
		"MSFT":  300.0,
		"TSLA":  800.0,
		"AMZN":  3300.0,
	}
	volatility = map[string]float64{
		"AAPL":  0.02,
		"GOOGL": 0.025,
		"MSFT":  0.018,
		"TSLA":  0.04,
		"AMZN":  0.03,
	}
)

// Generator produces and stores mock observations.
type Generator struct {
	store storage.TimeSeriesStore
	rng   *rand.Rand
}

// NewGenerator returns a Generator writing through the given store.
func NewGenerator(store storage.TimeSeriesStore, seed int64) *Generator {
	return &Generator{
		store: store,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Run generates observations for every symbol over the trailing days at
// the given step, writing them in batches. Returns the total number of
// observations written.
func (g *Generator) Run(ctx context.Context, days int, step time.Duration) (int, error) {
	if days < 1 {
		days = 1
	}
	if step <= 0 {
		step = 5 * time.Minute
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)
	total := 0

	for _, sym := range symbols {
		price := basePrices[sym]
		batch := make([]models.Observation, 0, batchSize)

		for ts := start; ts.Before(end); ts = ts.Add(step) {
			price = g.nextPrice(sym, price)
			batch = append(batch, models.Observation{
				Symbol:    sym,
				Price:     math.Round(price*100) / 100,
				Volume:    int64(g.rng.Intn(9900) + 100),
				Timestamp: ts,
			})

			if len(batch) == batchSize {
				if err := g.store.WriteBatch(ctx, batch); err != nil {
					return total, err
				}
				total += len(batch)
				batch = batch[:0]
			}
		}

		if len(batch) > 0 {
			if err := g.store.WriteBatch(ctx, batch); err != nil {
				return total, err
			}
			total += len(batch)
		}

		logger.L().Info().Str("symbol", sym).Msg("seeded symbol")
	}

	return total, nil
}

// nextPrice advances the random walk one step: gaussian noise scaled by
// the symbol's volatility, nudged back when the price drifts more than
// 20% from its base, floored at $1.
func (g *Generator) nextPrice(sym string, current float64) float64 {
	change := g.rng.NormFloat64() * volatility[sym]
	if current > basePrices[sym]*1.2 {
		change -= 0.01
	} else if current < basePrices[sym]*0.8 {
		change += 0.01
	}
	next := current * (1 + change)
	if next < 1.0 {
		next = 1.0
	}
	return next
}
