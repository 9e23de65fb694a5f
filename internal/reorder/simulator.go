package reorder

import (
	"github.com/andresuchdata/smart-reorder/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultSpikeMultiplier scales the target's sales velocity when
	// the caller does not pick one.
	DefaultSpikeMultiplier = 3.0

	// DefaultSpikeDays is the reported spike duration. Informational
	// only, it does not enter any computation.
	DefaultSpikeDays = 7
)

// Simulator produces what-if copies of the product list under a
// demand spike.
type Simulator struct {
	calculator *Calculator
}

// NewSimulator creates a demand spike simulator.
func NewSimulator(calculator *Calculator) *Simulator {
	return &Simulator{calculator: calculator}
}

// SimulateSpike returns a copy of products, equal in length and
// order, where only the product matching productID has its
// AverageDailySales scaled by multiplier. The input slice and its
// elements are never mutated. An unmatched productID yields an
// unchanged copy; the second return value reports whether the target
// was found so callers can surface the no-op.
func (s *Simulator) SimulateSpike(products []domain.Product, productID string, multiplier float64, days int) ([]domain.Product, bool) {
	simulated := make([]domain.Product, 0, len(products))
	found := false

	for _, p := range products {
		if p.ProductID == productID {
			spiked := p
			spiked.AverageDailySales = p.AverageDailySales * multiplier
			simulated = append(simulated, spiked)
			found = true

			log.Info().
				Str("product_id", productID).
				Float64("original_daily_sales", p.AverageDailySales).
				Float64("spiked_daily_sales", spiked.AverageDailySales).
				Float64("multiplier", multiplier).
				Int("days", days).
				Msg("simulating demand spike")
			continue
		}

		simulated = append(simulated, p)
	}

	if !found {
		log.Warn().
			Str("product_id", productID).
			Msg("spike target not found, simulation is a no-op")
	}

	return simulated, found
}
