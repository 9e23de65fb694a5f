package reorder

import (
	"math"
	"sort"

	"github.com/andresuchdata/smart-reorder/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// SafetyBufferDays is the fixed runway required beyond supplier
	// lead time before a reorder triggers.
	SafetyBufferDays = 5

	// TargetStockDays is the stock coverage a reorder aims for.
	TargetStockDays = 60
)

// Calculator computes reorder decisions for warehouse products. It is
// stateless; all inputs come from the product record.
type Calculator struct{}

// NewCalculator creates a new reorder calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// DaysRemaining returns how many days of sales the current stock
// covers. AverageDailySales is strictly positive by construction, so
// the division is safe.
func (c *Calculator) DaysRemaining(p domain.Product) float64 {
	return float64(p.CurrentStock) / p.AverageDailySales
}

// SafetyThreshold returns the minimum acceptable runway in days:
// supplier lead time plus the safety buffer.
func (c *Calculator) SafetyThreshold(p domain.Product) int {
	return p.LeadTimeDays + SafetyBufferDays
}

// NeedsReorder reports whether the remaining runway is strictly below
// the safety threshold. Equal values do not trigger a reorder.
func (c *Calculator) NeedsReorder(p domain.Product) bool {
	return c.DaysRemaining(p) < float64(c.SafetyThreshold(p))
}

// ReorderQuantity returns the suggested order size: enough to reach
// TargetStockDays of coverage after counting stock already on hand
// and on order, floored at the product's minimum order quantity.
// Returns 0 when on-hand plus incoming stock already covers the
// target. The fractional deficit is truncated toward zero before the
// minimum is applied.
func (c *Calculator) ReorderQuantity(p domain.Product) int {
	required := p.AverageDailySales * TargetStockDays
	deficit := required - float64(p.CurrentStock) - float64(p.IncomingStock)

	if deficit <= 0 {
		return 0
	}

	qty := int(deficit)
	if qty < p.MinReorderQty {
		qty = p.MinReorderQty
	}

	return qty
}

// Process evaluates a single product and returns its recommendation,
// or nil when no reorder is needed. A product below its safety
// threshold still yields nil when incoming stock already covers the
// coverage target.
func (c *Calculator) Process(p domain.Product) *domain.Recommendation {
	if !c.NeedsReorder(p) {
		return nil
	}

	qty := c.ReorderQuantity(p)
	if qty == 0 {
		return nil
	}

	cost := decimal.NewFromInt(int64(qty)).
		Mul(decimal.NewFromFloat(p.CostPerUnit)).
		Round(2)

	return &domain.Recommendation{
		ProductID:        p.ProductID,
		CurrentStock:     p.CurrentStock,
		IncomingStock:    p.IncomingStock,
		DaysRemaining:    RoundTo1(c.DaysRemaining(p)),
		SuggestedReorder: qty,
		EstimatedCost:    cost.InexactFloat64(),
		Criticality:      p.Criticality,
		LeadTimeDays:     p.LeadTimeDays,
	}
}

// GenerateRecommendations evaluates every product and returns the
// reorder list sorted by criticality (high first), then by days
// remaining ascending. The sort is stable: ties keep their input
// order. The input slice is never modified.
func (c *Calculator) GenerateRecommendations(products []domain.Product) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0, len(products))

	for _, p := range products {
		if rec := c.Process(p); rec != nil {
			recommendations = append(recommendations, *rec)
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		ri := domain.CriticalityRank(recommendations[i].Criticality)
		rj := domain.CriticalityRank(recommendations[j].Criticality)
		if ri != rj {
			return ri < rj
		}

		return recommendations[i].DaysRemaining < recommendations[j].DaysRemaining
	})

	return recommendations
}

// RoundTo1 rounds to one decimal place. Days-remaining figures are
// reported at that precision everywhere.
func RoundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
