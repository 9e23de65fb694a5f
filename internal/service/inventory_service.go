// internal/service/inventory_service.go
package service

import (
	"context"
	"fmt"

	"github.com/andresuchdata/smart-reorder/internal/cache"
	"github.com/andresuchdata/smart-reorder/internal/domain"
	"github.com/andresuchdata/smart-reorder/internal/reorder"
	"github.com/andresuchdata/smart-reorder/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// InventoryService orchestrates the product repository, the reorder
// calculator and the demand spike simulator. All read paths operate
// on repository snapshots.
type InventoryService struct {
	repo       repository.ProductRepository
	calculator *reorder.Calculator
	simulator  *reorder.Simulator
	cache      cache.RecommendationsCache
	group      singleflight.Group
}

// NewInventoryService wires the service. A nil cache falls back to
// the noop implementation.
func NewInventoryService(repo repository.ProductRepository, recCache cache.RecommendationsCache) *InventoryService {
	if recCache == nil {
		recCache = cache.NewNoopRecommendationsCache()
	}

	calculator := reorder.NewCalculator()

	return &InventoryService{
		repo:       repo,
		calculator: calculator,
		simulator:  reorder.NewSimulator(calculator),
		cache:      recCache,
	}
}

// ListProducts returns every product with its derived reorder fields.
func (s *InventoryService) ListProducts(ctx context.Context) ([]domain.ProductStatus, error) {
	products, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot products: %w", err)
	}

	statuses := make([]domain.ProductStatus, 0, len(products))
	for _, p := range products {
		statuses = append(statuses, domain.ProductStatus{
			Product:         p,
			DaysRemaining:   reorder.RoundTo1(s.calculator.DaysRemaining(p)),
			NeedsReorder:    s.calculator.NeedsReorder(p),
			SafetyThreshold: s.calculator.SafetyThreshold(p),
		})
	}

	return statuses, nil
}

// Recommendations returns the current sorted reorder list. Cached
// between mutations when the cache is enabled; concurrent misses
// collapse into a single computation.
func (s *InventoryService) Recommendations(ctx context.Context) ([]domain.Recommendation, error) {
	if cached, ok, err := s.cache.Get(ctx); err == nil && ok {
		return cached, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("recommendations cache read failed, recomputing")
	}

	result, err, _ := s.group.Do("recommendations", func() (any, error) {
		products, err := s.repo.Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to snapshot products: %w", err)
		}

		recommendations := s.calculator.GenerateRecommendations(products)

		if err := s.cache.Set(ctx, recommendations); err != nil {
			log.Warn().Err(err).Msg("recommendations cache write failed")
		}

		return recommendations, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]domain.Recommendation), nil
}

// AddProduct adds a new product to the collection.
func (s *InventoryService) AddProduct(ctx context.Context, product domain.Product) error {
	if err := s.repo.Add(ctx, product); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

// DeleteProduct removes a product from the collection.
func (s *InventoryService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.repo.Remove(ctx, productID); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

// CreateOrder records an order for a product by raising its incoming
// stock, and returns the new incoming stock level.
func (s *InventoryService) CreateOrder(ctx context.Context, productID string, quantity int) (int, error) {
	newIncoming, err := s.repo.AddIncoming(ctx, productID, quantity)
	if err != nil {
		return 0, err
	}

	s.invalidateCache(ctx)
	return newIncoming, nil
}

// SimulateSpike runs the demand spike scenario against a snapshot and
// returns the recommendations the spiked demand would produce. Stored
// products are never touched.
func (s *InventoryService) SimulateSpike(ctx context.Context, productID string, multiplier float64, days int) (domain.SimulationResult, error) {
	if multiplier <= 0 {
		multiplier = reorder.DefaultSpikeMultiplier
	}
	if days <= 0 {
		days = reorder.DefaultSpikeDays
	}

	products, err := s.repo.Snapshot(ctx)
	if err != nil {
		return domain.SimulationResult{}, fmt.Errorf("failed to snapshot products: %w", err)
	}

	simulated, found := s.simulator.SimulateSpike(products, productID, multiplier, days)

	return domain.SimulationResult{
		Params: domain.SimulationParams{
			ProductID:  productID,
			Multiplier: multiplier,
			Days:       days,
		},
		TargetFound:     found,
		Recommendations: s.calculator.GenerateRecommendations(simulated),
	}, nil
}

// Analytics aggregates the dashboard view: criticality counts, stock
// level snapshots, urgency buckets over the current recommendations
// and the total value of stock on hand.
func (s *InventoryService) Analytics(ctx context.Context) (domain.AnalyticsReport, error) {
	products, err := s.repo.Snapshot(ctx)
	if err != nil {
		return domain.AnalyticsReport{}, fmt.Errorf("failed to snapshot products: %w", err)
	}

	report := domain.AnalyticsReport{
		StockLevels: make([]domain.StockLevel, 0, len(products)),
	}

	totalValue := decimal.Zero
	for _, p := range products {
		switch p.Criticality {
		case domain.CriticalityHigh:
			report.CriticalityBreakdown.High++
		case domain.CriticalityMedium:
			report.CriticalityBreakdown.Medium++
		case domain.CriticalityLow:
			report.CriticalityBreakdown.Low++
		}

		report.StockLevels = append(report.StockLevels, domain.StockLevel{
			ProductID:     p.ProductID,
			DaysRemaining: reorder.RoundTo1(s.calculator.DaysRemaining(p)),
			Criticality:   p.Criticality,
			CurrentStock:  p.CurrentStock,
		})

		totalValue = totalValue.Add(
			decimal.NewFromInt(int64(p.CurrentStock)).Mul(decimal.NewFromFloat(p.CostPerUnit)),
		)
	}

	for _, rec := range s.calculator.GenerateRecommendations(products) {
		switch {
		case rec.DaysRemaining <= 3:
			report.UrgencyLevels.Critical++
		case rec.DaysRemaining <= 7:
			report.UrgencyLevels.Urgent++
		default:
			report.UrgencyLevels.Moderate++
		}
	}

	report.TotalInventoryValue = totalValue.Round(2).InexactFloat64()

	return report, nil
}

func (s *InventoryService) invalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("recommendations cache invalidation failed")
	}
}
