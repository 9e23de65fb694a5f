package repository

import (
	"context"

	"github.com/andresuchdata/smart-reorder/internal/domain"
)

// ProductRepository owns the product collection. Snapshot returns an
// independent copy so read paths (recommendations, analytics,
// simulation, export) never observe a partially mutated collection
// and cannot mutate live state.
type ProductRepository interface {
	Snapshot(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, productID string) (domain.Product, error)
	Add(ctx context.Context, product domain.Product) error
	Remove(ctx context.Context, productID string) error

	// AddIncoming increases a product's incoming stock by quantity and
	// returns the new incoming stock level.
	AddIncoming(ctx context.Context, productID string, quantity int) (int, error)
}
