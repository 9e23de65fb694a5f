package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/andresuchdata/smart-reorder/internal/domain"
)

// ProductRepository is the in-memory product collection. A single
// RWMutex guards every mutation; insertion order is preserved so
// derived listings stay deterministic.
type ProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
	index    map[string]int
}

// NewProductRepository creates an empty in-memory repository.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		index: make(map[string]int),
	}
}

// NewProductRepositoryWith creates a repository seeded with the given
// products. Duplicate ids in the seed set are rejected.
func NewProductRepositoryWith(products []domain.Product) (*ProductRepository, error) {
	repo := NewProductRepository()
	for _, p := range products {
		if err := repo.Add(context.Background(), p); err != nil {
			return nil, fmt.Errorf("seed product %s: %w", p.ProductID, err)
		}
	}

	return repo, nil
}

// Snapshot returns an independent copy of the collection. Product has
// no reference fields, so a value copy is a deep copy.
func (r *ProductRepository) Snapshot(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]domain.Product, len(r.products))
	copy(snapshot, r.products)

	return snapshot, nil
}

// Get returns the product with the given id.
func (r *ProductRepository) Get(ctx context.Context, productID string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[productID]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID)
	}

	return r.products[i], nil
}

// Add appends a product. A duplicate id fails with ErrProductExists
// and leaves the collection unmodified.
func (r *ProductRepository) Add(ctx context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[product.ProductID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrProductExists, product.ProductID)
	}

	r.index[product.ProductID] = len(r.products)
	r.products = append(r.products, product)

	return nil
}

// Remove deletes the product with the given id.
func (r *ProductRepository) Remove(ctx context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[productID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID)
	}

	r.products = append(r.products[:i], r.products[i+1:]...)
	delete(r.index, productID)
	for j := i; j < len(r.products); j++ {
		r.index[r.products[j].ProductID] = j
	}

	return nil
}

// AddIncoming increases a product's incoming stock by quantity and
// returns the new level.
func (r *ProductRepository) AddIncoming(ctx context.Context, productID string, quantity int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[productID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID)
	}

	r.products[i].IncomingStock += quantity

	return r.products[i].IncomingStock, nil
}
