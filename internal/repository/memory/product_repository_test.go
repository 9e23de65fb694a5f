package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/andresuchdata/smart-reorder/internal/domain"
)

func sampleProduct(id string) domain.Product {
	return domain.Product{
		ProductID:         id,
		CurrentStock:      50,
		IncomingStock:     0,
		AverageDailySales: 10.0,
		LeadTimeDays:      7,
		MinReorderQty:     100,
		CostPerUnit:       25.50,
		Criticality:       domain.CriticalityHigh,
	}
}

func TestProductRepository_AddAndGet(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	if err := repo.Add(ctx, sampleProduct("P1")); err != nil {
		t.Fatalf("Failed to add product: %v", err)
	}

	got, err := repo.Get(ctx, "P1")
	if err != nil {
		t.Fatalf("Failed to get product: %v", err)
	}
	if got.ProductID != "P1" || got.CurrentStock != 50 {
		t.Errorf("Unexpected product: %+v", got)
	}

	if _, err := repo.Get(ctx, "MISSING"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("Expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepository_DuplicateAddLeavesCollectionUnmodified(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	if err := repo.Add(ctx, sampleProduct("P1")); err != nil {
		t.Fatalf("Failed to add product: %v", err)
	}

	dup := sampleProduct("P1")
	dup.CurrentStock = 999
	if err := repo.Add(ctx, dup); !errors.Is(err, domain.ErrProductExists) {
		t.Fatalf("Expected ErrProductExists, got %v", err)
	}

	got, err := repo.Get(ctx, "P1")
	if err != nil {
		t.Fatalf("Failed to get product: %v", err)
	}
	if got.CurrentStock != 50 {
		t.Errorf("Existing product was modified by a conflicting add: %+v", got)
	}

	snapshot, _ := repo.Snapshot(ctx)
	if len(snapshot) != 1 {
		t.Errorf("Expected 1 product, got %d", len(snapshot))
	}
}

func TestProductRepository_Remove(t *testing.T) {
	repo, err := NewProductRepositoryWith([]domain.Product{
		sampleProduct("P1"), sampleProduct("P2"), sampleProduct("P3"),
	})
	if err != nil {
		t.Fatalf("Failed to seed repository: %v", err)
	}
	ctx := context.Background()

	if err := repo.Remove(ctx, "P2"); err != nil {
		t.Fatalf("Failed to remove product: %v", err)
	}
	if err := repo.Remove(ctx, "P2"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("Expected ErrProductNotFound on double remove, got %v", err)
	}

	// Insertion order of the survivors is preserved and lookups still work.
	snapshot, _ := repo.Snapshot(ctx)
	if len(snapshot) != 2 || snapshot[0].ProductID != "P1" || snapshot[1].ProductID != "P3" {
		t.Errorf("Unexpected collection after remove: %+v", snapshot)
	}
	if _, err := repo.Get(ctx, "P3"); err != nil {
		t.Errorf("Failed to get P3 after removing P2: %v", err)
	}
}

func TestProductRepository_AddIncoming(t *testing.T) {
	repo, err := NewProductRepositoryWith([]domain.Product{sampleProduct("P1")})
	if err != nil {
		t.Fatalf("Failed to seed repository: %v", err)
	}
	ctx := context.Background()

	newIncoming, err := repo.AddIncoming(ctx, "P1", 120)
	if err != nil {
		t.Fatalf("Failed to add incoming stock: %v", err)
	}
	if newIncoming != 120 {
		t.Errorf("Expected incoming stock 120, got %d", newIncoming)
	}

	newIncoming, err = repo.AddIncoming(ctx, "P1", 30)
	if err != nil {
		t.Fatalf("Failed to add incoming stock: %v", err)
	}
	if newIncoming != 150 {
		t.Errorf("Expected incoming stock 150, got %d", newIncoming)
	}

	if _, err := repo.AddIncoming(ctx, "MISSING", 10); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("Expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepository_SnapshotIsIndependent(t *testing.T) {
	repo, err := NewProductRepositoryWith([]domain.Product{sampleProduct("P1")})
	if err != nil {
		t.Fatalf("Failed to seed repository: %v", err)
	}
	ctx := context.Background()

	snapshot, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Failed to snapshot: %v", err)
	}

	snapshot[0].CurrentStock = 0
	snapshot[0].AverageDailySales = 999

	got, _ := repo.Get(ctx, "P1")
	if got.CurrentStock != 50 || got.AverageDailySales != 10.0 {
		t.Errorf("Mutating a snapshot changed the stored product: %+v", got)
	}
}

func TestProductRepository_ConcurrentOrders(t *testing.T) {
	repo, err := NewProductRepositoryWith([]domain.Product{sampleProduct("P1")})
	if err != nil {
		t.Fatalf("Failed to seed repository: %v", err)
	}
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.AddIncoming(ctx, "P1", 1); err != nil {
				t.Errorf("AddIncoming failed: %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := repo.Get(ctx, "P1")
	if got.IncomingStock != 100 {
		t.Errorf("Expected incoming stock 100, got %d", got.IncomingStock)
	}
}
