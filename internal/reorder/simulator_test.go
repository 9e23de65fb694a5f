package reorder

import (
	"testing"

	"github.com/andresuchdata/smart-reorder/internal/domain"
)

func TestSimulator_SimulateSpikeScalesOnlyTarget(t *testing.T) {
	sim := NewSimulator(NewCalculator())

	products := domain.SampleProducts()
	simulated, found := sim.SimulateSpike(products, "GADGET_002", 3.0, 7)

	if !found {
		t.Fatal("Expected target to be found")
	}
	if len(simulated) != len(products) {
		t.Fatalf("Expected %d products, got %d", len(products), len(simulated))
	}

	for i, p := range products {
		got := simulated[i]
		if p.ProductID != got.ProductID {
			t.Fatalf("Order changed at position %d: %s vs %s", i, p.ProductID, got.ProductID)
		}

		if p.ProductID == "GADGET_002" {
			if got.AverageDailySales != p.AverageDailySales*3.0 {
				t.Errorf("Expected scaled daily sales %v, got %v", p.AverageDailySales*3.0, got.AverageDailySales)
			}
			// Every other field of the target is unchanged.
			want := p
			want.AverageDailySales = got.AverageDailySales
			if got != want {
				t.Errorf("Target fields beyond daily sales changed: %+v", got)
			}
			continue
		}

		if got != p {
			t.Errorf("Non-target product %s changed: %+v", p.ProductID, got)
		}
	}
}

func TestSimulator_SimulateSpikeDoesNotMutateInput(t *testing.T) {
	sim := NewSimulator(NewCalculator())

	products := domain.SampleProducts()
	before := make([]domain.Product, len(products))
	copy(before, products)

	sim.SimulateSpike(products, "WIDGET_001", 5.0, 14)

	for i := range products {
		if products[i] != before[i] {
			t.Errorf("Input product %d was mutated", i)
		}
	}
}

func TestSimulator_UnknownTargetIsNoOp(t *testing.T) {
	sim := NewSimulator(NewCalculator())

	products := domain.SampleProducts()
	simulated, found := sim.SimulateSpike(products, "MISSING_999", 3.0, 7)

	if found {
		t.Error("Expected target not to be found")
	}
	if len(simulated) != len(products) {
		t.Fatalf("Expected %d products, got %d", len(products), len(simulated))
	}
	for i := range products {
		if simulated[i] != products[i] {
			t.Errorf("Product %d changed in a no-op simulation", i)
		}
	}
}

func TestSimulator_SpikeChangesRecommendationOutcome(t *testing.T) {
	calc := NewCalculator()
	sim := NewSimulator(calc)

	products := domain.SampleProducts()

	// GADGET_002 is covered by incoming stock at normal velocity.
	for _, rec := range calc.GenerateRecommendations(products) {
		if rec.ProductID == "GADGET_002" {
			t.Fatal("GADGET_002 should not need reorder before the spike")
		}
	}

	simulated, _ := sim.SimulateSpike(products, "GADGET_002", 3.0, 7)

	var spiked *domain.Recommendation
	for _, rec := range calc.GenerateRecommendations(simulated) {
		if rec.ProductID == "GADGET_002" {
			r := rec
			spiked = &r
		}
	}

	if spiked == nil {
		t.Fatal("Expected GADGET_002 to need reorder under 3x demand")
	}
	// 36/day target over 60 days = 2160, minus 20 on hand and 800 incoming.
	if spiked.SuggestedReorder != 1340 {
		t.Errorf("Expected suggested quantity 1340, got %d", spiked.SuggestedReorder)
	}
}
