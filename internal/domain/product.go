package domain

import "strings"

// Product represents one warehouse item tracked by the reordering
// system. Instances are built through NewProduct so that the stock and
// sales invariants hold everywhere downstream.
type Product struct {
	ProductID         string  `json:"product_id"`
	CurrentStock      int     `json:"current_stock"`
	IncomingStock     int     `json:"incoming_stock"`
	AverageDailySales float64 `json:"average_daily_sales"`
	LeadTimeDays      int     `json:"lead_time_days"`
	MinReorderQty     int     `json:"min_reorder_quantity"`
	CostPerUnit       float64 `json:"cost_per_unit"`
	Criticality       string  `json:"criticality"`
}

// NewProduct validates and builds a Product. The criticality tier is
// stored lowercase so downstream comparisons against the tier
// constants hold regardless of input casing.
// AverageDailySales must be strictly positive: days-remaining math
// divides by it.
func NewProduct(id string, currentStock, incomingStock int, avgDailySales float64, leadTimeDays, minReorderQty int, costPerUnit float64, criticality string) (Product, error) {
	if avgDailySales <= 0 {
		return Product{}, &ValidationError{Field: "average_daily_sales", Reason: "must be positive", ProductID: id}
	}
	if currentStock < 0 {
		return Product{}, &ValidationError{Field: "current_stock", Reason: "cannot be negative", ProductID: id}
	}
	if incomingStock < 0 {
		return Product{}, &ValidationError{Field: "incoming_stock", Reason: "cannot be negative", ProductID: id}
	}
	if !IsValidCriticality(criticality) {
		return Product{}, &ValidationError{Field: "criticality", Reason: "must be one of high, medium, low", ProductID: id}
	}

	return Product{
		ProductID:         id,
		CurrentStock:      currentStock,
		IncomingStock:     incomingStock,
		AverageDailySales: avgDailySales,
		LeadTimeDays:      leadTimeDays,
		MinReorderQty:     minReorderQty,
		CostPerUnit:       costPerUnit,
		Criticality:       strings.ToLower(criticality),
	}, nil
}
