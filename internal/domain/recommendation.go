package domain

// Recommendation is a derived, transient view of one product that
// should be reordered. Recomputed on every calculation call, never
// stored.
type Recommendation struct {
	ProductID        string  `json:"product_id"`
	CurrentStock     int     `json:"current_stock"`
	IncomingStock    int     `json:"incoming_stock"`
	DaysRemaining    float64 `json:"days_remaining"`
	SuggestedReorder int     `json:"suggested_reorder_quantity"`
	EstimatedCost    float64 `json:"estimated_cost"`
	Criticality      string  `json:"criticality"`
	LeadTimeDays     int     `json:"lead_time_days"`
}

// ProductStatus is a product together with the derived reorder fields
// the listing endpoint reports.
type ProductStatus struct {
	Product
	DaysRemaining   float64 `json:"days_remaining"`
	NeedsReorder    bool    `json:"needs_reorder"`
	SafetyThreshold int     `json:"safety_threshold"`
}

// StockLevel is the per-product snapshot inside the analytics report.
type StockLevel struct {
	ProductID     string  `json:"product_id"`
	DaysRemaining float64 `json:"days_remaining"`
	Criticality   string  `json:"criticality"`
	CurrentStock  int     `json:"current_stock"`
}

// CriticalityBreakdown counts products per criticality tier.
type CriticalityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// UrgencyLevels buckets recommendations by days of runway left:
// critical <= 3 days, urgent <= 7 days, moderate beyond that.
type UrgencyLevels struct {
	Critical int `json:"critical"`
	Urgent   int `json:"urgent"`
	Moderate int `json:"moderate"`
}

// AnalyticsReport aggregates the dashboard view over the live
// collection.
type AnalyticsReport struct {
	CriticalityBreakdown CriticalityBreakdown `json:"criticality_breakdown"`
	StockLevels          []StockLevel         `json:"stock_levels"`
	UrgencyLevels        UrgencyLevels        `json:"urgency_levels"`
	TotalInventoryValue  float64              `json:"total_inventory_value"`
}

// SimulationParams echoes the spike parameters a simulation ran with.
type SimulationParams struct {
	ProductID  string  `json:"product_id"`
	Multiplier float64 `json:"multiplier"`
	Days       int     `json:"days"`
}

// SimulationResult is the outcome of a what-if demand spike: the
// recommendations over the scenario plus whether the target existed.
type SimulationResult struct {
	Params          SimulationParams `json:"simulation"`
	TargetFound     bool             `json:"target_found"`
	Recommendations []Recommendation `json:"recommendations"`
}

// ExportPayload is the response body of the export endpoint: the
// recommendation data shaped for the requested format plus a
// timestamped filename.
type ExportPayload struct {
	Format   string `json:"format"`
	Data     any    `json:"data"`
	Filename string `json:"filename"`
}

// JSONExportData is the data shape for format "json".
type JSONExportData struct {
	Recommendations []Recommendation `json:"recommendations"`
	ExportDate      string           `json:"export_date"`
	TotalItems      int              `json:"total_items"`
}
