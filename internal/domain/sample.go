package domain

// SampleProducts returns the demo dataset the server is seeded with
// and the CLI report runs against. The set covers the interesting
// cases: low stock, stock covered by incoming orders, zero stock with
// incoming, well stocked, slow movers and high velocity items.
func SampleProducts() []Product {
	return []Product{
		{
			ProductID:         "WIDGET_001",
			CurrentStock:      50,
			IncomingStock:     0,
			AverageDailySales: 10.0,
			LeadTimeDays:      7,
			MinReorderQty:     100,
			CostPerUnit:       25.50,
			Criticality:       CriticalityHigh,
		},
		{
			ProductID:         "GADGET_002",
			CurrentStock:      20,
			IncomingStock:     800,
			AverageDailySales: 12.0,
			LeadTimeDays:      10,
			MinReorderQty:     150,
			CostPerUnit:       15.75,
			Criticality:       CriticalityMedium,
		},
		{
			ProductID:         "CRITICAL_003",
			CurrentStock:      5,
			IncomingStock:     50,
			AverageDailySales: 8.0,
			LeadTimeDays:      14,
			MinReorderQty:     200,
			CostPerUnit:       45.00,
			Criticality:       CriticalityHigh,
		},
		{
			ProductID:         "SUPPLY_004",
			CurrentStock:      0,
			IncomingStock:     300,
			AverageDailySales: 5.0,
			LeadTimeDays:      5,
			MinReorderQty:     75,
			CostPerUnit:       8.25,
			Criticality:       CriticalityLow,
		},
		{
			ProductID:         "STOCK_005",
			CurrentStock:      500,
			IncomingStock:     100,
			AverageDailySales: 7.0,
			LeadTimeDays:      8,
			MinReorderQty:     120,
			CostPerUnit:       12.00,
			Criticality:       CriticalityMedium,
		},
		{
			ProductID:         "SLOW_006",
			CurrentStock:      80,
			IncomingStock:     20,
			AverageDailySales: 1.5,
			LeadTimeDays:      12,
			MinReorderQty:     50,
			CostPerUnit:       35.00,
			Criticality:       CriticalityLow,
		},
		{
			ProductID:         "FAST_007",
			CurrentStock:      200,
			IncomingStock:     0,
			AverageDailySales: 25.0,
			LeadTimeDays:      6,
			MinReorderQty:     300,
			CostPerUnit:       18.50,
			Criticality:       CriticalityHigh,
		},
	}
}
