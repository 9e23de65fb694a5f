package domain

import "strings"

const (
	CriticalityHigh   = "high"
	CriticalityMedium = "medium"
	CriticalityLow    = "low"
)

var criticalityRanks = map[string]int{
	CriticalityHigh:   0,
	CriticalityMedium: 1,
	CriticalityLow:    2,
}

// CriticalityRank returns the sort rank for a criticality tier, high
// first. Unknown tiers sort after low.
func CriticalityRank(criticality string) int {
	if rank, ok := criticalityRanks[strings.ToLower(criticality)]; ok {
		return rank
	}

	return len(criticalityRanks)
}

// IsValidCriticality reports whether the tier is one of high, medium, low.
func IsValidCriticality(criticality string) bool {
	_, ok := criticalityRanks[strings.ToLower(criticality)]

	return ok
}
