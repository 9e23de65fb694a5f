package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/andresuchdata/smart-reorder/internal/domain"
	"github.com/shopspring/decimal"
)

var csvFieldNames = []string{
	"product_id", "current_stock", "incoming_stock", "days_remaining",
	"suggested_reorder_quantity", "estimated_cost", "criticality", "lead_time_days",
}

// Generator renders reorder recommendations as console text or CSV.
// Pure formatting, no value transformation.
type Generator struct {
	out io.Writer
}

// NewGenerator creates a report generator writing console output to out.
func NewGenerator(out io.Writer) *Generator {
	if out == nil {
		out = os.Stdout
	}

	return &Generator{out: out}
}

// PrintSummary writes the inventory summary block: product counts,
// total estimated reorder cost and generation time.
func (g *Generator) PrintSummary(products []domain.Product, recommendations []domain.Recommendation) {
	rule := strings.Repeat("=", 80)

	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, rule)
	fmt.Fprintln(g.out, "SMART WAREHOUSE REORDERING SYSTEM - INVENTORY SUMMARY")
	fmt.Fprintln(g.out, rule)

	totalCost := decimal.Zero
	for _, rec := range recommendations {
		totalCost = totalCost.Add(decimal.NewFromFloat(rec.EstimatedCost))
	}

	fmt.Fprintf(g.out, "Total Products: %d\n", len(products))
	fmt.Fprintf(g.out, "Products Needing Reorder: %d\n", len(recommendations))
	fmt.Fprintf(g.out, "Total Estimated Reorder Cost: $%s\n", totalCost.StringFixed(2))
	fmt.Fprintf(g.out, "Report Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))

	if len(recommendations) == 0 {
		fmt.Fprintln(g.out)
		fmt.Fprintln(g.out, "All products have sufficient stock levels.")
		return
	}

	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, rule)
	fmt.Fprintln(g.out, "REORDER RECOMMENDATIONS")
	fmt.Fprintln(g.out, rule)
}

// PrintRecommendations writes the numbered per-recommendation detail
// listing.
func (g *Generator) PrintRecommendations(recommendations []domain.Recommendation) {
	for i, rec := range recommendations {
		fmt.Fprintf(g.out, "\n%d. %s (%s PRIORITY)\n", i+1, rec.ProductID, strings.ToUpper(rec.Criticality))
		fmt.Fprintf(g.out, "   Current Stock: %d units\n", rec.CurrentStock)
		fmt.Fprintf(g.out, "   Incoming Stock: %d units\n", rec.IncomingStock)
		fmt.Fprintf(g.out, "   Days Remaining: %.1f days\n", rec.DaysRemaining)
		fmt.Fprintf(g.out, "   Suggested Reorder: %d units\n", rec.SuggestedReorder)
		fmt.Fprintf(g.out, "   Estimated Cost: $%s\n", decimal.NewFromFloat(rec.EstimatedCost).StringFixed(2))
		fmt.Fprintf(g.out, "   Lead Time: %d days\n", rec.LeadTimeDays)
	}
}

// WriteCSV writes the recommendations in the fixed column order to w.
func (g *Generator) WriteCSV(w io.Writer, recommendations []domain.Recommendation) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvFieldNames); err != nil {
		return err
	}

	for _, rec := range recommendations {
		record := []string{
			rec.ProductID,
			strconv.Itoa(rec.CurrentStock),
			strconv.Itoa(rec.IncomingStock),
			strconv.FormatFloat(rec.DaysRemaining, 'f', 1, 64),
			strconv.Itoa(rec.SuggestedReorder),
			strconv.FormatFloat(rec.EstimatedCost, 'f', 2, 64),
			rec.Criticality,
			strconv.Itoa(rec.LeadTimeDays),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}

// ExportCSV writes the recommendations to a CSV file at path. The
// file handle is closed on every exit path; write and close errors
// both surface.
func (g *Generator) ExportCSV(path string, recommendations []domain.Recommendation) (err error) {
	if len(recommendations) == 0 {
		fmt.Fprintln(g.out, "No reorder recommendations to export.")
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := g.WriteCSV(file, recommendations); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(g.out, "Report exported to: %s\n", path)

	return nil
}
