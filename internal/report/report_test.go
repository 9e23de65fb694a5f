package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andresuchdata/smart-reorder/internal/domain"
	"github.com/andresuchdata/smart-reorder/internal/reorder"
)

func sampleRecommendations(t *testing.T) []domain.Recommendation {
	t.Helper()
	return reorder.NewCalculator().GenerateRecommendations(domain.SampleProducts())
}

func TestGenerator_PrintSummary(t *testing.T) {
	var buf bytes.Buffer
	gen := NewGenerator(&buf)

	products := domain.SampleProducts()
	gen.PrintSummary(products, sampleRecommendations(t))

	out := buf.String()
	if !strings.Contains(out, "Total Products: 7") {
		t.Errorf("Summary missing product count:\n%s", out)
	}
	if !strings.Contains(out, "Products Needing Reorder: 3") {
		t.Errorf("Summary missing reorder count:\n%s", out)
	}
	// 19125.00 + 14025.00 + 24050.00
	if !strings.Contains(out, "Total Estimated Reorder Cost: $57200.00") {
		t.Errorf("Summary missing total cost:\n%s", out)
	}
	if !strings.Contains(out, "REORDER RECOMMENDATIONS") {
		t.Errorf("Summary missing recommendations heading:\n%s", out)
	}
}

func TestGenerator_PrintSummaryAllStocked(t *testing.T) {
	var buf bytes.Buffer
	gen := NewGenerator(&buf)

	gen.PrintSummary(domain.SampleProducts(), nil)

	out := buf.String()
	if !strings.Contains(out, "All products have sufficient stock levels.") {
		t.Errorf("Expected sufficient-stock notice:\n%s", out)
	}
	if strings.Contains(out, "REORDER RECOMMENDATIONS") {
		t.Errorf("Unexpected recommendations heading with empty list:\n%s", out)
	}
}

func TestGenerator_PrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	gen := NewGenerator(&buf)

	gen.PrintRecommendations(sampleRecommendations(t))

	out := buf.String()
	if !strings.Contains(out, "1. CRITICAL_003 (HIGH PRIORITY)") {
		t.Errorf("Missing first entry:\n%s", out)
	}
	if !strings.Contains(out, "Suggested Reorder: 425 units") {
		t.Errorf("Missing suggested quantity:\n%s", out)
	}
	if !strings.Contains(out, "Estimated Cost: $19125.00") {
		t.Errorf("Missing estimated cost:\n%s", out)
	}
}

func TestGenerator_WriteCSV(t *testing.T) {
	var buf bytes.Buffer
	gen := NewGenerator(&buf)

	var csvBuf bytes.Buffer
	if err := gen.WriteCSV(&csvBuf, sampleRecommendations(t)); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(csvBuf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d", len(lines))
	}

	wantHeader := "product_id,current_stock,incoming_stock,days_remaining,suggested_reorder_quantity,estimated_cost,criticality,lead_time_days"
	if lines[0] != wantHeader {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if lines[1] != "CRITICAL_003,5,50,0.6,425,19125.00,high,14" {
		t.Errorf("Unexpected first data line: %s", lines[1])
	}
	if lines[2] != "WIDGET_001,50,0,5.0,550,14025.00,high,7" {
		t.Errorf("Unexpected second data line: %s", lines[2])
	}
}

func TestGenerator_ExportCSV(t *testing.T) {
	var buf bytes.Buffer
	gen := NewGenerator(&buf)

	path := filepath.Join(t.TempDir(), "reorder_report.csv")
	if err := gen.ExportCSV(path, sampleRecommendations(t)); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read exported file: %v", err)
	}
	if !strings.Contains(string(data), "FAST_007,200,0,8.0,1300,24050.00,high,6") {
		t.Errorf("Exported file missing expected row:\n%s", data)
	}
	if !strings.Contains(buf.String(), "Report exported to:") {
		t.Errorf("Missing export confirmation:\n%s", buf.String())
	}
}

func TestGenerator_ExportCSVEmptyList(t *testing.T) {
	var buf bytes.Buffer
	gen := NewGenerator(&buf)

	path := filepath.Join(t.TempDir(), "reorder_report.csv")
	if err := gen.ExportCSV(path, nil); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected no file for an empty recommendation list")
	}
	if !strings.Contains(buf.String(), "No reorder recommendations to export.") {
		t.Errorf("Missing empty-list notice:\n%s", buf.String())
	}
}
