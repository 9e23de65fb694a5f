package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/andresuchdata/smart-reorder/internal/domain"
)

type fakeArchive struct {
	key         string
	contentType string
	data        []byte
}

func (f *fakeArchive) UploadObject(ctx context.Context, key string, contentType string, data []byte) error {
	f.key = key
	f.contentType = contentType
	f.data = data
	return nil
}

func TestExportService_CSV(t *testing.T) {
	svc := NewExportService(newTestService(t), nil)

	payload, err := svc.Export(context.Background(), FormatCSV)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if payload.Format != FormatCSV {
		t.Errorf("Expected format csv, got %s", payload.Format)
	}
	if !strings.HasPrefix(payload.Filename, "reorder_report_") || !strings.HasSuffix(payload.Filename, ".csv") {
		t.Errorf("Unexpected filename: %s", payload.Filename)
	}

	rows, ok := payload.Data.([][]any)
	if !ok {
		t.Fatalf("Expected [][]any data, got %T", payload.Data)
	}
	// Header plus one row per recommendation.
	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "Product ID" || rows[0][7] != "Lead Time Days" {
		t.Errorf("Unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "CRITICAL_003" {
		t.Errorf("Expected first data row CRITICAL_003, got %v", rows[1][0])
	}
}

func TestExportService_JSON(t *testing.T) {
	svc := NewExportService(newTestService(t), nil)

	payload, err := svc.Export(context.Background(), FormatJSON)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if !strings.HasSuffix(payload.Filename, ".json") {
		t.Errorf("Unexpected filename: %s", payload.Filename)
	}

	data, ok := payload.Data.(domain.JSONExportData)
	if !ok {
		t.Fatalf("Expected JSONExportData, got %T", payload.Data)
	}
	if data.TotalItems != 3 || len(data.Recommendations) != 3 {
		t.Errorf("Expected 3 recommendations, got %+v", data)
	}
	if data.ExportDate == "" {
		t.Error("Expected export date to be set")
	}
}

func TestExportService_UnsupportedFormat(t *testing.T) {
	svc := NewExportService(newTestService(t), nil)

	if _, err := svc.Export(context.Background(), "xml"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExportService_ArchivesCSV(t *testing.T) {
	archive := &fakeArchive{}
	svc := NewExportService(newTestService(t), archive)

	payload, err := svc.Export(context.Background(), FormatCSV)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if archive.key != payload.Filename {
		t.Errorf("Expected archived key %s, got %s", payload.Filename, archive.key)
	}
	if archive.contentType != "text/csv" {
		t.Errorf("Expected content type text/csv, got %s", archive.contentType)
	}

	lines := strings.Split(strings.TrimSpace(string(archive.data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 csv lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "CRITICAL_003") || !strings.Contains(lines[1], "19125.00") {
		t.Errorf("Unexpected first data line: %s", lines[1])
	}
}
