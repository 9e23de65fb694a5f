// internal/service/export.go
package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/andresuchdata/smart-reorder/internal/domain"
	"github.com/andresuchdata/smart-reorder/internal/storage"
	"github.com/rs/zerolog/log"
)

// ErrUnsupportedFormat is returned for export formats other than csv
// and json.
var ErrUnsupportedFormat = errors.New("unsupported export format")

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

var csvExportHeaders = []string{
	"Product ID", "Current Stock", "Incoming Stock", "Days Remaining",
	"Suggested Reorder Quantity", "Estimated Cost", "Criticality", "Lead Time Days",
}

// ExportService shapes recommendation data for download and
// optionally archives the generated file to object storage.
type ExportService struct {
	inventory *InventoryService
	archive   storage.ObjectStorage
}

// NewExportService wires the export service. A nil archive disables
// archiving.
func NewExportService(inventory *InventoryService, archive storage.ObjectStorage) *ExportService {
	return &ExportService{
		inventory: inventory,
		archive:   archive,
	}
}

// Export builds the recommendation payload for the requested format
// with a filename timestamped to second precision.
func (s *ExportService) Export(ctx context.Context, format string) (domain.ExportPayload, error) {
	recommendations, err := s.inventory.Recommendations(ctx)
	if err != nil {
		return domain.ExportPayload{}, err
	}

	now := time.Now()
	stamp := now.Format("20060102_150405")

	var payload domain.ExportPayload

	switch format {
	case FormatCSV:
		rows := make([][]any, 0, len(recommendations)+1)
		header := make([]any, len(csvExportHeaders))
		for i, h := range csvExportHeaders {
			header[i] = h
		}
		rows = append(rows, header)
		for _, rec := range recommendations {
			rows = append(rows, []any{
				rec.ProductID, rec.CurrentStock, rec.IncomingStock,
				rec.DaysRemaining, rec.SuggestedReorder,
				rec.EstimatedCost, rec.Criticality, rec.LeadTimeDays,
			})
		}

		payload = domain.ExportPayload{
			Format:   FormatCSV,
			Data:     rows,
			Filename: fmt.Sprintf("reorder_report_%s.csv", stamp),
		}

	case FormatJSON:
		payload = domain.ExportPayload{
			Format: FormatJSON,
			Data: domain.JSONExportData{
				Recommendations: recommendations,
				ExportDate:      now.Format(time.RFC3339),
				TotalItems:      len(recommendations),
			},
			Filename: fmt.Sprintf("reorder_report_%s.json", stamp),
		}

	default:
		return domain.ExportPayload{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	s.archiveExport(ctx, payload, recommendations)

	return payload, nil
}

// archiveExport uploads the generated file to object storage when an
// archive is configured. Best effort: failures are logged, the export
// response is unaffected.
func (s *ExportService) archiveExport(ctx context.Context, payload domain.ExportPayload, recommendations []domain.Recommendation) {
	if s.archive == nil {
		return
	}

	var (
		data        []byte
		contentType string
		err         error
	)

	switch payload.Format {
	case FormatCSV:
		data, err = marshalCSV(recommendations)
		contentType = "text/csv"
	case FormatJSON:
		data, err = json.Marshal(payload.Data)
		contentType = "application/json"
	}
	if err != nil {
		log.Warn().Err(err).Str("filename", payload.Filename).Msg("failed to encode export for archiving")
		return
	}

	if err := s.archive.UploadObject(ctx, payload.Filename, contentType, data); err != nil {
		log.Warn().Err(err).Str("filename", payload.Filename).Msg("failed to archive export")
		return
	}

	log.Info().Str("filename", payload.Filename).Msg("export archived")
}

func marshalCSV(recommendations []domain.Recommendation) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvExportHeaders); err != nil {
		return nil, err
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
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
