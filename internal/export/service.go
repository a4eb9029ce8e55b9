package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/store"
)

// Service produces XLSX bytes from parse history.
type Service struct {
	parses store.ParseRepository
	logger *slog.Logger
}

func NewService(parses store.ParseRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{parses: parses, logger: logger}
}

// ParsesXLSX returns an XLSX workbook (as bytes) of the most recent parses,
// one row per parsed document.
func (s *Service) ParsesXLSX(ctx context.Context, limit int) ([]byte, error) {
	start := time.Now()

	rows, err := s.parses.ListParses(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("query parses: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Parses"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defIdx, _ := f.GetSheetIndex("Sheet1"); defIdx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Parsed At",
		"Filename",
		"Tier",
		"Attempts",
		"Job Title",
		"Department",
		"Vacancies",
		"Eligibility",
		"Salary",
		"Application Deadline",
		"Application URL",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range rows {
		values := []any{
			row.CreatedAt.Format(time.RFC3339),
			row.Filename,
			row.Tier,
			row.Attempts,
			row.Record.JobTitle,
			row.Record.Department,
			row.Record.Vacancies,
			row.Record.Eligibility,
			row.Record.Salary,
			row.Record.ApplicationDeadline,
			row.Record.ApplicationURL,
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.parses_xlsx",
		"rows", len(rows),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
