package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"twsecli/pkg/contracts/domain"
)

// CSVWriter writes the derived views as CSV reports under a base directory.
type CSVWriter struct {
	baseDir string
	logger  *slog.Logger
}

// NewCSVWriter creates a CSV writer rooted at the given directory.
func NewCSVWriter(baseDir string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{baseDir: baseDir, logger: logger}
}

// WriteComposite writes the enriched trading-value Top-N view. Missing
// growth and industry render as empty cells.
func (w *CSVWriter) WriteComposite(filename string, entries []domain.CompositeEntry) error {
	headers := []string{"代號", "名稱", "成交額(億)", "單月營收年增(%)", "產業別"}
	records := make([][]string, 0, len(entries))
	for _, e := range entries {
		records = append(records, []string{
			e.ID,
			e.Name,
			formatFloat(e.TradeValueHundredMillion),
			formatOptionalFloat(e.GrowthRate),
			e.Industry,
		})
	}
	return w.write(filename, headers, records)
}

// WriteRevenue writes the revenue-growth leaderboard.
func (w *CSVWriter) WriteRevenue(filename string, entries []domain.RevenueEntry) error {
	headers := []string{"代號", "名稱", "單月營收年增(%)", "產業別"}
	records := make([][]string, 0, len(entries))
	for _, e := range entries {
		records = append(records, []string{
			e.ID,
			e.Name,
			formatFloat(e.GrowthRate),
			e.Industry,
		})
	}
	return w.write(filename, headers, records)
}

// WriteValue writes the full trading-value ranking.
func (w *CSVWriter) WriteValue(filename string, entries []domain.ValueEntry) error {
	headers := []string{"代號", "名稱", "成交額(億)"}
	records := make([][]string, 0, len(entries))
	for _, e := range entries {
		records = append(records, []string{
			e.ID,
			e.Name,
			formatFloat(e.TradeValueHundredMillion),
		})
	}
	return w.write(filename, headers, records)
}

// write writes one CSV file with a UTF-8 BOM for spreadsheet compatibility.
func (w *CSVWriter) write(filename string, headers []string, records [][]string) error {
	fullPath := filepath.Join(w.baseDir, filename)

	w.logger.Info("writing CSV report",
		slog.String("path", fullPath),
		slog.Int("record_count", len(records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	for i, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	return writer.Error()
}
