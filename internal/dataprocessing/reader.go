package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadTable reads a delimited text table with a header row. The full source
// is read up front, decoded with the dual-encoding fallback, then parsed as
// CSV. Ragged rows are kept; Excel quoting artifacts like ="0050" survive
// into the cells and are dealt with by NormalizeID.
func ReadTable(r io.Reader, encodings ...string) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	text, err := DecodeText(raw, encodings...)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("source table has no header row")
	}

	return NewTable(records[0], records[1:]), nil
}

// ReadTableXLSX reads the same kind of table from a spreadsheet stream. The
// first sheet is used; the first non-empty row becomes the header.
func ReadTableXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	for i, row := range rows {
		if !rowEmpty(row) {
			return NewTable(row, rows[i+1:]), nil
		}
	}
	return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
}

// ReadTableAny dispatches on the file name: .xlsx goes through excelize,
// anything else is treated as delimited text.
func ReadTableAny(r io.Reader, name string, encodings ...string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		return ReadTableXLSX(r)
	}
	return ReadTable(r, encodings...)
}

// ReadTableFile opens and reads a table from disk via ReadTableAny.
func ReadTableFile(path string, encodings ...string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadTableAny(f, path, encodings...)
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
