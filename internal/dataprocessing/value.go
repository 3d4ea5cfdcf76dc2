package dataprocessing

import (
	"sort"
	"strings"

	"twsecli/pkg/contracts/domain"
)

// BuildValueRanking builds the full trading-value ranking. The value column
// is resolved heuristically (see ResolveValueColumn); its figures are in
// millions and are converted to hundred-millions. Unparseable values count as
// zero volume rather than being excluded, so the output row count always
// equals the input row count. The result is sorted descending by the derived
// field and NOT truncated; taking a head is the caller's business.
func BuildValueRanking(val *Table, fallbackColumn string) ([]domain.ValueEntry, error) {
	missing := val.MissingColumns(ColSecurityID, ColSecurityName)

	var columns []string
	if val != nil {
		columns = val.Columns
	}
	valueCol, ok := ResolveValueColumn(columns, fallbackColumn)
	if !ok {
		if fallbackColumn == "" {
			fallbackColumn = DefaultValueColumn
		}
		missing = append(missing, fallbackColumn)
	}
	if len(missing) > 0 {
		return nil, newSchemaError(SourceValue, missing)
	}

	entries := make([]domain.ValueEntry, 0, val.RowCount())
	for _, row := range val.Rows {
		id, _ := val.Cell(row, ColSecurityID)
		name, _ := val.Cell(row, ColSecurityName)
		rawValue, _ := val.Cell(row, valueCol)

		millions, parsed := ParseFloat(rawValue)
		if !parsed {
			millions = 0
		}
		entries = append(entries, domain.ValueEntry{
			ID:                       NormalizeID(id),
			Name:                     strings.TrimSpace(name),
			TradeValueHundredMillion: millions / 100,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TradeValueHundredMillion > entries[j].TradeValueHundredMillion
	})
	return entries, nil
}
