package dataprocessing

import "strings"

// DefaultValueColumn is the fixed fallback name for the trading-value column
// when no header matches the heuristic.
const DefaultValueColumn = "成交額(百萬)"

// Markers the trading-value column heuristic looks for: a header must contain
// both to qualify.
const (
	valueColumnTradeMarker = "成交"
	valueColumnUnitMarker  = "百萬"
)

// ResolveValueColumn picks the trading-value column from a header. Candidates
// are considered in original column order: the first header containing both
// the trade marker and the millions unit marker wins. If none matches, the
// fallback name is used when present. The second return is false when neither
// resolves, so the ambiguity stays auditable instead of hiding behind a
// truthy check.
func ResolveValueColumn(columns []string, fallback string) (string, bool) {
	for _, col := range columns {
		if strings.Contains(col, valueColumnTradeMarker) && strings.Contains(col, valueColumnUnitMarker) {
			return col, true
		}
	}
	if fallback == "" {
		fallback = DefaultValueColumn
	}
	for _, col := range columns {
		if col == fallback {
			return col, true
		}
	}
	return "", false
}
