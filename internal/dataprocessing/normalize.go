package dataprocessing

import (
	"strconv"
	"strings"
)

// Source column names shared by the three exports. The trading-value column is
// resolved dynamically, see columns.go.
const (
	ColSecurityID    = "代號"
	ColSecurityName  = "名稱"
	ColIndustry      = "產業別"
	ColMonthlyGrowth = "單月營收年增(%)"
)

// GrowthSentinel is the growth rate assigned by the revenue ranker when the
// source value does not parse. It sorts below any real percentage.
const GrowthSentinel = -999

// NormalizeID cleans a security code: the exports wrap codes in Excel
// formula-quoting artifacts such as ="0050", so every = and " is removed and
// the result is whitespace-trimmed. Applied to every identifier before any
// comparison or join. Idempotent.
func NormalizeID(value string) string {
	value = strings.ReplaceAll(value, "=", "")
	value = strings.ReplaceAll(value, `"`, "")
	return strings.TrimSpace(value)
}

// NormalizeNumber removes thousand-separator commas. Other noise is left in
// place; the subsequent parse decides what happens to it.
func NormalizeNumber(value string) string {
	return strings.ReplaceAll(value, ",", "")
}

// ParseFloat normalizes and parses a numeric string. It never fails hard: the
// second return is false on unparseable input and each caller applies its own
// default policy (sentinel, zero, or explicit missing).
func ParseFloat(value string) (float64, bool) {
	cleaned := strings.TrimSpace(NormalizeNumber(value))
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
