package exporter

import "fmt"

// formatFloat formats a value for display with exactly 2 decimal places, so
// 13.4 renders as 13.40.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatOptionalFloat renders a missing value as an empty cell instead of a
// fake zero.
func formatOptionalFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}
