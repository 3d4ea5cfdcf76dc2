package dataprocessing

import (
	"strings"

	"twsecli/pkg/contracts/domain"
)

// BuildIndustryTable validates and trims the industry classification export
// to its canonical {code, name, industry} projection. Codes are normalized;
// rows with an empty industry are dropped outright (strict mode, no unknown
// placeholder). Duplicate codes are kept, so downstream merges may fan out.
func BuildIndustryTable(t *Table) ([]domain.IndustryEntry, error) {
	if missing := t.MissingColumns(ColSecurityID, ColSecurityName, ColIndustry); len(missing) > 0 {
		return nil, newSchemaError(SourceIndustry, missing)
	}

	entries := make([]domain.IndustryEntry, 0, t.RowCount())
	for _, row := range t.Rows {
		id, _ := t.Cell(row, ColSecurityID)
		name, _ := t.Cell(row, ColSecurityName)
		industry, _ := t.Cell(row, ColIndustry)

		industry = strings.TrimSpace(industry)
		if industry == "" {
			continue
		}
		entries = append(entries, domain.IndustryEntry{
			ID:       NormalizeID(id),
			Name:     strings.TrimSpace(name),
			Industry: industry,
		})
	}
	return entries, nil
}
