package dataprocessing

import (
	"sort"
	"strings"

	"twsecli/pkg/contracts/domain"
)

// DefaultExcludedIndustries is the sector exclusion set for the revenue
// leaderboard. The classification scheme spells several sectors both with and
// without the 業 suffix, so both variants are listed; the set is configurable
// rather than derived from the naming convention.
var DefaultExcludedIndustries = []string{
	"建材營造", "建材營造業",
	"金融保險", "金融保險業",
	"金控業",
	"銀行業",
	"證券業",
	"通信網路業",
}

// BuildRevenueLeaderboard builds the revenue-growth leaderboard: codes
// normalized, growth parsed with the sentinel default, merged with the
// industry table, filtered and truncated.
//
// The merge keeps only rows whose code appears in the industry table; unlike
// a pure left join, unmatched rows do not survive. Duplicate codes on the
// industry side fan the merge out one-to-many. Rows whose industry is in the
// exclusion set are then removed, the rest sorted by growth descending
// (stable, so tie order follows the source) and truncated to topN.
func BuildRevenueLeaderboard(rev *Table, industry []domain.IndustryEntry, excluded []string, topN int) ([]domain.RevenueEntry, error) {
	if missing := rev.MissingColumns(ColSecurityID, ColSecurityName, ColMonthlyGrowth); len(missing) > 0 {
		return nil, newSchemaError(SourceRevenue, missing)
	}

	industriesByID := make(map[string][]string, len(industry))
	for _, entry := range industry {
		industriesByID[entry.ID] = append(industriesByID[entry.ID], entry.Industry)
	}

	excludedSet := make(map[string]struct{}, len(excluded))
	for _, name := range excluded {
		excludedSet[name] = struct{}{}
	}

	entries := make([]domain.RevenueEntry, 0, rev.RowCount())
	for _, row := range rev.Rows {
		id, _ := rev.Cell(row, ColSecurityID)
		name, _ := rev.Cell(row, ColSecurityName)
		rawGrowth, _ := rev.Cell(row, ColMonthlyGrowth)

		growth, ok := ParseFloat(rawGrowth)
		if !ok {
			growth = GrowthSentinel
		}

		code := NormalizeID(id)
		for _, sector := range industriesByID[code] {
			if _, skip := excludedSet[sector]; skip {
				continue
			}
			entries = append(entries, domain.RevenueEntry{
				ID:         code,
				Name:       strings.TrimSpace(name),
				GrowthRate: growth,
				Industry:   sector,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].GrowthRate > entries[j].GrowthRate
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	return entries, nil
}

// BuildRevenueLookup builds the unfiltered code-to-growth lookup from the
// same revenue export. Missing or unparseable growth stays nil rather than
// defaulting, so composite rows can show "no figure" instead of a fake
// number. A missing required column is a soft failure: the lookup is simply
// unavailable and callers enrich with nothing.
func BuildRevenueLookup(rev *Table) []domain.RevenueLookupEntry {
	if missing := rev.MissingColumns(ColSecurityID, ColMonthlyGrowth); len(missing) > 0 {
		return nil
	}

	entries := make([]domain.RevenueLookupEntry, 0, rev.RowCount())
	for _, row := range rev.Rows {
		id, _ := rev.Cell(row, ColSecurityID)
		rawGrowth, _ := rev.Cell(row, ColMonthlyGrowth)

		entry := domain.RevenueLookupEntry{ID: NormalizeID(id)}
		if growth, ok := ParseFloat(rawGrowth); ok {
			entry.GrowthRate = &growth
		}
		entries = append(entries, entry)
	}
	return entries
}
