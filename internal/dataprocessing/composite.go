package dataprocessing

import "twsecli/pkg/contracts/domain"

// BuildCompositeTopN enriches the head of the trading-value ranking with
// revenue growth and industry classification via left joins on the security
// code. The ranking order established upstream is preserved; enrichment never
// re-sorts. Either lookup may be nil (unavailable), in which case that
// enrichment stays missing for every row instead of aborting.
//
// Both joins are single-value lookups keeping the first occurrence per code,
// so the output row count is exactly min(topN, len(ranking)).
func BuildCompositeTopN(ranking []domain.ValueEntry, lookup []domain.RevenueLookupEntry, industry []domain.IndustryEntry, topN int) []domain.CompositeEntry {
	head := ranking
	if topN > 0 && len(head) > topN {
		head = head[:topN]
	}

	growthByID := make(map[string]*float64, len(lookup))
	for _, entry := range lookup {
		if _, seen := growthByID[entry.ID]; !seen {
			growthByID[entry.ID] = entry.GrowthRate
		}
	}

	industryByID := make(map[string]string, len(industry))
	for _, entry := range industry {
		if _, seen := industryByID[entry.ID]; !seen {
			industryByID[entry.ID] = entry.Industry
		}
	}

	out := make([]domain.CompositeEntry, 0, len(head))
	for _, entry := range head {
		composite := domain.CompositeEntry{
			ID:                       entry.ID,
			Name:                     entry.Name,
			TradeValueHundredMillion: entry.TradeValueHundredMillion,
			GrowthRate:               growthByID[entry.ID],
		}
		if sector, ok := industryByID[entry.ID]; ok {
			composite.Industry = sector
			composite.HasIndustry = true
		}
		out = append(out, composite)
	}
	return out
}
