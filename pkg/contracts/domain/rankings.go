package domain

// IndustryEntry is one row of the industry classification table, keyed by the
// normalized security code. Duplicate codes are kept as-is; downstream merges
// fan out on them.
type IndustryEntry struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name"`
	Industry string `json:"industry" validate:"required"`
}

// RevenueEntry is one row of the revenue-growth leaderboard. GrowthRate is the
// single-month year-over-year growth percentage; rows whose source value did
// not parse carry the sentinel applied by the ranker and sort last.
type RevenueEntry struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	GrowthRate float64 `json:"growth_rate"`
	Industry   string  `json:"industry"`
}

// ValueEntry is one row of the full trading-value ranking. The trade value is
// already converted from millions to hundred-millions.
type ValueEntry struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	TradeValueHundredMillion float64 `json:"trade_value_hundred_million"`
}

// RevenueLookupEntry maps a security code to its growth rate without any
// filtering or defaulting. A nil GrowthRate means the source had no parseable
// figure, which is distinct from a genuine zero.
type RevenueLookupEntry struct {
	ID         string   `json:"id"`
	GrowthRate *float64 `json:"growth_rate"`
}

// CompositeEntry is one row of the trading-value Top-N enriched with revenue
// growth and industry classification. Both enrichments are optional per row:
// GrowthRate is nil and HasIndustry is false when the side lookups had no
// match for the code.
type CompositeEntry struct {
	ID                       string   `json:"id"`
	Name                     string   `json:"name"`
	TradeValueHundredMillion float64  `json:"trade_value_hundred_million"`
	GrowthRate               *float64 `json:"growth_rate"`
	Industry                 string   `json:"industry,omitempty"`
	HasIndustry              bool     `json:"has_industry"`
}
