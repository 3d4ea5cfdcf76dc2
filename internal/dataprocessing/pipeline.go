package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"

	"twsecli/pkg/contracts/domain"
)

// Config holds the tunables of a pipeline run.
type Config struct {
	TopRevenue          int      // leaderboard truncation, default 50
	TopComposite        int      // composite head size, default 20
	ExcludedIndustries  []string // sectors removed from the leaderboard
	ValueColumnFallback string   // exact fallback name for the trading-value column
}

// DefaultConfig returns the stock configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		TopRevenue:          50,
		TopComposite:        20,
		ExcludedIndustries:  DefaultExcludedIndustries,
		ValueColumnFallback: DefaultValueColumn,
	}
}

// Processor runs the full clean/join/rank pipeline over one snapshot of the
// three source tables. It is stateless across runs; a run is synchronous and
// idempotent given identical inputs.
type Processor struct {
	logger *slog.Logger
	cfg    Config
}

// NewProcessor creates a processor. A nil logger falls back to slog.Default;
// zero config fields are filled from DefaultConfig.
func NewProcessor(logger *slog.Logger, cfg Config) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	defaults := DefaultConfig()
	if cfg.TopRevenue <= 0 {
		cfg.TopRevenue = defaults.TopRevenue
	}
	if cfg.TopComposite <= 0 {
		cfg.TopComposite = defaults.TopComposite
	}
	if cfg.ExcludedIndustries == nil {
		cfg.ExcludedIndustries = defaults.ExcludedIndustries
	}
	if cfg.ValueColumnFallback == "" {
		cfg.ValueColumnFallback = defaults.ValueColumnFallback
	}
	return &Processor{logger: logger, cfg: cfg}
}

// Result carries the three derived views plus per-source error messages.
// A view may be nil while its error explains why; independent branches still
// populate theirs.
type Result struct {
	Composite []domain.CompositeEntry `json:"composite"`
	Revenue   []domain.RevenueEntry   `json:"revenue"`
	Value     []domain.ValueEntry     `json:"value"`

	IndustryErr string `json:"industry_error,omitempty"`
	RevenueErr  string `json:"revenue_error,omitempty"`
	ValueErr    string `json:"value_error,omitempty"`
}

// HasErrors reports whether any source failed its schema contract.
func (r *Result) HasErrors() bool {
	return r.IndustryErr != "" || r.RevenueErr != "" || r.ValueErr != ""
}

// Run processes one snapshot. Schema errors land in the Result so callers can
// display partial views; only an unanticipated failure (a panic somewhere in
// the run) aborts everything and comes back as the error return.
func (p *Processor) Run(ctx context.Context, rev, val, ind *Table) (result *Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.ErrorContext(ctx, "pipeline run aborted",
				slog.Any("panic", rec))
			result = nil
			err = fmt.Errorf("pipeline run failed: %v", rec)
		}
	}()

	res := &Result{}

	industry, indErr := BuildIndustryTable(ind)
	if indErr != nil {
		p.logger.WarnContext(ctx, "industry table unavailable",
			slog.String("error", indErr.Error()))
		res.IndustryErr = indErr.Error()
	}

	// The leaderboard needs the industry table; without it the revenue branch
	// only contributes the lookup used by the composite.
	if indErr == nil {
		leaderboard, revErr := BuildRevenueLeaderboard(rev, industry, p.cfg.ExcludedIndustries, p.cfg.TopRevenue)
		if revErr != nil {
			p.logger.WarnContext(ctx, "revenue leaderboard unavailable",
				slog.String("error", revErr.Error()))
			res.RevenueErr = revErr.Error()
		} else {
			res.Revenue = leaderboard
		}
	}

	ranking, valErr := BuildValueRanking(val, p.cfg.ValueColumnFallback)
	if valErr != nil {
		p.logger.WarnContext(ctx, "value ranking unavailable",
			slog.String("error", valErr.Error()))
		res.ValueErr = valErr.Error()
	} else {
		res.Value = ranking
		lookup := BuildRevenueLookup(rev)
		if lookup == nil {
			p.logger.WarnContext(ctx, "revenue lookup unavailable, composite stays unenriched")
		}
		res.Composite = BuildCompositeTopN(ranking, lookup, industry, p.cfg.TopComposite)
	}

	p.logger.InfoContext(ctx, "pipeline run complete",
		slog.Int("composite_rows", len(res.Composite)),
		slog.Int("revenue_rows", len(res.Revenue)),
		slog.Int("value_rows", len(res.Value)),
		slog.Bool("partial", res.HasErrors()))

	return res, nil
}
