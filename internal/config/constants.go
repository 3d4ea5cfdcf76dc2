package config

import "time"

// Application constants for the TWSE observation pipeline.
const (
	AppName    = "TWSE Observer"
	AppVersion = "1.0.0"

	// DefaultTitle is the page title handed to the presentation layer. It is
	// process-wide display state only; the pipeline never reads it.
	DefaultTitle = "台股觀測站：成交值與營收綜合分析"

	// Ranking sizes
	DefaultTopRevenue   = 50
	DefaultTopComposite = 20

	// Upload limits
	MaxUploadBytes = 32 << 20 // per multipart request

	// Network timeouts
	DefaultHTTPTimeout = 30 * time.Second

	// Report file names written by cmd/processor
	CompositeReportFile = "composite_top20.csv"
	RevenueReportFile   = "revenue_top50.csv"
	ValueReportFile     = "value_ranking.csv"
)
