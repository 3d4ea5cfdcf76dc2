// Package dataprocessing implements the cleaning, join and ranking pipeline
// for the three TWSE tabular exports: monthly revenue growth, trading-value
// rankings and the industry classification table.
//
// The package is organised leaf to root:
//
//   - normalize.go: pure field cleaning (security codes, numeric strings)
//   - decode.go / reader.go: dual-encoding text decode and CSV/XLSX ingestion
//   - columns.go: ordered-candidate resolution of the trading-value column
//   - industry.go, revenue.go, value.go, composite.go: the view builders
//   - pipeline.go: the Processor tying the builders together per invocation
//
// Every invocation processes three fully materialised in-memory tables
// synchronously. The builders are pure functions; the Processor adds logging
// and the per-source error policy on top.
package dataprocessing
