// Package exporter renders the three derived views to CSV and JSON files.
// CSV output carries a UTF-8 BOM so spreadsheets pick the right encoding,
// and percentage/value fields are formatted with two decimal places. This is
// presentation; the pipeline itself never formats numbers.
package exporter
