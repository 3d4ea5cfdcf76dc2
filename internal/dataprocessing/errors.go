package dataprocessing

import (
	"fmt"
	"strings"
)

// Source labels used in schema errors and logs.
const (
	SourceRevenue  = "revenue"
	SourceValue    = "value"
	SourceIndustry = "industry"
)

// SchemaError reports required columns absent from a source table. It is a
// component-level failure: the affected view is not produced, but independent
// branches of the pipeline keep running.
type SchemaError struct {
	Source  string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s source missing columns: %s", e.Source, strings.Join(e.Missing, ", "))
}

func newSchemaError(source string, missing []string) *SchemaError {
	return &SchemaError{Source: source, Missing: missing}
}
