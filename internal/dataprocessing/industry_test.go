package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twsecli/pkg/contracts/domain"
)

func TestBuildIndustryTable(t *testing.T) {
	table := NewTable(
		[]string{"代號", "名稱", "產業別"},
		[][]string{
			{`="2330"`, "台積電", "半導體"},
			{"1101", "台泥", ""},          // empty industry dropped, strict mode
			{"2881", "富邦金", "金控業"},
			{"2330", "台積電", "電子零組件"}, // duplicate code kept
		},
	)

	entries, err := BuildIndustryTable(table)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, domain.IndustryEntry{ID: "2330", Name: "台積電", Industry: "半導體"}, entries[0])
	assert.Equal(t, "2881", entries[1].ID)
	assert.Equal(t, "2330", entries[2].ID)
}

func TestBuildIndustryTableSchemaError(t *testing.T) {
	table := NewTable([]string{"代號", "名稱"}, [][]string{{"2330", "台積電"}})

	entries, err := BuildIndustryTable(table)
	assert.Nil(t, entries, "no partial table on schema failure")

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, SourceIndustry, schemaErr.Source)
	assert.Equal(t, []string{"產業別"}, schemaErr.Missing)
}

func TestBuildIndustryTableNamesAllMissingColumns(t *testing.T) {
	table := NewTable([]string{"股票"}, nil)

	_, err := BuildIndustryTable(table)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"代號", "名稱", "產業別"}, schemaErr.Missing)
}
