package dataprocessing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twsecli/pkg/contracts/domain"
)

func industryFixture() []domain.IndustryEntry {
	return []domain.IndustryEntry{
		{ID: "2330", Name: "台積電", Industry: "半導體"},
		{ID: "2881", Name: "富邦金", Industry: "金控業"},
		{ID: "1101", Name: "台泥", Industry: "水泥工業"},
		{ID: "2412", Name: "中華電", Industry: "通信網路業"},
	}
}

func TestBuildRevenueLeaderboard(t *testing.T) {
	table := NewTable(
		[]string{"代號", "名稱", "單月營收年增(%)"},
		[][]string{
			{"2330", "台積電", "12.34"},
			{"2881", "富邦金", "99.99"},  // excluded sector
			{"1101", "台泥", "45.6"},
			{"2412", "中華電", "80.0"},   // excluded sector
			{"9999", "無名", "55.5"},     // not in industry table, dropped
			{"2330", "台積電", "N/A"},    // sentinel, sorts last
		},
	)

	entries, err := BuildRevenueLeaderboard(table, industryFixture(), DefaultExcludedIndustries, 50)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "1101", entries[0].ID)
	assert.InDelta(t, 45.6, entries[0].GrowthRate, 1e-9)
	assert.Equal(t, "2330", entries[1].ID)
	assert.InDelta(t, 12.34, entries[1].GrowthRate, 1e-9)

	// Unparseable growth carries the sentinel and ranks at the bottom.
	assert.InDelta(t, float64(GrowthSentinel), entries[2].GrowthRate, 1e-9)

	for _, entry := range entries {
		assert.NotContains(t, DefaultExcludedIndustries, entry.Industry)
	}
}

func TestBuildRevenueLeaderboardTruncation(t *testing.T) {
	industry := make([]domain.IndustryEntry, 0, 60)
	rows := make([][]string, 0, 60)
	for i := 0; i < 60; i++ {
		id := fmt.Sprintf("%04d", i)
		industry = append(industry, domain.IndustryEntry{ID: id, Industry: "半導體"})
		rows = append(rows, []string{id, "公司" + id, fmt.Sprintf("%d.5", i)})
	}
	table := NewTable([]string{"代號", "名稱", "單月營收年增(%)"}, rows)

	entries, err := BuildRevenueLeaderboard(table, industry, nil, 50)
	require.NoError(t, err)
	assert.Len(t, entries, 50)

	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].GrowthRate, entries[i].GrowthRate,
			"growth must be non-increasing")
	}
}

func TestBuildRevenueLeaderboardDuplicateIndustryFansOut(t *testing.T) {
	industry := []domain.IndustryEntry{
		{ID: "2330", Industry: "半導體"},
		{ID: "2330", Industry: "電子零組件"},
	}
	table := NewTable(
		[]string{"代號", "名稱", "單月營收年增(%)"},
		[][]string{{"2330", "台積電", "10"}},
	)

	entries, err := BuildRevenueLeaderboard(table, industry, nil, 50)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "one-to-many merge keeps both rows")
}

func TestBuildRevenueLeaderboardSchemaError(t *testing.T) {
	table := NewTable([]string{"代號", "名稱"}, nil)

	_, err := BuildRevenueLeaderboard(table, nil, nil, 50)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, SourceRevenue, schemaErr.Source)
	assert.Equal(t, []string{"單月營收年增(%)"}, schemaErr.Missing)
}

func TestBuildRevenueLookup(t *testing.T) {
	table := NewTable(
		[]string{"代號", "名稱", "單月營收年增(%)"},
		[][]string{
			{`="2330"`, "台積電", "12.34"},
			{"1101", "台泥", "N/A"},
			{"2603", "長榮", "-15.2"},
			{"2603", "長榮", "1.0"}, // duplicates preserved
		},
	)

	entries := BuildRevenueLookup(table)
	require.Len(t, entries, 4, "no filtering, no truncation")

	require.NotNil(t, entries[0].GrowthRate)
	assert.InDelta(t, 12.34, *entries[0].GrowthRate, 1e-9)
	assert.Equal(t, "2330", entries[0].ID)

	// Unparseable stays missing here, never the sentinel.
	assert.Nil(t, entries[1].GrowthRate)

	require.NotNil(t, entries[2].GrowthRate)
	assert.InDelta(t, -15.2, *entries[2].GrowthRate, 1e-9)
}

func TestBuildRevenueLookupMissingColumnIsSoft(t *testing.T) {
	table := NewTable([]string{"代號", "名稱"}, [][]string{{"2330", "台積電"}})
	assert.Nil(t, BuildRevenueLookup(table))
}
