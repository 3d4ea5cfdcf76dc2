package dataprocessing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twsecli/pkg/contracts/domain"
)

func TestBuildCompositeTopN(t *testing.T) {
	growth := 12.34
	ranking := []domain.ValueEntry{
		{ID: "2330", Name: "台積電", TradeValueHundredMillion: 12345.67},
		{ID: "2317", Name: "鴻海", TradeValueHundredMillion: 5000},
		{ID: "9999", Name: "無名", TradeValueHundredMillion: 10},
	}
	lookup := []domain.RevenueLookupEntry{
		{ID: "2330", GrowthRate: &growth},
		{ID: "2317", GrowthRate: nil},
	}
	industry := []domain.IndustryEntry{
		{ID: "2330", Industry: "半導體"},
		{ID: "2317", Industry: "其他電子業"},
	}

	out := BuildCompositeTopN(ranking, lookup, industry, 20)
	require.Len(t, out, 3)

	require.NotNil(t, out[0].GrowthRate)
	assert.InDelta(t, 12.34, *out[0].GrowthRate, 1e-9)
	assert.Equal(t, "半導體", out[0].Industry)
	assert.True(t, out[0].HasIndustry)

	// Present in the lookup but with no figure: still missing, not zero.
	assert.Nil(t, out[1].GrowthRate)
	assert.True(t, out[1].HasIndustry)

	// Absent from both side tables: row survives with missing enrichment.
	assert.Nil(t, out[2].GrowthRate)
	assert.False(t, out[2].HasIndustry)
	assert.Empty(t, out[2].Industry)

	// Ranking order is preserved, enrichment never re-sorts.
	assert.Equal(t, []string{"2330", "2317", "9999"},
		[]string{out[0].ID, out[1].ID, out[2].ID})
}

func TestBuildCompositeTopNHeadSize(t *testing.T) {
	ranking := make([]domain.ValueEntry, 30)
	for i := range ranking {
		ranking[i] = domain.ValueEntry{ID: fmt.Sprintf("%04d", i)}
	}

	assert.Len(t, BuildCompositeTopN(ranking, nil, nil, 20), 20)
	assert.Len(t, BuildCompositeTopN(ranking[:7], nil, nil, 20), 7)
	assert.Empty(t, BuildCompositeTopN(nil, nil, nil, 20))
}

func TestBuildCompositeTopNNilLookups(t *testing.T) {
	ranking := []domain.ValueEntry{{ID: "2330", Name: "台積電"}}

	out := BuildCompositeTopN(ranking, nil, nil, 20)
	require.Len(t, out, 1)
	assert.Nil(t, out[0].GrowthRate)
	assert.False(t, out[0].HasIndustry)
}

func TestBuildCompositeTopNFirstOccurrenceWins(t *testing.T) {
	g1, g2 := 1.0, 2.0
	ranking := []domain.ValueEntry{{ID: "2330"}}
	lookup := []domain.RevenueLookupEntry{
		{ID: "2330", GrowthRate: &g1},
		{ID: "2330", GrowthRate: &g2},
	}

	out := BuildCompositeTopN(ranking, lookup, nil, 20)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].GrowthRate)
	assert.InDelta(t, 1.0, *out[0].GrowthRate, 1e-9)
}
