package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveValueColumn(t *testing.T) {
	tests := []struct {
		name     string
		columns  []string
		fallback string
		want     string
		wantOK   bool
	}{
		{
			name:    "heuristic match",
			columns: []string{"代號", "名稱", "成交額(百萬)"},
			want:    "成交額(百萬)",
			wantOK:  true,
		},
		{
			name:    "first heuristic match wins by column order",
			columns: []string{"代號", "成交值(百萬)", "成交額(百萬)"},
			want:    "成交值(百萬)",
			wantOK:  true,
		},
		{
			name:    "marker alone is not enough",
			columns: []string{"成交量", "金額(百萬)", "成交額(百萬)"},
			want:    "成交額(百萬)",
			wantOK:  true,
		},
		{
			name:     "fallback name when heuristic misses",
			columns:  []string{"代號", "名稱", "总额"},
			fallback: "总额",
			want:     "总额",
			wantOK:   true,
		},
		{
			name:    "typed absence",
			columns: []string{"代號", "名稱", "收盤價"},
			wantOK:  false,
		},
		{
			name:   "empty header",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveValueColumn(tt.columns, tt.fallback)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
