package handler

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/brand-spend-api/internal/config"
)

var defaultQuery = config.Query{DefaultLimit: 10, MinLimit: 1, MaxLimit: 1000}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "absent", query: "", want: 10},
		{name: "empty value", query: "limit=", want: 10},
		{name: "valid", query: "limit=50", want: 50},
		{name: "lower bound", query: "limit=1", want: 1},
		{name: "upper bound", query: "limit=1000", want: 1000},
		{name: "zero clamps up", query: "limit=0", want: 1},
		{name: "negative clamps up", query: "limit=-20", want: 1},
		{name: "too large clamps down", query: "limit=1001", want: 1000},
		{name: "overflowing integer clamps down", query: "limit=123456789012345678901234567890", want: 1000},
		{name: "not an integer", query: "limit=ten", want: 10},
		{name: "fraction", query: "limit=2.5", want: 10},
		{name: "sql metacharacters", query: "limit=" + url.QueryEscape("10; DROP TABLE brand_details;--"), want: 10},
		{name: "first value wins", query: "limit=3&limit=7", want: 3},
		{name: "other params ignored", query: "offset=20&limit=4", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ParseLimit(values, defaultQuery))
		})
	}
}
