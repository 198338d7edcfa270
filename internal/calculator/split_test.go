package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSplitEvenly(t *testing.T) {
	tests := []struct {
		name  string
		total string
		ids   []string
		want  map[string]string
	}{
		{"even", "90.00", []string{"a", "b", "c"}, map[string]string{"a": "30.00", "b": "30.00", "c": "30.00"}},
		{"one cent left over", "100.00", []string{"c", "a", "b"}, map[string]string{"a": "33.34", "b": "33.33", "c": "33.33"}},
		{"two cents left over", "0.05", []string{"a", "b", "c"}, map[string]string{"a": "0.02", "b": "0.02", "c": "0.01"}},
		{"less than a cent each", "0.01", []string{"a", "b", "c"}, map[string]string{"a": "0.01", "b": "0.00", "c": "0.00"}},
		{"nothing spent", "0", []string{"a", "b"}, map[string]string{"a": "0.00", "b": "0.00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := SplitEvenly(decimal.RequireFromString(tt.total), tt.ids)
			assert.Len(t, shares, len(tt.ids))

			sum := decimal.Zero
			for id, want := range tt.want {
				assert.Equal(t, want, shares[id].StringFixed(CurrencyScale), "share of %s", id)
				sum = sum.Add(shares[id])
			}
			assert.True(t, sum.Equal(decimal.RequireFromString(tt.total)), "shares sum to %s", sum)
		})
	}
}

func TestSplitEvenly_NoMembers(t *testing.T) {
	assert.Empty(t, SplitEvenly(decimal.NewFromInt(10), nil))
}
