package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "$0.00"},
		{"whole amount", 150, "$150.00"},
		{"cents preserved", 1234.5, "$1,234.50"},
		{"no precision lost on cents", 0.1 + 0.2, "$0.30"},
		{"thousands grouping", 1250000, "$1,250,000.00"},
		{"exactly one thousand", 1000, "$1,000.00"},
		{"negative", -42.75, "-$42.75"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.amount))
		})
	}
}
