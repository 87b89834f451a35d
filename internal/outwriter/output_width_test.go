package outwriter

import (
	"testing"

	"github.com/beaconlabs/beacon/internal/contract"

	"github.com/stretchr/testify/assert"
)

func TestGetMaxTableTitleWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{
			name:     "explicit width override",
			width:    100,
			expected: 55,
		},
		{
			name:     "narrow terminal clamps to minimum",
			width:    50,
			expected: 15,
		},
		{
			name:     "wide terminal clamps to maximum",
			width:    200,
			expected: 70,
		},
		{
			name:     "default fallback width",
			width:    80,
			expected: 35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.expected, GetMaxTableTitleWidth(cfg))
		})
	}
}
