package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected int
		wantErr  bool
	}{
		{name: "empty uses fallback", raw: "", expected: 50},
		{name: "whitespace uses fallback", raw: "  ", expected: 50},
		{name: "explicit value", raw: "25", expected: 25},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-3", wantErr: true},
		{name: "not a number", raw: "many", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLimit(tt.raw, 50)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidLimit)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMaskCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "K7****XA", MaskCode("K7Q2M9XA"))
	assert.Equal(t, "AB******YZ", MaskCode("ABCDEFGHYZ"))
	assert.Equal(t, "****", MaskCode("ABCD"))
	assert.Empty(t, MaskCode(""))
}
