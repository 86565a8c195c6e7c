package currency

import (
	"testing"

	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRupees(t *testing.T) {
	cases := map[string]int64{
		"0":        0,
		"1":        100,
		"150.00":   15000,
		"0.005":    1,
		"0.004":    0,
		"1499.995": 150000,
		" 12.3 ":   1230,
	}
	for in, want := range cases {
		got, err := ParseRupees(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseRupeesRejects(t *testing.T) {
	for _, in := range []string{"", "abc", "-1", "NaN", "Inf", "1e30"} {
		_, err := ParseRupees(in)
		require.Error(t, err, in)
		assert.Equal(t, models.KindValidation, models.KindOf(err), in)
	}
}

func TestParsePositiveRupees(t *testing.T) {
	_, err := ParsePositiveRupees("0.001")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	got, err := ParsePositiveRupees("75")
	require.NoError(t, err)
	assert.Equal(t, int64(7500), got)
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "200.00", FormatCents(20000))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "0.00", FormatCents(0))
}
