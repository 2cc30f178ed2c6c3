package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGasMetric(t *testing.T) {
	t.Parallel()

	t.Run("known names should work", func(t *testing.T) {
		t.Parallel()

		gm, err := ParseGasMetric("time")
		require.Nil(t, err)
		assert.Equal(t, Time, gm)

		gm, err = ParseGasMetric(" ICount ")
		require.Nil(t, err)
		assert.Equal(t, ICount, gm)
	})
	t.Run("unknown name should error", func(t *testing.T) {
		t.Parallel()

		_, err := ParseGasMetric("cycles")
		assert.True(t, errors.Is(err, ErrInvalidGasMetric))
	})
}

func TestGasMetric_Divisor(t *testing.T) {
	t.Parallel()

	divisor, err := Time.Divisor()
	require.Nil(t, err)
	assert.Equal(t, uint64(1), divisor)

	divisor, err = ICount.Divisor()
	require.Nil(t, err)
	assert.Equal(t, uint64(8), divisor)

	_, err = GasMetric(7).Divisor()
	assert.True(t, errors.Is(err, ErrInvalidGasMetric))
}

func TestGasMetric_StringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, gm := range []GasMetric{Time, ICount} {
		parsed, err := ParseGasMetric(gm.String())
		require.Nil(t, err)
		assert.Equal(t, gm, parsed)
	}
	assert.Equal(t, "unknown(9)", GasMetric(9).String())
}
