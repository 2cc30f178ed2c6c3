package gas

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/params"
)

func TestRatioToGas(t *testing.T) {
	t.Parallel()

	t.Run("time metric", func(t *testing.T) {
		t.Parallel()

		value, err := RatioToGas(common.Time, common.Ratio{Numerator: 16_000_000, Denominator: 1000})
		require.Nil(t, err)
		assert.Equal(t, uint64(16_000_000_000), value)
	})
	t.Run("icount metric", func(t *testing.T) {
		t.Parallel()

		value, err := RatioToGas(common.ICount, common.Ratio{Numerator: 16_000_000, Denominator: 1000})
		require.Nil(t, err)
		assert.Equal(t, uint64(2_000_000_000), value)
	})
	t.Run("truncates", func(t *testing.T) {
		t.Parallel()

		value, err := RatioToGas(common.ICount, common.Ratio{Numerator: 1, Denominator: 3})
		require.Nil(t, err)
		assert.Equal(t, uint64(41666), value)
	})
	t.Run("zero numerator", func(t *testing.T) {
		t.Parallel()

		value, err := RatioToGas(common.Time, common.Ratio{Numerator: 0, Denominator: 3})
		require.Nil(t, err)
		assert.Zero(t, value)
	})
	t.Run("zero denominator should error", func(t *testing.T) {
		t.Parallel()

		_, err := RatioToGas(common.Time, common.Ratio{Numerator: 1})
		assert.Equal(t, common.ErrZeroDenominator, err)
	})
	t.Run("unknown gas metric should error", func(t *testing.T) {
		t.Parallel()

		_, err := RatioToGas(common.GasMetric(9), common.Ratio{Numerator: 1, Denominator: 1})
		assert.True(t, errors.Is(err, common.ErrInvalidGasMetric))
	})
	t.Run("overflow should error", func(t *testing.T) {
		t.Parallel()

		_, err := RatioToGas(common.Time, common.Ratio{Numerator: math.MaxUint64, Denominator: 1})
		assert.True(t, errors.Is(err, common.ErrArithmeticOverflow))

		value, err := RatioToGas(common.Time, common.Ratio{Numerator: math.MaxUint64, Denominator: GasInMeasureUnit})
		require.Nil(t, err)
		assert.Equal(t, uint64(math.MaxUint64), value)
	})
}

func TestRatToGas(t *testing.T) {
	t.Parallel()

	value, err := RatToGas(common.Time, big.NewRat(3, 7))
	require.Nil(t, err)
	assert.Equal(t, uint64(428571), value)

	_, err = RatToGas(common.Time, big.NewRat(-3, 7))
	assert.True(t, errors.Is(err, common.ErrNegativeRatio))

	wide := new(big.Rat).SetFrac(new(big.Int).Lsh(big.NewInt(1), 100), new(big.Int).Lsh(big.NewInt(1), 90))
	value, err = RatToGas(common.ICount, wide)
	require.Nil(t, err)
	assert.Equal(t, uint64(1024*GasInMeasureUnit/8), value)
}

func TestMeasuredToFee(t *testing.T) {
	t.Parallel()

	fee, err := MeasuredToFee(common.Time, common.Ratio{Numerator: 16_000_000, Denominator: 1000})
	require.Nil(t, err)
	assert.Equal(t, params.Fee{
		SendSameAccount:      8_000_000_000,
		SendDifferentAccount: 8_000_000_000,
		Execution:            8_000_000_000,
	}, fee)

	fee, err = MeasuredToFee(common.Time, common.Ratio{Numerator: 3, Denominator: 2_000_000})
	require.Nil(t, err)
	assert.Equal(t, params.Fee{}, fee)

	_, err = MeasuredToFee(common.Time, common.Ratio{Numerator: 1})
	assert.Equal(t, common.ErrZeroDenominator, err)
}

func TestRatioToGas_Properties(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("monotonic in the numerator", prop.ForAll(
		func(a uint64, b uint64, den uint64) bool {
			if a > b {
				a, b = b, a
			}
			gasA, errA := RatioToGas(common.Time, common.Ratio{Numerator: a, Denominator: den})
			gasB, errB := RatioToGas(common.Time, common.Ratio{Numerator: b, Denominator: den})

			return errA == nil && errB == nil && gasA <= gasB
		},
		gen.UInt64Range(0, 1<<40),
		gen.UInt64Range(0, 1<<40),
		gen.UInt64Range(1, 1<<20),
	))

	properties.Property("icount is the time value divided by the divisor", prop.ForAll(
		func(num uint64, den uint64) bool {
			value := common.Ratio{Numerator: num, Denominator: den}
			timeGas, errTime := RatioToGas(common.Time, value)
			iCountGas, errICount := RatioToGas(common.ICount, value)

			return errTime == nil && errICount == nil && iCountGas == timeGas/common.ICountDivisor
		},
		gen.UInt64Range(0, 1<<40),
		gen.UInt64Range(1, 1<<20),
	))

	properties.Property("fee components are equal halves", prop.ForAll(
		func(num uint64, den uint64) bool {
			value := common.Ratio{Numerator: num, Denominator: den}
			gasValue, _ := RatioToGas(common.ICount, value)
			fee, err := MeasuredToFee(common.ICount, value)

			return err == nil &&
				fee.SendSameAccount == gasValue/2 &&
				fee.SendSameAccount == fee.SendDifferentAccount &&
				fee.SendSameAccount == fee.Execution
		},
		gen.UInt64Range(0, 1<<40),
		gen.UInt64Range(1, 1<<20),
	))

	properties.TestingRun(t)
}
