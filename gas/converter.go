package gas

import (
	"fmt"
	"math/big"

	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/params"
)

// GasInMeasureUnit is the fixed point scale applied to a measured ratio. One unit of the
// gas metric costs one million gas.
const GasInMeasureUnit = uint64(1_000_000)

var (
	bigScale     = new(big.Int).SetUint64(GasInMeasureUnit)
	bigMaxUint64 = new(big.Int).SetUint64(^uint64(0))
)

// RatioToGas converts a measured ratio into gas, truncating the result:
// floor(numerator * GasInMeasureUnit / (denominator * divisor))
func RatioToGas(gasMetric common.GasMetric, value common.Ratio) (uint64, error) {
	if value.Denominator == 0 {
		return 0, common.ErrZeroDenominator
	}

	return RatToGas(gasMetric, value.Rat())
}

// RatToGas converts an exact, non negative rational cost into gas the same way RatioToGas does
func RatToGas(gasMetric common.GasMetric, value *big.Rat) (uint64, error) {
	divisor, err := gasMetric.Divisor()
	if err != nil {
		return 0, err
	}
	if value.Sign() < 0 {
		return 0, fmt.Errorf("%w: %s", common.ErrNegativeRatio, value.RatString())
	}

	numerator := new(big.Int).Mul(value.Num(), bigScale)
	denominator := new(big.Int).Mul(value.Denom(), new(big.Int).SetUint64(divisor))

	result := numerator.Quo(numerator, denominator)
	if result.Cmp(bigMaxUint64) > 0 {
		return 0, fmt.Errorf("%w: %s scaled under %s is %s gas", common.ErrArithmeticOverflow, value.RatString(), gasMetric, result)
	}

	return result.Uint64(), nil
}

// GasToFee splits a gas value into a fee. Each of the three components gets half of the value,
// so an action that is sent and executed is charged 1.5 times its cost.
func GasToFee(value uint64) params.Fee {
	half := value / 2

	return params.Fee{
		SendSameAccount:      half,
		SendDifferentAccount: half,
		Execution:            half,
	}
}

// MeasuredToFee converts the measured cost of an action into a fee
func MeasuredToFee(gasMetric common.GasMetric, value common.Ratio) (params.Fee, error) {
	converted, err := RatioToGas(gasMetric, value)
	if err != nil {
		return params.Fee{}, err
	}

	return GasToFee(converted), nil
}
