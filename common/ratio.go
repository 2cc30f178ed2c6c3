package common

import (
	"fmt"
	"math/big"
)

// Ratio is a non-negative rational number, the total cost units of a set of samples over their count
type Ratio struct {
	Numerator   uint64
	Denominator uint64
}

// NewRatio creates a ratio, rejecting a zero denominator
func NewRatio(numerator uint64, denominator uint64) (Ratio, error) {
	if denominator == 0 {
		return Ratio{}, ErrZeroDenominator
	}

	return Ratio{
		Numerator:   numerator,
		Denominator: denominator,
	}, nil
}

// IsValid returns true if the denominator is not zero
func (r Ratio) IsValid() bool {
	return r.Denominator != 0
}

// Rat returns the ratio as an exact big rational
func (r Ratio) Rat() *big.Rat {
	return new(big.Rat).SetFrac(
		new(big.Int).SetUint64(r.Numerator),
		new(big.Int).SetUint64(r.Denominator),
	)
}

// String returns the ratio as numerator/denominator
func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.Numerator, r.Denominator)
}

// RatioFromRat converts a big rational back into a ratio. The rational is always reduced, so two equal
// rationals yield the same ratio.
func RatioFromRat(value *big.Rat) (Ratio, error) {
	if value.Sign() < 0 {
		return Ratio{}, fmt.Errorf("%w: %s", ErrNegativeRatio, value.String())
	}

	num := value.Num()
	denom := value.Denom()
	if !num.IsUint64() || !denom.IsUint64() {
		return Ratio{}, fmt.Errorf("%w: ratio %s does not fit 64 bits", ErrArithmeticOverflow, value.String())
	}

	return Ratio{
		Numerator:   num.Uint64(),
		Denominator: denom.Uint64(),
	}, nil
}
