package assembler

import (
	"fmt"
	"math/big"

	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/gas"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
)

// deriver turns metric measurements into exact per operation costs. Every cost is a difference
// between two measured transactions, so noise can make it negative: such costs are clamped to zero.
type deriver struct {
	measurements MeasurementsHandler
	gasMetric    common.GasMetric
	cache        map[metric.Metric]*big.Rat
}

func newDeriver(measurements MeasurementsHandler) *deriver {
	return &deriver{
		measurements: measurements,
		gasMetric:    measurements.GasMetric(),
		cache:        make(map[metric.Metric]*big.Rat),
	}
}

// perTransaction returns the measured cost of one transaction of m
func (d *deriver) perTransaction(m metric.Metric) (*big.Rat, error) {
	cached, ok := d.cache[m]
	if ok {
		return cached, nil
	}

	ratio, err := d.measurements.Aggregate(m)
	if err != nil {
		return nil, fmt.Errorf("%w while deriving costs from %s", err, m)
	}
	if !ratio.IsValid() {
		return nil, fmt.Errorf("%w in the measurement of %s", common.ErrZeroDenominator, m)
	}

	value := ratio.Rat()
	d.cache[m] = value

	return value, nil
}

func clamp(name string, value *big.Rat) *big.Rat {
	if value.Sign() >= 0 {
		return value
	}

	log.Warn("negative derived cost, using zero", "cost", name, "value", value.FloatString(3))

	return new(big.Rat)
}

// diff returns cost(minuend) - cost(subtrahend)
func (d *deriver) diff(name string, minuend metric.Metric, subtrahend metric.Metric) (*big.Rat, error) {
	x, err := d.perTransaction(minuend)
	if err != nil {
		return nil, err
	}
	y, err := d.perTransaction(subtrahend)
	if err != nil {
		return nil, err
	}

	return clamp(name, new(big.Rat).Sub(x, y)), nil
}

// base returns the cost of one operation of a function call metric: the noop call overhead
// removed, divided by the operations performed per call
func (d *deriver) base(name string, m metric.Metric) (*big.Rat, error) {
	value, err := d.diff(name, m, metric.Noop)
	if err != nil {
		return nil, err
	}

	info, err := metric.InfoOf(m)
	if err != nil {
		return nil, err
	}

	return value.Quo(value, new(big.Rat).SetUint64(info.OpsPerCall)), nil
}

// perByte returns the cost of one more payload byte, out of two metrics running the same operation on
// payloads of different sizes
func (d *deriver) perByte(name string, large metric.Metric, small metric.Metric) (*big.Rat, error) {
	largeInfo, err := metric.InfoOf(large)
	if err != nil {
		return nil, err
	}
	smallInfo, err := metric.InfoOf(small)
	if err != nil {
		return nil, err
	}
	if largeInfo.PayloadBytes <= smallInfo.PayloadBytes {
		return nil, fmt.Errorf("%w: %s does not carry more payload than %s", common.ErrZeroDenominator, large, small)
	}

	return d.perByteDelta(name, large, small, largeInfo.PayloadBytes-smallInfo.PayloadBytes)
}

// perByteDelta is perByte with an explicit byte delta, for metrics whose extra bytes are not in the payload
func (d *deriver) perByteDelta(name string, large metric.Metric, small metric.Metric, bytesDelta uint64) (*big.Rat, error) {
	value, err := d.diff(name, large, small)
	if err != nil {
		return nil, err
	}

	info, err := metric.InfoOf(large)
	if err != nil {
		return nil, err
	}

	units := new(big.Int).Mul(new(big.Int).SetUint64(info.OpsPerCall), new(big.Int).SetUint64(bytesDelta))

	return value.Quo(value, new(big.Rat).SetInt(units)), nil
}

// less returns x - y*count clamped to zero
func less(name string, x *big.Rat, y *big.Rat, count uint64) *big.Rat {
	scaled := new(big.Rat).Mul(y, new(big.Rat).SetUint64(count))
	return clamp(name, new(big.Rat).Sub(x, scaled))
}

func maxRat(x *big.Rat, y *big.Rat) *big.Rat {
	if x.Cmp(y) >= 0 {
		return x
	}

	return y
}

// toGas converts a derived cost. The cost must still fit a 64 bit ratio, like the measurements it comes from.
func (d *deriver) toGas(name string, value *big.Rat) (uint64, error) {
	ratio, err := common.RatioFromRat(value)
	if err != nil {
		return 0, fmt.Errorf("%w while deriving %s", err, name)
	}

	converted, err := gas.RatioToGas(d.gasMetric, ratio)
	if err != nil {
		return 0, fmt.Errorf("%w while converting %s", err, name)
	}

	return converted, nil
}
