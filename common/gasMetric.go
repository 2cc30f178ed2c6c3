package common

import (
	"fmt"
	"strings"
)

// GasMetric is the physical basis every sample of a calibration run is measured in
type GasMetric uint8

const (
	// Time measures wall-clock nanoseconds
	Time GasMetric = iota
	// ICount measures executed CPU instructions
	ICount
)

const (
	timeName   = "time"
	iCountName = "icount"
)

// ICountDivisor scales instruction counts so that a SHA-256 host call costs roughly the same
// under both metrics on a 3.2GHz Core i5
const ICountDivisor = uint64(8)

// String returns the configuration name of the gas metric
func (gm GasMetric) String() string {
	switch gm {
	case Time:
		return timeName
	case ICount:
		return iCountName
	default:
		return fmt.Sprintf("unknown(%d)", uint8(gm))
	}
}

// Divisor returns the scaling divisor applied when converting a measurement into gas
func (gm GasMetric) Divisor() (uint64, error) {
	switch gm {
	case Time:
		return 1, nil
	case ICount:
		return ICountDivisor, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidGasMetric, uint8(gm))
	}
}

// ParseGasMetric returns the gas metric with the provided name
func ParseGasMetric(name string) (GasMetric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case timeName:
		return Time, nil
	case iCountName:
		return ICount, nil
	default:
		return 0, fmt.Errorf("%w: %q, must be one of %s, %s", ErrInvalidGasMetric, name, timeName, iCountName)
	}
}
