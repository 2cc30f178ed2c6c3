package common

import "errors"

// ErrMissingMeasurement signals that a required metric has no recorded sample
var ErrMissingMeasurement = errors.New("missing measurement")

// ErrArithmeticOverflow signals that a scaled gas value does not fit the target width
var ErrArithmeticOverflow = errors.New("arithmetic overflow")

// ErrWorkloadGenerationExhausted signals that no valid account could be selected for a workload
var ErrWorkloadGenerationExhausted = errors.New("workload generation exhausted")

// ErrZeroDenominator signals that a ratio with a zero denominator has been provided
var ErrZeroDenominator = errors.New("zero denominator")

// ErrInvalidGasMetric signals that an unknown gas metric has been provided
var ErrInvalidGasMetric = errors.New("invalid gas metric")

// ErrNegativeRatio signals that a derived ratio is negative
var ErrNegativeRatio = errors.New("negative ratio")
