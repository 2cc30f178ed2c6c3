package stats

import "errors"

// ErrZeroCountSample signals that a sample covering no transaction has been recorded
var ErrZeroCountSample = errors.New("sample with zero transactions")

// ErrGasMetricMismatch signals that a measurements file was recorded under another gas metric
var ErrGasMetricMismatch = errors.New("gas metric mismatch")

// ErrNilMeasurements signals that a nil measurements store has been provided
var ErrNilMeasurements = errors.New("nil measurements")
