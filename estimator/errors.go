package estimator

import "errors"

// ErrNilWorkloadGenerator signals that a nil workload generator has been provided
var ErrNilWorkloadGenerator = errors.New("nil workload generator")

// ErrNilHarness signals that a nil harness has been provided
var ErrNilHarness = errors.New("nil harness")

// ErrNilMeasurements signals that a nil measurements recorder has been provided
var ErrNilMeasurements = errors.New("nil measurements recorder")

// ErrNilCostAssembler signals that a nil cost assembler has been provided
var ErrNilCostAssembler = errors.New("nil cost assembler")

// ErrNilStatusHandler signals that a nil run status handler has been provided
var ErrNilStatusHandler = errors.New("nil run status handler")

// ErrNoMetricSelected signals that the run has nothing to measure
var ErrNoMetricSelected = errors.New("no metric selected for measurement")

// ErrInvalidBlockSize signals that the batch size is not positive
var ErrInvalidBlockSize = errors.New("invalid block size")

// ErrInvalidNumBatches signals that the number of recorded batches is not positive
var ErrInvalidNumBatches = errors.New("invalid number of batches")

// ErrInvalidNumWarmupBatches signals that the number of warmup batches is negative
var ErrInvalidNumWarmupBatches = errors.New("invalid number of warmup batches")
