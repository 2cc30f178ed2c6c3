package harness

import "errors"

// ErrTestbedNotFound signals that the testbed binary could not be located
var ErrTestbedNotFound = errors.New("testbed binary not found")

// ErrTestbedFailed signals that the testbed process exited with an error
var ErrTestbedFailed = errors.New("testbed execution failed")

// ErrTestbedRejected signals that the testbed reported an execution error
var ErrTestbedRejected = errors.New("testbed rejected the batch")

// ErrInvalidTimeout signals that a non positive timeout has been provided
var ErrInvalidTimeout = errors.New("invalid timeout")

// ErrNilMarshalizer signals that a nil marshalizer has been provided
var ErrNilMarshalizer = errors.New("nil marshalizer")

// ErrEmptyBatch signals that an empty batch has been provided
var ErrEmptyBatch = errors.New("empty batch")

// ErrNoRecordedSample signals that the replayed measurements do not hold the requested metric
var ErrNoRecordedSample = errors.New("no recorded sample")

// ErrNilMeasurements signals that nil measurements have been provided
var ErrNilMeasurements = errors.New("nil measurements")
