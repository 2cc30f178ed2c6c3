package metric

import "errors"

// ErrUnknownMetric signals that a metric name or value is not part of the registry
var ErrUnknownMetric = errors.New("unknown metric")
