package assembler

import "errors"

// ErrNilMeasurements signals that a nil measurements handler has been provided
var ErrNilMeasurements = errors.New("nil measurements handler")

// ErrInvalidTrieNodeTouchRatio signals that the trie node touch ratio has a zero denominator
var ErrInvalidTrieNodeTouchRatio = errors.New("invalid trie node touch ratio")
