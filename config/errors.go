package config

import "errors"

var errInvalidBlockSize = errors.New("invalid block size, it should be greater than 0")

var errInvalidNumBatches = errors.New("invalid number of batches, it should be greater than 0")

var errInvalidNumWarmupBatches = errors.New("invalid number of warmup batches, it should not be negative")

var errInvalidTestbedTimeout = errors.New("invalid testbed timeout, it should not be negative")

var errInvalidTrieNodeTouchDenominator = errors.New("invalid trie node touch denominator, it should be greater than 0")

var errEmptyBaseConfigDir = errors.New("versioned base configs need a config directory")
