package params

import (
	"encoding/hex"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/hashing"
	"github.com/multiversx/mx-chain-core-go/marshal"
)

// Fingerprint returns the hex encoded hash of the marshalled config, so configs built on different
// machines can be compared at a glance
func Fingerprint(cfg RuntimeConfig, marshalizer marshal.Marshalizer, hasher hashing.Hasher) (string, error) {
	if check.IfNil(marshalizer) {
		return "", ErrNilMarshalizer
	}
	if check.IfNil(hasher) {
		return "", ErrNilHasher
	}

	buff, err := marshalizer.Marshal(&cfg)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Compute(string(buff))), nil
}
