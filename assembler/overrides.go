package assembler

// DefaultValidatorStakeCost is the audited cost of the host functions exposing validator stakes
const DefaultValidatorStakeCost = uint64(303_944_908_800)

// Overrides holds the ext costs that are pinned or derived from another cost instead of being measured
type Overrides struct {
	// DeprecatedIteratorCost is written in every storage_iter_* cost
	DeprecatedIteratorCost  uint64
	ValidatorStakeBase      uint64
	ValidatorTotalStakeBase uint64
	// touching_trie_node is storage_read_base * TrieNodeTouchNumerator / TrieNodeTouchDenominator
	TrieNodeTouchNumerator   uint64
	TrieNodeTouchDenominator uint64
	GrowMemCost              uint64
}

// DefaultOverrides returns the pinned costs of the current protocol
func DefaultOverrides() Overrides {
	return Overrides{
		DeprecatedIteratorCost:   0,
		ValidatorStakeBase:       DefaultValidatorStakeCost,
		ValidatorTotalStakeBase:  DefaultValidatorStakeCost,
		TrieNodeTouchNumerator:   2,
		TrieNodeTouchDenominator: 7,
		GrowMemCost:              1,
	}
}
