package params

import (
	"fmt"
	"strings"
)

// AllFeeFields selects every fee of the fee table
const AllFeeFields = "*"

// DefaultOverlayFeeField is the only derived fee refreshed by default
const DefaultOverlayFeeField = "action_creation_config.add_key_cost.function_call_cost_per_byte"

// OverlayPolicy selects which derived values replace the base config values
type OverlayPolicy struct {
	// FeeFields holds dotted fee paths, as returned by FeePaths, or AllFeeFields
	FeeFields []string
	// RefreshWasmConfig replaces the whole VM cost table with the derived one
	RefreshWasmConfig bool
}

// DefaultOverlayPolicy refreshes the per byte cost of function call access keys and keeps the base VM config
func DefaultOverlayPolicy() OverlayPolicy {
	return OverlayPolicy{
		FeeFields:         []string{DefaultOverlayFeeField},
		RefreshWasmConfig: false,
	}
}

// Validate checks that every fee path is known
func (policy OverlayPolicy) Validate() error {
	_, err := policy.selectedAccessors()
	return err
}

func (policy OverlayPolicy) selectedAccessors() ([]feeAccessor, error) {
	selected := make([]feeAccessor, 0, len(policy.FeeFields))
	for _, field := range policy.FeeFields {
		field = strings.TrimSpace(field)
		if field == AllFeeFields {
			return feeAccessors, nil
		}

		accessor, found := findAccessor(field)
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOverlayField, field)
		}

		selected = append(selected, accessor)
	}

	return selected, nil
}

func findAccessor(path string) (feeAccessor, bool) {
	for _, accessor := range feeAccessors {
		if accessor.path == path {
			return accessor, true
		}
	}

	return feeAccessor{}, false
}

// Apply returns a copy of base with the selected derived values written over it. base is not modified.
func (policy OverlayPolicy) Apply(base RuntimeConfig, fees RuntimeFeesConfig, vm VMConfig) (RuntimeConfig, error) {
	accessors, err := policy.selectedAccessors()
	if err != nil {
		return RuntimeConfig{}, err
	}

	result := base
	for _, accessor := range accessors {
		*accessor.get(&result.TransactionCosts) = *accessor.get(&fees)
		log.Debug("overlay fee", "path", accessor.path)
	}

	if policy.RefreshWasmConfig {
		result.WasmConfig = vm
		log.Debug("overlay wasm config")
	}

	return result, nil
}
