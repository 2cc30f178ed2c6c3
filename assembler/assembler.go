package assembler

import (
	"fmt"
	"math/big"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"

	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/gas"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/params"
)

var log = logger.GetOrCreate("assembler")

// ArgsAssembler holds the arguments needed to create a fee and cost assembler
type ArgsAssembler struct {
	Measurements MeasurementsHandler
	Overrides    Overrides
}

type assembler struct {
	measurements MeasurementsHandler
	overrides    Overrides
}

// NewAssembler creates the component deriving the fee table and the VM cost table out of measurements
func NewAssembler(args ArgsAssembler) (*assembler, error) {
	if check.IfNil(args.Measurements) {
		return nil, ErrNilMeasurements
	}
	if args.Overrides.TrieNodeTouchDenominator == 0 {
		return nil, ErrInvalidTrieNodeTouchRatio
	}

	return &assembler{
		measurements: args.Measurements,
		overrides:    args.Overrides,
	}, nil
}

// derivation accumulates converted costs and keeps the first error, so a table is built as a flat
// list of assignments
type derivation struct {
	*deriver
	err error
}

func (dv *derivation) gas(name string, compute func() (*big.Rat, error)) uint64 {
	if dv.err != nil {
		return 0
	}

	value, err := compute()
	if err != nil {
		dv.err = err
		return 0
	}

	converted, err := dv.toGas(name, value)
	if err != nil {
		dv.err = err
		return 0
	}

	return converted
}

func (dv *derivation) fee(name string, compute func() (*big.Rat, error)) params.Fee {
	return gas.GasToFee(dv.gas(name, compute))
}

func (dv *derivation) rat(compute func() (*big.Rat, error)) *big.Rat {
	if dv.err != nil {
		return new(big.Rat)
	}

	value, err := compute()
	if err != nil {
		dv.err = err
		return new(big.Rat)
	}

	return value
}

func (a *assembler) newDerivation() *derivation {
	return &derivation{deriver: newDeriver(a.measurements)}
}

func constant(value *big.Rat) func() (*big.Rat, error) {
	return func() (*big.Rat, error) {
		return value, nil
	}
}

// RuntimeFees derives every fee of the fee table. Values that are not measured are carried from base.
func (a *assembler) RuntimeFees(base params.RuntimeFeesConfig) (params.RuntimeFeesConfig, error) {
	dv := a.newDerivation()
	perTx := func(m metric.Metric) func() (*big.Rat, error) {
		return func() (*big.Rat, error) { return dv.perTransaction(m) }
	}
	overReceipt := func(name string, m metric.Metric) func() (*big.Rat, error) {
		return func() (*big.Rat, error) { return dv.diff(name, m, metric.Receipt) }
	}

	addKeyPerByte := dv.rat(func() (*big.Rat, error) {
		return dv.perByte("add_key_cost.function_call_cost_per_byte",
			metric.ActionAddFunctionAccessKey1000Methods, metric.ActionAddFunctionAccessKey1Method)
	})
	addKeyOneMethod := dv.rat(overReceipt("add_key_cost.function_call_cost", metric.ActionAddFunctionAccessKey1Method))
	deployPerByte := dv.rat(func() (*big.Rat, error) {
		return dv.perByte("deploy_contract_cost_per_byte", metric.ActionDeploy1M, metric.ActionDeploy10K)
	})
	deploySmall := dv.rat(overReceipt("deploy_contract_cost", metric.ActionDeploy10K))

	oneMethodInfo, _ := metric.InfoOf(metric.ActionAddFunctionAccessKey1Method)
	smallDeployInfo, _ := metric.InfoOf(metric.ActionDeploy10K)

	fees := base
	fees.ActionReceiptCreationConfig = dv.fee("action_receipt_creation_config", perTx(metric.Receipt))
	fees.DataReceiptCreationConfig = params.DataReceiptCreationConfig{
		BaseCost: dv.fee("data_receipt_creation_config.base_cost", func() (*big.Rat, error) {
			return dv.base("data_receipt_creation_config.base_cost", metric.DataReceipt10b1000)
		}),
		CostPerByte: dv.fee("data_receipt_creation_config.cost_per_byte", func() (*big.Rat, error) {
			return dv.perByte("data_receipt_creation_config.cost_per_byte", metric.DataReceipt100KiB1000, metric.DataReceipt10b1000)
		}),
	}

	creation := &fees.ActionCreationConfig
	creation.CreateAccountCost = dv.fee("create_account_cost", func() (*big.Rat, error) {
		return dv.diff("create_account_cost", metric.ActionCreateAccount, metric.ActionTransfer)
	})
	creation.DeployContractCost = dv.fee("deploy_contract_cost",
		constant(less("deploy_contract_cost", deploySmall, deployPerByte, smallDeployInfo.PayloadBytes)))
	creation.DeployContractCostPerByte = dv.fee("deploy_contract_cost_per_byte", constant(deployPerByte))
	creation.FunctionCallCost = dv.fee("function_call_cost", overReceipt("function_call_cost", metric.Noop))
	creation.FunctionCallCostPerByte = dv.fee("function_call_cost_per_byte", func() (*big.Rat, error) {
		return dv.perByte("function_call_cost_per_byte", metric.Noop1MiB, metric.Noop)
	})
	creation.TransferCost = dv.fee("transfer_cost", overReceipt("transfer_cost", metric.ActionTransfer))
	creation.StakeCost = dv.fee("stake_cost", overReceipt("stake_cost", metric.ActionStake))
	creation.AddKeyCost = params.AccessKeyCreationConfig{
		FullAccessCost: dv.fee("add_key_cost.full_access_cost", overReceipt("add_key_cost.full_access_cost", metric.ActionAddFullAccessKey)),
		FunctionCallCost: dv.fee("add_key_cost.function_call_cost",
			constant(less("add_key_cost.function_call_cost", addKeyOneMethod, addKeyPerByte, oneMethodInfo.PayloadBytes))),
		FunctionCallCostPerByte: dv.fee("add_key_cost.function_call_cost_per_byte", constant(addKeyPerByte)),
	}
	creation.DeleteKeyCost = dv.fee("delete_key_cost", overReceipt("delete_key_cost", metric.ActionDeleteAccessKey))
	creation.DeleteAccountCost = dv.fee("delete_account_cost", overReceipt("delete_account_cost", metric.ActionDeleteAccount))

	if dv.err != nil {
		return params.RuntimeFeesConfig{}, dv.err
	}

	return fees, nil
}

// ExtCosts derives every host function cost. Compile costs are carried from base, pinned costs come
// from the overrides.
func (a *assembler) ExtCosts(base params.ExtCostsConfig) (params.ExtCostsConfig, error) {
	dv := a.newDerivation()
	opBase := func(name string, m metric.Metric) func() (*big.Rat, error) {
		return func() (*big.Rat, error) { return dv.base(name, m) }
	}
	opByte := func(name string, large metric.Metric, small metric.Metric) func() (*big.Rat, error) {
		return func() (*big.Rat, error) { return dv.perByte(name, large, small) }
	}
	maxOf := func(first func() (*big.Rat, error), second func() (*big.Rat, error)) func() (*big.Rat, error) {
		return func() (*big.Rat, error) {
			x, err := first()
			if err != nil {
				return nil, err
			}
			y, err := second()
			if err != nil {
				return nil, err
			}

			return maxRat(x, y), nil
		}
	}

	ext := base
	ext.Base = dv.gas("base", opBase("base", metric.Base1M))
	ext.ReadMemoryBase = dv.gas("read_memory_base", opBase("read_memory_base", metric.ReadMemory10b10k))
	ext.ReadMemoryByte = dv.gas("read_memory_byte", opByte("read_memory_byte", metric.ReadMemory1MiB10k, metric.ReadMemory10b10k))
	ext.WriteMemoryBase = dv.gas("write_memory_base", opBase("write_memory_base", metric.WriteMemory10b10k))
	ext.WriteMemoryByte = dv.gas("write_memory_byte", opByte("write_memory_byte", metric.WriteMemory1MiB10k, metric.WriteMemory10b10k))
	ext.ReadRegisterBase = dv.gas("read_register_base", opBase("read_register_base", metric.ReadRegister10b10k))
	ext.ReadRegisterByte = dv.gas("read_register_byte", opByte("read_register_byte", metric.ReadRegister1MiB10k, metric.ReadRegister10b10k))
	ext.WriteRegisterBase = dv.gas("write_register_base", opBase("write_register_base", metric.WriteRegister10b10k))
	ext.WriteRegisterByte = dv.gas("write_register_byte", opByte("write_register_byte", metric.WriteRegister1MiB10k, metric.WriteRegister10b10k))

	ext.Utf8DecodingBase = dv.gas("utf8_decoding_base", maxOf(
		opBase("utf8_decoding_base", metric.Utf8Log10b10k),
		opBase("utf8_decoding_base", metric.NulUtf8Log10b10k)))
	ext.Utf8DecodingByte = dv.gas("utf8_decoding_byte", maxOf(
		opByte("utf8_decoding_byte", metric.Utf8Log10KiB10k, metric.Utf8Log10b10k),
		opByte("utf8_decoding_byte", metric.NulUtf8Log10KiB10k, metric.NulUtf8Log10b10k)))
	ext.Utf16DecodingBase = dv.gas("utf16_decoding_base", maxOf(
		opBase("utf16_decoding_base", metric.Utf16Log10b10k),
		opBase("utf16_decoding_base", metric.NulUtf16Log10b10k)))
	ext.Utf16DecodingByte = dv.gas("utf16_decoding_byte", maxOf(
		opByte("utf16_decoding_byte", metric.Utf16Log10KiB10k, metric.Utf16Log10b10k),
		opByte("utf16_decoding_byte", metric.NulUtf16Log10KiB10k, metric.NulUtf16Log10b10k)))

	ext.Sha256Base = dv.gas("sha256_base", opBase("sha256_base", metric.Sha25610b10k))
	ext.Sha256Byte = dv.gas("sha256_byte", opByte("sha256_byte", metric.Sha25610KiB10k, metric.Sha25610b10k))
	ext.Keccak256Base = dv.gas("keccak256_base", opBase("keccak256_base", metric.Keccak25610b10k))
	ext.Keccak256Byte = dv.gas("keccak256_byte", opByte("keccak256_byte", metric.Keccak25610KiB10k, metric.Keccak25610b10k))
	ext.Keccak512Base = dv.gas("keccak512_base", opBase("keccak512_base", metric.Keccak51210b10k))
	ext.Keccak512Byte = dv.gas("keccak512_byte", opByte("keccak512_byte", metric.Keccak51210KiB10k, metric.Keccak51210b10k))
	ext.LogBase = dv.gas("log_base", opBase("log_base", metric.Utf8Log10b10k))
	ext.LogByte = dv.gas("log_byte", opByte("log_byte", metric.Utf8Log10KiB10k, metric.Utf8Log10b10k))

	ext.StorageWriteBase = dv.gas("storage_write_base", opBase("storage_write_base", metric.StorageWrite10bKey10bValue1k))
	ext.StorageWriteKeyByte = dv.gas("storage_write_key_byte",
		opByte("storage_write_key_byte", metric.StorageWrite10KiBKey10bValue1k, metric.StorageWrite10bKey10bValue1k))
	ext.StorageWriteValueByte = dv.gas("storage_write_value_byte",
		opByte("storage_write_value_byte", metric.StorageWrite10bKey10KiBValue1k, metric.StorageWrite10bKey10bValue1k))
	evictInfo, _ := metric.InfoOf(metric.StorageWrite10bKey10KiBValue1kEvict)
	ext.StorageWriteEvictedByte = dv.gas("storage_write_evicted_byte", func() (*big.Rat, error) {
		return dv.perByteDelta("storage_write_evicted_byte",
			metric.StorageWrite10bKey10KiBValue1kEvict, metric.StorageWrite10bKey10KiBValue1k, evictInfo.PayloadBytes)
	})

	ext.StorageReadBase = dv.gas("storage_read_base", opBase("storage_read_base", metric.StorageRead10bKey10bValue1k))
	ext.StorageReadKeyByte = dv.gas("storage_read_key_byte",
		opByte("storage_read_key_byte", metric.StorageRead10KiBKey10bValue1k, metric.StorageRead10bKey10bValue1k))
	ext.StorageReadValueByte = dv.gas("storage_read_value_byte",
		opByte("storage_read_value_byte", metric.StorageRead10bKey10KiBValue1k, metric.StorageRead10bKey10bValue1k))
	ext.StorageRemoveBase = dv.gas("storage_remove_base", opBase("storage_remove_base", metric.StorageRemove10bKey10bValue1k))
	ext.StorageRemoveKeyByte = dv.gas("storage_remove_key_byte",
		opByte("storage_remove_key_byte", metric.StorageRemove10KiBKey10bValue1k, metric.StorageRemove10bKey10bValue1k))
	ext.StorageRemoveRetValueByte = dv.gas("storage_remove_ret_value_byte",
		opByte("storage_remove_ret_value_byte", metric.StorageRemove10bKey10KiBValue1k, metric.StorageRemove10bKey10bValue1k))
	ext.StorageHasKeyBase = dv.gas("storage_has_key_base", opBase("storage_has_key_base", metric.StorageHasKey10bKey10bValue1k))
	ext.StorageHasKeyByte = dv.gas("storage_has_key_byte",
		opByte("storage_has_key_byte", metric.StorageHasKey10KiBKey10bValue1k, metric.StorageHasKey10bKey10bValue1k))

	ext.PromiseAndBase = dv.gas("promise_and_base", opBase("promise_and_base", metric.PromiseAnd100k))
	ext.PromiseAndPerPromise = dv.gas("promise_and_per_promise",
		opByte("promise_and_per_promise", metric.PromiseAnd100kOn1kAnd, metric.PromiseAnd100k))
	ext.PromiseReturn = dv.gas("promise_return", opBase("promise_return", metric.PromiseReturn100k))

	if dv.err != nil {
		return params.ExtCostsConfig{}, dv.err
	}

	touchingTrieNode, err := a.touchingTrieNode(ext.StorageReadBase)
	if err != nil {
		return params.ExtCostsConfig{}, err
	}

	ext.TouchingTrieNode = touchingTrieNode
	a.applyPinned(&ext)

	return ext, nil
}

func (a *assembler) touchingTrieNode(storageReadBase uint64) (uint64, error) {
	value := new(big.Int).SetUint64(storageReadBase)
	value.Mul(value, new(big.Int).SetUint64(a.overrides.TrieNodeTouchNumerator))
	value.Quo(value, new(big.Int).SetUint64(a.overrides.TrieNodeTouchDenominator))
	if !value.IsUint64() {
		return 0, fmt.Errorf("%w while scaling storage_read_base into touching_trie_node", common.ErrArithmeticOverflow)
	}

	return value.Uint64(), nil
}

func (a *assembler) applyPinned(ext *params.ExtCostsConfig) {
	iterCost := a.overrides.DeprecatedIteratorCost
	ext.StorageIterCreatePrefixBase = iterCost
	ext.StorageIterCreatePrefixByte = iterCost
	ext.StorageIterCreateRangeBase = iterCost
	ext.StorageIterCreateFromByte = iterCost
	ext.StorageIterCreateToByte = iterCost
	ext.StorageIterNextBase = iterCost
	ext.StorageIterNextKeyByte = iterCost
	ext.StorageIterNextValueByte = iterCost

	ext.ValidatorStakeBase = a.overrides.ValidatorStakeBase
	ext.ValidatorTotalStakeBase = a.overrides.ValidatorTotalStakeBase
}

// VMConfig derives the VM cost table. Limits and the regular operation cost are carried from base.
func (a *assembler) VMConfig(base params.VMConfig) (params.VMConfig, error) {
	extCosts, err := a.ExtCosts(base.ExtCosts)
	if err != nil {
		return params.VMConfig{}, err
	}

	vm := base
	vm.ExtCosts = extCosts
	vm.GrowMemCost = a.overrides.GrowMemCost

	return vm, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (a *assembler) IsInterfaceNil() bool {
	return a == nil
}
