package params

// Fee is the gas charged for one action. The send side depends on whether the receiver is the signer.
type Fee struct {
	SendSameAccount      uint64 `toml:"send_sir" json:"send_sir"`
	SendDifferentAccount uint64 `toml:"send_not_sir" json:"send_not_sir"`
	Execution            uint64 `toml:"execution" json:"execution"`
}

// SendFee returns the send side of the fee
func (f Fee) SendFee(sameAccount bool) uint64 {
	if sameAccount {
		return f.SendSameAccount
	}

	return f.SendDifferentAccount
}

// ExecFee returns the execution side of the fee
func (f Fee) ExecFee() uint64 {
	return f.Execution
}

// Rational is a fraction stored in a config file
type Rational struct {
	Numerator   uint64 `toml:"numerator" json:"numerator"`
	Denominator uint64 `toml:"denominator" json:"denominator"`
}

// DataReceiptCreationConfig prices the data receipts produced by promises
type DataReceiptCreationConfig struct {
	BaseCost    Fee `toml:"base_cost" json:"base_cost"`
	CostPerByte Fee `toml:"cost_per_byte" json:"cost_per_byte"`
}

// AccessKeyCreationConfig prices the add key action
type AccessKeyCreationConfig struct {
	FullAccessCost          Fee `toml:"full_access_cost" json:"full_access_cost"`
	FunctionCallCost        Fee `toml:"function_call_cost" json:"function_call_cost"`
	FunctionCallCostPerByte Fee `toml:"function_call_cost_per_byte" json:"function_call_cost_per_byte"`
}

// ActionCreationConfig prices every action kind
type ActionCreationConfig struct {
	CreateAccountCost         Fee                     `toml:"create_account_cost" json:"create_account_cost"`
	DeployContractCost        Fee                     `toml:"deploy_contract_cost" json:"deploy_contract_cost"`
	DeployContractCostPerByte Fee                     `toml:"deploy_contract_cost_per_byte" json:"deploy_contract_cost_per_byte"`
	FunctionCallCost          Fee                     `toml:"function_call_cost" json:"function_call_cost"`
	FunctionCallCostPerByte   Fee                     `toml:"function_call_cost_per_byte" json:"function_call_cost_per_byte"`
	TransferCost              Fee                     `toml:"transfer_cost" json:"transfer_cost"`
	StakeCost                 Fee                     `toml:"stake_cost" json:"stake_cost"`
	AddKeyCost                AccessKeyCreationConfig `toml:"add_key_cost" json:"add_key_cost"`
	DeleteKeyCost             Fee                     `toml:"delete_key_cost" json:"delete_key_cost"`
	DeleteAccountCost         Fee                     `toml:"delete_account_cost" json:"delete_account_cost"`
}

// StorageUsageConfig describes the storage accounted for every account and record
type StorageUsageConfig struct {
	NumBytesAccount     uint64 `toml:"num_bytes_account" json:"num_bytes_account"`
	NumExtraBytesRecord uint64 `toml:"num_extra_bytes_record" json:"num_extra_bytes_record"`
}

// RuntimeFeesConfig is the protocol fee table
type RuntimeFeesConfig struct {
	ActionReceiptCreationConfig  Fee                       `toml:"action_receipt_creation_config" json:"action_receipt_creation_config"`
	DataReceiptCreationConfig    DataReceiptCreationConfig `toml:"data_receipt_creation_config" json:"data_receipt_creation_config"`
	ActionCreationConfig         ActionCreationConfig      `toml:"action_creation_config" json:"action_creation_config"`
	StorageUsageConfig           StorageUsageConfig        `toml:"storage_usage_config" json:"storage_usage_config"`
	BurntGasReward               Rational                  `toml:"burnt_gas_reward" json:"burnt_gas_reward"`
	PessimisticGasPriceInflation Rational                  `toml:"pessimistic_gas_price_inflation" json:"pessimistic_gas_price_inflation"`
}

// FeeEntry is one named fee of the fee table
type FeeEntry struct {
	Path string
	Fee  Fee
}

type feeAccessor struct {
	path string
	get  func(cfg *RuntimeFeesConfig) *Fee
}

var feeAccessors = []feeAccessor{
	{"action_receipt_creation_config", func(c *RuntimeFeesConfig) *Fee { return &c.ActionReceiptCreationConfig }},
	{"data_receipt_creation_config.base_cost", func(c *RuntimeFeesConfig) *Fee { return &c.DataReceiptCreationConfig.BaseCost }},
	{"data_receipt_creation_config.cost_per_byte", func(c *RuntimeFeesConfig) *Fee { return &c.DataReceiptCreationConfig.CostPerByte }},
	{"action_creation_config.create_account_cost", func(c *RuntimeFeesConfig) *Fee { return &c.ActionCreationConfig.CreateAccountCost }},
	{"action_creation_config.deploy_contract_cost", func(c *RuntimeFeesConfig) *Fee { return &c.ActionCreationConfig.DeployContractCost }},
	{"action_creation_config.deploy_contract_cost_per_byte", func(c *RuntimeFeesConfig) *Fee { return &c.ActionCreationConfig.DeployContractCostPerByte }},
	{"action_creation_config.function_call_cost", func(c *RuntimeFeesConfig) *Fee { return &c.ActionCreationConfig.FunctionCallCost }},
	{"action_creation_config.function_call_cost_per_byte", func(c *RuntimeFeesConfig) *Fee { return &c.ActionCreationConfig.FunctionCallCostPerByte }},
	{"action_creation_config.transfer_cost", func(c *RuntimeFeesConfig) *Fee { return &c.ActionCreationConfig.TransferCost }},
	{"action_creation_config.stake_cost", func(c *RuntimeFeesConfig) *Fee { return &c.ActionCreationConfig.StakeCost }},
	{"action_creation_config.add_key_cost.full_access_cost", func(c *RuntimeFeesConfig) *Fee { return &c.ActionCreationConfig.AddKeyCost.FullAccessCost }},
	{"action_creation_config.add_key_cost.function_call_cost", func(c *RuntimeFeesConfig) *Fee { return &c.ActionCreationConfig.AddKeyCost.FunctionCallCost }},
	{"action_creation_config.add_key_cost.function_call_cost_per_byte", func(c *RuntimeFeesConfig) *Fee { return &c.ActionCreationConfig.AddKeyCost.FunctionCallCostPerByte }},
	{"action_creation_config.delete_key_cost", func(c *RuntimeFeesConfig) *Fee { return &c.ActionCreationConfig.DeleteKeyCost }},
	{"action_creation_config.delete_account_cost", func(c *RuntimeFeesConfig) *Fee { return &c.ActionCreationConfig.DeleteAccountCost }},
}

// FeePaths returns the dotted path of every fee of the fee table, in table order
func FeePaths() []string {
	paths := make([]string, 0, len(feeAccessors))
	for _, accessor := range feeAccessors {
		paths = append(paths, accessor.path)
	}

	return paths
}

// Entries returns every fee of the table with its dotted path
func (cfg RuntimeFeesConfig) Entries() []FeeEntry {
	entries := make([]FeeEntry, 0, len(feeAccessors))
	for _, accessor := range feeAccessors {
		entries = append(entries, FeeEntry{
			Path: accessor.path,
			Fee:  *accessor.get(&cfg),
		})
	}

	return entries
}
