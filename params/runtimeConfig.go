package params

// ExtCostsConfig prices every host function exposed to contracts. Each host function has a base cost
// and, when it works on a payload, a per byte cost.
type ExtCostsConfig struct {
	Base                        uint64 `toml:"base" json:"base" mapstructure:"base"`
	ContractCompileBase         uint64 `toml:"contract_compile_base" json:"contract_compile_base" mapstructure:"contract_compile_base"`
	ContractCompileBytes        uint64 `toml:"contract_compile_bytes" json:"contract_compile_bytes" mapstructure:"contract_compile_bytes"`
	ReadMemoryBase              uint64 `toml:"read_memory_base" json:"read_memory_base" mapstructure:"read_memory_base"`
	ReadMemoryByte              uint64 `toml:"read_memory_byte" json:"read_memory_byte" mapstructure:"read_memory_byte"`
	WriteMemoryBase             uint64 `toml:"write_memory_base" json:"write_memory_base" mapstructure:"write_memory_base"`
	WriteMemoryByte             uint64 `toml:"write_memory_byte" json:"write_memory_byte" mapstructure:"write_memory_byte"`
	ReadRegisterBase            uint64 `toml:"read_register_base" json:"read_register_base" mapstructure:"read_register_base"`
	ReadRegisterByte            uint64 `toml:"read_register_byte" json:"read_register_byte" mapstructure:"read_register_byte"`
	WriteRegisterBase           uint64 `toml:"write_register_base" json:"write_register_base" mapstructure:"write_register_base"`
	WriteRegisterByte           uint64 `toml:"write_register_byte" json:"write_register_byte" mapstructure:"write_register_byte"`
	Utf8DecodingBase            uint64 `toml:"utf8_decoding_base" json:"utf8_decoding_base" mapstructure:"utf8_decoding_base"`
	Utf8DecodingByte            uint64 `toml:"utf8_decoding_byte" json:"utf8_decoding_byte" mapstructure:"utf8_decoding_byte"`
	Utf16DecodingBase           uint64 `toml:"utf16_decoding_base" json:"utf16_decoding_base" mapstructure:"utf16_decoding_base"`
	Utf16DecodingByte           uint64 `toml:"utf16_decoding_byte" json:"utf16_decoding_byte" mapstructure:"utf16_decoding_byte"`
	Sha256Base                  uint64 `toml:"sha256_base" json:"sha256_base" mapstructure:"sha256_base"`
	Sha256Byte                  uint64 `toml:"sha256_byte" json:"sha256_byte" mapstructure:"sha256_byte"`
	Keccak256Base               uint64 `toml:"keccak256_base" json:"keccak256_base" mapstructure:"keccak256_base"`
	Keccak256Byte               uint64 `toml:"keccak256_byte" json:"keccak256_byte" mapstructure:"keccak256_byte"`
	Keccak512Base               uint64 `toml:"keccak512_base" json:"keccak512_base" mapstructure:"keccak512_base"`
	Keccak512Byte               uint64 `toml:"keccak512_byte" json:"keccak512_byte" mapstructure:"keccak512_byte"`
	LogBase                     uint64 `toml:"log_base" json:"log_base" mapstructure:"log_base"`
	LogByte                     uint64 `toml:"log_byte" json:"log_byte" mapstructure:"log_byte"`
	StorageWriteBase            uint64 `toml:"storage_write_base" json:"storage_write_base" mapstructure:"storage_write_base"`
	StorageWriteKeyByte         uint64 `toml:"storage_write_key_byte" json:"storage_write_key_byte" mapstructure:"storage_write_key_byte"`
	StorageWriteValueByte       uint64 `toml:"storage_write_value_byte" json:"storage_write_value_byte" mapstructure:"storage_write_value_byte"`
	StorageWriteEvictedByte     uint64 `toml:"storage_write_evicted_byte" json:"storage_write_evicted_byte" mapstructure:"storage_write_evicted_byte"`
	StorageReadBase             uint64 `toml:"storage_read_base" json:"storage_read_base" mapstructure:"storage_read_base"`
	StorageReadKeyByte          uint64 `toml:"storage_read_key_byte" json:"storage_read_key_byte" mapstructure:"storage_read_key_byte"`
	StorageReadValueByte        uint64 `toml:"storage_read_value_byte" json:"storage_read_value_byte" mapstructure:"storage_read_value_byte"`
	StorageRemoveBase           uint64 `toml:"storage_remove_base" json:"storage_remove_base" mapstructure:"storage_remove_base"`
	StorageRemoveKeyByte        uint64 `toml:"storage_remove_key_byte" json:"storage_remove_key_byte" mapstructure:"storage_remove_key_byte"`
	StorageRemoveRetValueByte   uint64 `toml:"storage_remove_ret_value_byte" json:"storage_remove_ret_value_byte" mapstructure:"storage_remove_ret_value_byte"`
	StorageHasKeyBase           uint64 `toml:"storage_has_key_base" json:"storage_has_key_base" mapstructure:"storage_has_key_base"`
	StorageHasKeyByte           uint64 `toml:"storage_has_key_byte" json:"storage_has_key_byte" mapstructure:"storage_has_key_byte"`
	StorageIterCreatePrefixBase uint64 `toml:"storage_iter_create_prefix_base" json:"storage_iter_create_prefix_base" mapstructure:"storage_iter_create_prefix_base"`
	StorageIterCreatePrefixByte uint64 `toml:"storage_iter_create_prefix_byte" json:"storage_iter_create_prefix_byte" mapstructure:"storage_iter_create_prefix_byte"`
	StorageIterCreateRangeBase  uint64 `toml:"storage_iter_create_range_base" json:"storage_iter_create_range_base" mapstructure:"storage_iter_create_range_base"`
	StorageIterCreateFromByte   uint64 `toml:"storage_iter_create_from_byte" json:"storage_iter_create_from_byte" mapstructure:"storage_iter_create_from_byte"`
	StorageIterCreateToByte     uint64 `toml:"storage_iter_create_to_byte" json:"storage_iter_create_to_byte" mapstructure:"storage_iter_create_to_byte"`
	StorageIterNextBase         uint64 `toml:"storage_iter_next_base" json:"storage_iter_next_base" mapstructure:"storage_iter_next_base"`
	StorageIterNextKeyByte      uint64 `toml:"storage_iter_next_key_byte" json:"storage_iter_next_key_byte" mapstructure:"storage_iter_next_key_byte"`
	StorageIterNextValueByte    uint64 `toml:"storage_iter_next_value_byte" json:"storage_iter_next_value_byte" mapstructure:"storage_iter_next_value_byte"`
	TouchingTrieNode            uint64 `toml:"touching_trie_node" json:"touching_trie_node" mapstructure:"touching_trie_node"`
	PromiseAndBase              uint64 `toml:"promise_and_base" json:"promise_and_base" mapstructure:"promise_and_base"`
	PromiseAndPerPromise        uint64 `toml:"promise_and_per_promise" json:"promise_and_per_promise" mapstructure:"promise_and_per_promise"`
	PromiseReturn               uint64 `toml:"promise_return" json:"promise_return" mapstructure:"promise_return"`
	ValidatorStakeBase          uint64 `toml:"validator_stake_base" json:"validator_stake_base" mapstructure:"validator_stake_base"`
	ValidatorTotalStakeBase     uint64 `toml:"validator_total_stake_base" json:"validator_total_stake_base" mapstructure:"validator_total_stake_base"`
}

// ExtCostEntry is one named cost of the ext costs table
type ExtCostEntry struct {
	Name  string
	Value uint64
}

// Entries returns every cost in table order
func (cfg ExtCostsConfig) Entries() []ExtCostEntry {
	return []ExtCostEntry{
		{"base", cfg.Base},
		{"contract_compile_base", cfg.ContractCompileBase},
		{"contract_compile_bytes", cfg.ContractCompileBytes},
		{"read_memory_base", cfg.ReadMemoryBase},
		{"read_memory_byte", cfg.ReadMemoryByte},
		{"write_memory_base", cfg.WriteMemoryBase},
		{"write_memory_byte", cfg.WriteMemoryByte},
		{"read_register_base", cfg.ReadRegisterBase},
		{"read_register_byte", cfg.ReadRegisterByte},
		{"write_register_base", cfg.WriteRegisterBase},
		{"write_register_byte", cfg.WriteRegisterByte},
		{"utf8_decoding_base", cfg.Utf8DecodingBase},
		{"utf8_decoding_byte", cfg.Utf8DecodingByte},
		{"utf16_decoding_base", cfg.Utf16DecodingBase},
		{"utf16_decoding_byte", cfg.Utf16DecodingByte},
		{"sha256_base", cfg.Sha256Base},
		{"sha256_byte", cfg.Sha256Byte},
		{"keccak256_base", cfg.Keccak256Base},
		{"keccak256_byte", cfg.Keccak256Byte},
		{"keccak512_base", cfg.Keccak512Base},
		{"keccak512_byte", cfg.Keccak512Byte},
		{"log_base", cfg.LogBase},
		{"log_byte", cfg.LogByte},
		{"storage_write_base", cfg.StorageWriteBase},
		{"storage_write_key_byte", cfg.StorageWriteKeyByte},
		{"storage_write_value_byte", cfg.StorageWriteValueByte},
		{"storage_write_evicted_byte", cfg.StorageWriteEvictedByte},
		{"storage_read_base", cfg.StorageReadBase},
		{"storage_read_key_byte", cfg.StorageReadKeyByte},
		{"storage_read_value_byte", cfg.StorageReadValueByte},
		{"storage_remove_base", cfg.StorageRemoveBase},
		{"storage_remove_key_byte", cfg.StorageRemoveKeyByte},
		{"storage_remove_ret_value_byte", cfg.StorageRemoveRetValueByte},
		{"storage_has_key_base", cfg.StorageHasKeyBase},
		{"storage_has_key_byte", cfg.StorageHasKeyByte},
		{"storage_iter_create_prefix_base", cfg.StorageIterCreatePrefixBase},
		{"storage_iter_create_prefix_byte", cfg.StorageIterCreatePrefixByte},
		{"storage_iter_create_range_base", cfg.StorageIterCreateRangeBase},
		{"storage_iter_create_from_byte", cfg.StorageIterCreateFromByte},
		{"storage_iter_create_to_byte", cfg.StorageIterCreateToByte},
		{"storage_iter_next_base", cfg.StorageIterNextBase},
		{"storage_iter_next_key_byte", cfg.StorageIterNextKeyByte},
		{"storage_iter_next_value_byte", cfg.StorageIterNextValueByte},
		{"touching_trie_node", cfg.TouchingTrieNode},
		{"promise_and_base", cfg.PromiseAndBase},
		{"promise_and_per_promise", cfg.PromiseAndPerPromise},
		{"promise_return", cfg.PromiseReturn},
		{"validator_stake_base", cfg.ValidatorStakeBase},
		{"validator_total_stake_base", cfg.ValidatorTotalStakeBase},
	}
}

// ToMap returns every cost indexed by its name
func (cfg ExtCostsConfig) ToMap() map[string]uint64 {
	entries := cfg.Entries()
	result := make(map[string]uint64, len(entries))
	for _, entry := range entries {
		result[entry.Name] = entry.Value
	}

	return result
}

// VMLimitConfig holds the execution limits of the VM
type VMLimitConfig struct {
	MaxGasBurnt                      uint64 `toml:"max_gas_burnt" json:"max_gas_burnt"`
	MaxGasBurntView                  uint64 `toml:"max_gas_burnt_view" json:"max_gas_burnt_view"`
	MaxStackHeight                   uint64 `toml:"max_stack_height" json:"max_stack_height"`
	InitialMemoryPages               uint64 `toml:"initial_memory_pages" json:"initial_memory_pages"`
	MaxMemoryPages                   uint64 `toml:"max_memory_pages" json:"max_memory_pages"`
	RegistersMemoryLimit             uint64 `toml:"registers_memory_limit" json:"registers_memory_limit"`
	MaxRegisterSize                  uint64 `toml:"max_register_size" json:"max_register_size"`
	MaxNumberRegisters               uint64 `toml:"max_number_registers" json:"max_number_registers"`
	MaxNumberLogs                    uint64 `toml:"max_number_logs" json:"max_number_logs"`
	MaxTotalLogLength                uint64 `toml:"max_total_log_length" json:"max_total_log_length"`
	MaxTotalPrepaidGas               uint64 `toml:"max_total_prepaid_gas" json:"max_total_prepaid_gas"`
	MaxActionsPerReceipt             uint64 `toml:"max_actions_per_receipt" json:"max_actions_per_receipt"`
	MaxNumberBytesMethodNames        uint64 `toml:"max_number_bytes_method_names" json:"max_number_bytes_method_names"`
	MaxLengthMethodName              uint64 `toml:"max_length_method_name" json:"max_length_method_name"`
	MaxArgumentsLength               uint64 `toml:"max_arguments_length" json:"max_arguments_length"`
	MaxLengthReturnedData            uint64 `toml:"max_length_returned_data" json:"max_length_returned_data"`
	MaxContractSize                  uint64 `toml:"max_contract_size" json:"max_contract_size"`
	MaxLengthStorageKey              uint64 `toml:"max_length_storage_key" json:"max_length_storage_key"`
	MaxLengthStorageValue            uint64 `toml:"max_length_storage_value" json:"max_length_storage_value"`
	MaxPromisesPerFunctionCallAction uint64 `toml:"max_promises_per_function_call_action" json:"max_promises_per_function_call_action"`
	MaxNumberInputDataDependencies   uint64 `toml:"max_number_input_data_dependencies" json:"max_number_input_data_dependencies"`
}

// VMConfig is the VM cost table
type VMConfig struct {
	ExtCosts      ExtCostsConfig `toml:"ext_costs" json:"ext_costs"`
	GrowMemCost   uint64         `toml:"grow_mem_cost" json:"grow_mem_cost"`
	RegularOpCost uint64         `toml:"regular_op_cost" json:"regular_op_cost"`
	LimitConfig   VMLimitConfig  `toml:"limit_config" json:"limit_config"`
}

// AccountCreationConfig restricts the creation of top level accounts
type AccountCreationConfig struct {
	MinAllowedTopLevelAccountLength uint64 `toml:"min_allowed_top_level_account_length" json:"min_allowed_top_level_account_length"`
	RegistrarAccountID              string `toml:"registrar_account_id" json:"registrar_account_id"`
}

// RuntimeConfig is the fee and cost configuration handed to the execution runtime. It holds no
// pointers, maps or slices, so assigning it copies it entirely.
type RuntimeConfig struct {
	ProtocolVersion       uint32                `toml:"protocol_version" json:"protocol_version"`
	StorageAmountPerByte  string                `toml:"storage_amount_per_byte" json:"storage_amount_per_byte"`
	TransactionCosts      RuntimeFeesConfig     `toml:"transaction_costs" json:"transaction_costs"`
	WasmConfig            VMConfig              `toml:"wasm_config" json:"wasm_config"`
	AccountCreationConfig AccountCreationConfig `toml:"account_creation_config" json:"account_creation_config"`
}
