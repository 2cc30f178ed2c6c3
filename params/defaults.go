package params

// DefaultProtocolVersion is the protocol version of the built in baseline configuration
const DefaultProtocolVersion = uint32(38)

func uniformFee(value uint64) Fee {
	return Fee{
		SendSameAccount:      value,
		SendDifferentAccount: value,
		Execution:            value,
	}
}

// DefaultRuntimeFeesConfig returns the baseline fee table
func DefaultRuntimeFeesConfig() RuntimeFeesConfig {
	return RuntimeFeesConfig{
		ActionReceiptCreationConfig: uniformFee(108_059_500_000),
		DataReceiptCreationConfig: DataReceiptCreationConfig{
			BaseCost:    uniformFee(4_697_339_419_375),
			CostPerByte: uniformFee(59_357_464),
		},
		ActionCreationConfig: ActionCreationConfig{
			CreateAccountCost:         uniformFee(99_607_375_000),
			DeployContractCost:        uniformFee(184_765_750_000),
			DeployContractCostPerByte: uniformFee(6_812_999),
			FunctionCallCost:          uniformFee(2_319_861_500_000),
			FunctionCallCostPerByte:   uniformFee(2_235_934),
			TransferCost:              uniformFee(115_123_062_500),
			StakeCost:                 uniformFee(141_715_687_500),
			AddKeyCost: AccessKeyCreationConfig{
				FullAccessCost:          uniformFee(101_765_125_000),
				FunctionCallCost:        uniformFee(102_217_625_000),
				FunctionCallCostPerByte: uniformFee(1_925_331),
			},
			DeleteKeyCost:     uniformFee(94_946_625_000),
			DeleteAccountCost: uniformFee(147_489_000_000),
		},
		StorageUsageConfig: StorageUsageConfig{
			NumBytesAccount:     100,
			NumExtraBytesRecord: 40,
		},
		BurntGasReward:               Rational{Numerator: 3, Denominator: 10},
		PessimisticGasPriceInflation: Rational{Numerator: 103, Denominator: 100},
	}
}

// DefaultExtCostsConfig returns the baseline host function costs
func DefaultExtCostsConfig() ExtCostsConfig {
	return ExtCostsConfig{
		Base:                      264_768_111,
		ContractCompileBase:       35_445_963,
		ContractCompileBytes:      216_750,
		ReadMemoryBase:            2_609_863_200,
		ReadMemoryByte:            3_801_333,
		WriteMemoryBase:           2_803_794_861,
		WriteMemoryByte:           2_723_772,
		ReadRegisterBase:          2_517_165_186,
		ReadRegisterByte:          98_562,
		WriteRegisterBase:         2_865_522_486,
		WriteRegisterByte:         3_801_564,
		Utf8DecodingBase:          3_111_779_061,
		Utf8DecodingByte:          291_580_479,
		Utf16DecodingBase:         3_543_313_050,
		Utf16DecodingByte:         163_577_493,
		Sha256Base:                4_540_970_250,
		Sha256Byte:                24_117_351,
		Keccak256Base:             5_879_491_275,
		Keccak256Byte:             21_471_105,
		Keccak512Base:             5_811_388_236,
		Keccak512Byte:             36_649_701,
		LogBase:                   3_543_313_050,
		LogByte:                   13_198_791,
		StorageWriteBase:          64_196_736_000,
		StorageWriteKeyByte:       70_482_867,
		StorageWriteValueByte:     31_018_539,
		StorageWriteEvictedByte:   32_117_307,
		StorageReadBase:           56_356_845_750,
		StorageReadKeyByte:        30_952_533,
		StorageReadValueByte:      5_611_005,
		StorageRemoveBase:         53_473_030_500,
		StorageRemoveKeyByte:      38_220_384,
		StorageRemoveRetValueByte: 11_531_556,
		StorageHasKeyBase:         54_039_896_625,
		StorageHasKeyByte:         30_790_845,
		TouchingTrieNode:          16_101_955_926,
		PromiseAndBase:            1_465_013_400,
		PromiseAndPerPromise:      5_452_176,
		PromiseReturn:             560_152_386,
		ValidatorStakeBase:        911_834_726_400,
		ValidatorTotalStakeBase:   911_834_726_400,
	}
}

// DefaultVMLimitConfig returns the baseline VM limits
func DefaultVMLimitConfig() VMLimitConfig {
	return VMLimitConfig{
		MaxGasBurnt:                      200_000_000_000_000,
		MaxGasBurntView:                  200_000_000_000_000,
		MaxStackHeight:                   16 * 1024,
		InitialMemoryPages:               1024,
		MaxMemoryPages:                   2048,
		RegistersMemoryLimit:             1 << 30,
		MaxRegisterSize:                  100 << 20,
		MaxNumberRegisters:               100,
		MaxNumberLogs:                    100,
		MaxTotalLogLength:                16 * 1024,
		MaxTotalPrepaidGas:               300_000_000_000_000,
		MaxActionsPerReceipt:             100,
		MaxNumberBytesMethodNames:        2000,
		MaxLengthMethodName:              256,
		MaxArgumentsLength:               4 << 20,
		MaxLengthReturnedData:            4 << 20,
		MaxContractSize:                  4 << 20,
		MaxLengthStorageKey:              4 << 20,
		MaxLengthStorageValue:            4 << 20,
		MaxPromisesPerFunctionCallAction: 1024,
		MaxNumberInputDataDependencies:   128,
	}
}

// DefaultVMConfig returns the baseline VM cost table
func DefaultVMConfig() VMConfig {
	return VMConfig{
		ExtCosts:      DefaultExtCostsConfig(),
		GrowMemCost:   1,
		RegularOpCost: 3_856_371,
		LimitConfig:   DefaultVMLimitConfig(),
	}
}

// DefaultRuntimeConfig returns the protocol baseline every calibration run starts from
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ProtocolVersion:      DefaultProtocolVersion,
		StorageAmountPerByte: "100000000000000000000",
		TransactionCosts:     DefaultRuntimeFeesConfig(),
		WasmConfig:           DefaultVMConfig(),
		AccountCreationConfig: AccountCreationConfig{
			MinAllowedTopLevelAccountLength: 32,
			RegistrarAccountID:              "registrar",
		},
	}
}
