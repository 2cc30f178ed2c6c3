package metric

// Metric identifies one independently measured operation category
type Metric int

// The closed set of calibration points. The order is the measurement order of a full run.
const (
	Receipt Metric = iota
	ActionTransfer
	ActionCreateAccount
	ActionDeleteAccount
	ActionAddFullAccessKey
	ActionAddFunctionAccessKey1Method
	ActionAddFunctionAccessKey1000Methods
	ActionDeleteAccessKey
	ActionStake
	ActionDeploy10K
	ActionDeploy100K
	ActionDeploy1M

	Warmup
	Noop1MiB
	Noop
	Base1M
	ReadMemory10b10k
	ReadMemory1MiB10k
	WriteMemory10b10k
	WriteMemory1MiB10k
	ReadRegister10b10k
	ReadRegister1MiB10k
	WriteRegister10b10k
	WriteRegister1MiB10k
	Utf8Log10b10k
	Utf8Log10KiB10k
	NulUtf8Log10b10k
	NulUtf8Log10KiB10k
	Utf16Log10b10k
	Utf16Log10KiB10k
	NulUtf16Log10b10k
	NulUtf16Log10KiB10k
	Sha25610b10k
	Sha25610KiB10k
	Keccak25610b10k
	Keccak25610KiB10k
	Keccak51210b10k
	Keccak51210KiB10k
	StorageWrite10bKey10bValue1k
	StorageWrite10KiBKey10bValue1k
	StorageWrite10bKey10KiBValue1k
	StorageWrite10bKey10KiBValue1kEvict
	StorageRead10bKey10bValue1k
	StorageRead10KiBKey10bValue1k
	StorageRead10bKey10KiBValue1k
	StorageRemove10bKey10bValue1k
	StorageRemove10KiBKey10bValue1k
	StorageRemove10bKey10KiBValue1k
	StorageHasKey10bKey10bValue1k
	StorageHasKey10KiBKey10bValue1k
	StorageHasKey10bKey10KiBValue1k

	PromiseAnd100k
	PromiseAnd100kOn1kAnd
	PromiseReturn100k
	DataProducer10b
	DataProducer100KiB
	DataReceipt10b1000
	DataReceipt100KiB1000
	CpuRamSoakTest

	numMetrics
)

// Kind tells how a metric's workload is built
type Kind uint8

const (
	// KindAction workloads are transactions carrying account actions
	KindAction Kind = iota + 1
	// KindFunctionCall workloads call a method of the test contract
	KindFunctionCall
)

// Role tells whether the assembler consumes a metric
type Role uint8

const (
	// RoleRequired metrics feed a protocol cost and must be measured
	RoleRequired Role = iota + 1
	// RoleDiagnostic metrics are measured for reference only
	RoleDiagnostic
)

// Info holds the static description of a metric's workload
type Info struct {
	Name string
	Kind Kind
	Role Role
	// Method is the test contract method called by function call workloads
	Method string
	// ArgsLen is the length of the function call arguments
	ArgsLen int
	// OpsPerCall is how many times one call performs the measured operation
	OpsPerCall uint64
	// PayloadBytes is the size of the operand the measured operation works on
	PayloadBytes uint64
}
