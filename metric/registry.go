package metric

import (
	"fmt"
)

const (
	kib = uint64(1024)
	mib = 1024 * kib
)

func action(name string, role Role, payload uint64) Info {
	return Info{
		Name:         name,
		Kind:         KindAction,
		Role:         role,
		OpsPerCall:   1,
		PayloadBytes: payload,
	}
}

func call(name string, role Role, opsPerCall uint64, payload uint64) Info {
	return Info{
		Name:         name,
		Kind:         KindFunctionCall,
		Role:         role,
		Method:       name,
		OpsPerCall:   opsPerCall,
		PayloadBytes: payload,
	}
}

var infos = [numMetrics]Info{
	Receipt:                               action("receipt", RoleRequired, 0),
	ActionTransfer:                        action("action_transfer", RoleRequired, 0),
	ActionCreateAccount:                   action("action_create_account", RoleRequired, 0),
	ActionDeleteAccount:                   action("action_delete_account", RoleRequired, 0),
	ActionAddFullAccessKey:                action("action_add_full_access_key", RoleRequired, 0),
	ActionAddFunctionAccessKey1Method:     action("action_add_function_access_key_1_method", RoleRequired, MethodNameLen),
	ActionAddFunctionAccessKey1000Methods: action("action_add_function_access_key_1000_methods", RoleRequired, NumManyMethods*MethodNameLen),
	ActionDeleteAccessKey:                 action("action_delete_access_key", RoleRequired, 0),
	ActionStake:                           action("action_stake", RoleRequired, 0),
	ActionDeploy10K:                       action("action_deploy_10k", RoleRequired, 10*kib),
	ActionDeploy100K:                      action("action_deploy_100k", RoleDiagnostic, 100*kib),
	ActionDeploy1M:                        action("action_deploy_1m", RoleRequired, mib),

	Warmup: call("warmup", RoleDiagnostic, 1, 0),
	Noop1MiB: {
		Name:         "noop_1mib",
		Kind:         KindFunctionCall,
		Role:         RoleRequired,
		Method:       "noop",
		ArgsLen:      int(mib),
		OpsPerCall:   1,
		PayloadBytes: mib,
	},
	Noop:                                call("noop", RoleRequired, 1, 0),
	Base1M:                              call("base_1m", RoleRequired, 1_000_000, 0),
	ReadMemory10b10k:                    call("read_memory_10b_10k", RoleRequired, 10_000, 10),
	ReadMemory1MiB10k:                   call("read_memory_1mib_10k", RoleRequired, 10_000, mib),
	WriteMemory10b10k:                   call("write_memory_10b_10k", RoleRequired, 10_000, 10),
	WriteMemory1MiB10k:                  call("write_memory_1mib_10k", RoleRequired, 10_000, mib),
	ReadRegister10b10k:                  call("read_register_10b_10k", RoleRequired, 10_000, 10),
	ReadRegister1MiB10k:                 call("read_register_1mib_10k", RoleRequired, 10_000, mib),
	WriteRegister10b10k:                 call("write_register_10b_10k", RoleRequired, 10_000, 10),
	WriteRegister1MiB10k:                call("write_register_1mib_10k", RoleRequired, 10_000, mib),
	Utf8Log10b10k:                       call("utf8_log_10b_10k", RoleRequired, 10_000, 10),
	Utf8Log10KiB10k:                     call("utf8_log_10kib_10k", RoleRequired, 10_000, 10*kib),
	NulUtf8Log10b10k:                    call("nul_utf8_log_10b_10k", RoleRequired, 10_000, 10),
	NulUtf8Log10KiB10k:                  call("nul_utf8_log_10kib_10k", RoleRequired, 10_000, 10*kib),
	Utf16Log10b10k:                      call("utf16_log_10b_10k", RoleRequired, 10_000, 10),
	Utf16Log10KiB10k:                    call("utf16_log_10kib_10k", RoleRequired, 10_000, 10*kib),
	NulUtf16Log10b10k:                   call("nul_utf16_log_10b_10k", RoleRequired, 10_000, 10),
	NulUtf16Log10KiB10k:                 call("nul_utf16_log_10kib_10k", RoleRequired, 10_000, 10*kib),
	Sha25610b10k:                        call("sha256_10b_10k", RoleRequired, 10_000, 10),
	Sha25610KiB10k:                      call("sha256_10kib_10k", RoleRequired, 10_000, 10*kib),
	Keccak25610b10k:                     call("keccak256_10b_10k", RoleRequired, 10_000, 10),
	Keccak25610KiB10k:                   call("keccak256_10kib_10k", RoleRequired, 10_000, 10*kib),
	Keccak51210b10k:                     call("keccak512_10b_10k", RoleRequired, 10_000, 10),
	Keccak51210KiB10k:                   call("keccak512_10kib_10k", RoleRequired, 10_000, 10*kib),
	StorageWrite10bKey10bValue1k:        call("storage_write_10b_key_10b_value_1k", RoleRequired, 1000, 10),
	StorageWrite10KiBKey10bValue1k:      call("storage_write_10kib_key_10b_value_1k", RoleRequired, 1000, 10*kib),
	StorageWrite10bKey10KiBValue1k:      call("storage_write_10b_key_10kib_value_1k", RoleRequired, 1000, 10*kib),
	StorageWrite10bKey10KiBValue1kEvict: call("storage_write_10b_key_10kib_value_1k_evict", RoleRequired, 1000, 10*kib),
	StorageRead10bKey10bValue1k:         call("storage_read_10b_key_10b_value_1k", RoleRequired, 1000, 10),
	StorageRead10KiBKey10bValue1k:       call("storage_read_10kib_key_10b_value_1k", RoleRequired, 1000, 10*kib),
	StorageRead10bKey10KiBValue1k:       call("storage_read_10b_key_10kib_value_1k", RoleRequired, 1000, 10*kib),
	StorageRemove10bKey10bValue1k:       call("storage_remove_10b_key_10b_value_1k", RoleRequired, 1000, 10),
	StorageRemove10KiBKey10bValue1k:     call("storage_remove_10kib_key_10b_value_1k", RoleRequired, 1000, 10*kib),
	StorageRemove10bKey10KiBValue1k:     call("storage_remove_10b_key_10kib_value_1k", RoleRequired, 1000, 10*kib),
	StorageHasKey10bKey10bValue1k:       call("storage_has_key_10b_key_10b_value_1k", RoleRequired, 1000, 10),
	StorageHasKey10KiBKey10bValue1k:     call("storage_has_key_10kib_key_10b_value_1k", RoleRequired, 1000, 10*kib),
	StorageHasKey10bKey10KiBValue1k:     call("storage_has_key_10b_key_10kib_value_1k", RoleDiagnostic, 1000, 10*kib),

	PromiseAnd100k:        call("promise_and_100k", RoleRequired, 100_000, 1),
	PromiseAnd100kOn1kAnd: call("promise_and_100k_on_1k_and", RoleRequired, 100_000, 1000),
	PromiseReturn100k:     call("promise_return_100k", RoleRequired, 100_000, 0),
	DataProducer10b:       call("data_producer_10b", RoleDiagnostic, 1, 10),
	DataProducer100KiB:    call("data_producer_100kib", RoleDiagnostic, 1, 100*kib),
	DataReceipt10b1000:    call("data_receipt_10b_1000", RoleRequired, 1000, 10),
	DataReceipt100KiB1000: call("data_receipt_100kib_1000", RoleRequired, 1000, 100*kib),
	CpuRamSoakTest:        call("cpu_ram_soak_test", RoleDiagnostic, 1, 0),
}

const (
	// MethodNameLen is the width of every generated access key method name
	MethodNameLen = 10
	// NumManyMethods is the number of method names of the many-methods access key workload
	NumManyMethods = 1000
)

var byName map[string]Metric

func init() {
	index, err := buildIndex()
	if err != nil {
		panic(err)
	}

	byName = index
}

func buildIndex() (map[string]Metric, error) {
	index := make(map[string]Metric, numMetrics)
	for m := Metric(0); m < numMetrics; m++ {
		info := infos[m]
		if len(info.Name) == 0 {
			return nil, fmt.Errorf("%w: metric %d has no registry entry", ErrUnknownMetric, int(m))
		}
		if info.Kind != KindAction && info.Kind != KindFunctionCall {
			return nil, fmt.Errorf("metric %s has an invalid kind %d", info.Name, info.Kind)
		}
		if info.Role != RoleRequired && info.Role != RoleDiagnostic {
			return nil, fmt.Errorf("metric %s has an invalid role %d", info.Name, info.Role)
		}
		if info.OpsPerCall == 0 {
			return nil, fmt.Errorf("metric %s has zero operations per call", info.Name)
		}
		if info.Kind == KindFunctionCall && len(info.Method) == 0 {
			return nil, fmt.Errorf("metric %s has no contract method", info.Name)
		}
		_, exists := index[info.Name]
		if exists {
			return nil, fmt.Errorf("duplicated metric name %s", info.Name)
		}

		index[info.Name] = m
	}

	return index, nil
}

// IsValid returns true if the metric is part of the registry
func (m Metric) IsValid() bool {
	return m >= 0 && m < numMetrics
}

// String returns the stable name of the metric
func (m Metric) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("unknown_metric_%d", int(m))
	}

	return infos[m].Name
}

// InfoOf returns the static description of the provided metric
func InfoOf(m Metric) (Info, error) {
	if !m.IsValid() {
		return Info{}, fmt.Errorf("%w: %d", ErrUnknownMetric, int(m))
	}

	return infos[m], nil
}

// FromName returns the metric registered under the provided name
func FromName(name string) (Metric, error) {
	m, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownMetric, name)
	}

	return m, nil
}

// FromNames resolves a list of names, keeping their order
func FromNames(names []string) ([]Metric, error) {
	result := make([]Metric, 0, len(names))
	for _, name := range names {
		m, err := FromName(name)
		if err != nil {
			return nil, err
		}

		result = append(result, m)
	}

	return result, nil
}

// All returns every metric in measurement order
func All() []Metric {
	all := make([]Metric, 0, numMetrics)
	for m := Metric(0); m < numMetrics; m++ {
		all = append(all, m)
	}

	return all
}

// Required returns the metrics consumed by the fee and cost assembler
func Required() []Metric {
	required := make([]Metric, 0, numMetrics)
	for m := Metric(0); m < numMetrics; m++ {
		if infos[m].Role == RoleRequired {
			required = append(required, m)
		}
	}

	return required
}

// Count returns the size of the registry
func Count() int {
	return int(numMetrics)
}
