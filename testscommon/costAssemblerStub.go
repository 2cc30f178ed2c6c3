package testscommon

import "github.com/multiversx/mx-chain-params-estimator-go/params"

// CostAssemblerStub -
type CostAssemblerStub struct {
	RuntimeFeesCalled func(base params.RuntimeFeesConfig) (params.RuntimeFeesConfig, error)
	VMConfigCalled    func(base params.VMConfig) (params.VMConfig, error)
}

// RuntimeFees -
func (stub *CostAssemblerStub) RuntimeFees(base params.RuntimeFeesConfig) (params.RuntimeFeesConfig, error) {
	if stub.RuntimeFeesCalled != nil {
		return stub.RuntimeFeesCalled(base)
	}

	return base, nil
}

// VMConfig -
func (stub *CostAssemblerStub) VMConfig(base params.VMConfig) (params.VMConfig, error) {
	if stub.VMConfigCalled != nil {
		return stub.VMConfigCalled(base)
	}

	return base, nil
}

// IsInterfaceNil -
func (stub *CostAssemblerStub) IsInterfaceNil() bool {
	return stub == nil
}
