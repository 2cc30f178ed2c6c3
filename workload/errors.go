package workload

import "errors"

// ErrInvalidActiveAccounts signals that the active account pool is empty
var ErrInvalidActiveAccounts = errors.New("invalid number of active accounts")

// ErrInvalidDeployedAccounts signals that the deployed accounts do not fit inside the active pool
var ErrInvalidDeployedAccounts = errors.New("invalid number of deployed accounts")

// ErrInvalidSelectionAttempts signals that the maximum number of selection attempts is not positive
var ErrInvalidSelectionAttempts = errors.New("invalid maximum selection attempts")

// ErrInvalidBatchSize signals that a batch of zero transactions has been requested
var ErrInvalidBatchSize = errors.New("invalid batch size")

// ErrMissingContractCode signals that a deploy workload has no contract code assigned
var ErrMissingContractCode = errors.New("missing contract code")

// ErrNilHasher signals that a nil hasher has been provided
var ErrNilHasher = errors.New("nil hasher")

// ErrNilMarshalizer signals that a nil marshalizer has been provided
var ErrNilMarshalizer = errors.New("nil marshalizer")

// ErrNilKeyGenerator signals that a nil key generator has been provided
var ErrNilKeyGenerator = errors.New("nil key generator")

// ErrNilSingleSigner signals that a nil single signer has been provided
var ErrNilSingleSigner = errors.New("nil single signer")

// ErrNilTransaction signals that a nil transaction has been provided
var ErrNilTransaction = errors.New("nil transaction")

// ErrUnknownAccount signals that the transaction signer is not part of the generated accounts
var ErrUnknownAccount = errors.New("unknown account")

// ErrEmptyContractsDir signals that no contracts directory has been provided
var ErrEmptyContractsDir = errors.New("empty contracts directory")
