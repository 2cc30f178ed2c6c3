package workload

import (
	"fmt"
	"math/big"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/hashing"
	"github.com/multiversx/mx-chain-core-go/marshal"
	crypto "github.com/multiversx/mx-chain-crypto-go"
	logger "github.com/multiversx/mx-chain-logger-go"

	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
)

var log = logger.GetOrCreate("workload")

// FunctionCallGas is the gas attached to every generated function call
const FunctionCallGas = uint64(1_000_000_000_000_000_000)

const (
	blockHashLen      = 32
	manyMethodsPrefix = "a123456"
)

var (
	createAccountDeposit = new(big.Int).Exp(big.NewInt(10), big.NewInt(26), nil)
	transferDeposit      = big.NewInt(1)
	stakeAmount          = big.NewInt(1)
	accessKeyAllowance   = big.NewInt(100)
)

// ArgsGenerator holds the arguments needed to create a workload generator. ActiveAccounts is the size
// of the pre-funded account pool, the first DeployedAccounts of them hold the test contract.
type ArgsGenerator struct {
	ActiveAccounts       int
	DeployedAccounts     int
	Seed                 uint64
	MaxSelectionAttempts int
	ContractCodes        map[metric.Metric][]byte
	Hasher               hashing.Hasher
	Marshalizer          marshal.Marshalizer
	KeyGenerator         crypto.KeyGenerator
	Signer               crypto.SingleSigner
}

type generator struct {
	activeAccounts       int
	deployedAccounts     int
	maxSelectionAttempts int
	contractCodes        map[metric.Metric][]byte
	keys                 *keyring
	rand                 *source

	nonces          map[string]uint64
	deleted         map[int]struct{}
	beneficiaries   map[int]struct{}
	keyDeleted      map[int]struct{}
	redeployed      map[int]struct{}
	createdAccounts uint64
	manyMethods     []string
}

// NewGenerator creates a workload generator. The generator is not safe for concurrent use.
func NewGenerator(args ArgsGenerator) (*generator, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	codes := make(map[metric.Metric][]byte, len(args.ContractCodes))
	for m, code := range args.ContractCodes {
		codes[m] = code
	}

	return &generator{
		activeAccounts:       args.ActiveAccounts,
		deployedAccounts:     args.DeployedAccounts,
		maxSelectionAttempts: args.MaxSelectionAttempts,
		contractCodes:        codes,
		keys:                 newKeyring(args.Hasher, args.Marshalizer, args.KeyGenerator, args.Signer),
		rand:                 newSource(args.Seed),
		nonces:               make(map[string]uint64),
		deleted:              make(map[int]struct{}),
		beneficiaries:        make(map[int]struct{}),
		keyDeleted:           make(map[int]struct{}),
		redeployed:           make(map[int]struct{}),
		manyMethods:          ManyMethodNames(),
	}, nil
}

func checkArgs(args ArgsGenerator) error {
	if args.ActiveAccounts <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidActiveAccounts, args.ActiveAccounts)
	}
	if args.DeployedAccounts < 0 || args.DeployedAccounts > args.ActiveAccounts {
		return fmt.Errorf("%w: %d deployed out of %d active", ErrInvalidDeployedAccounts, args.DeployedAccounts, args.ActiveAccounts)
	}
	if args.MaxSelectionAttempts <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSelectionAttempts, args.MaxSelectionAttempts)
	}
	if check.IfNil(args.Hasher) {
		return ErrNilHasher
	}
	if check.IfNil(args.Marshalizer) {
		return ErrNilMarshalizer
	}
	if check.IfNil(args.KeyGenerator) {
		return ErrNilKeyGenerator
	}
	if check.IfNil(args.Signer) {
		return ErrNilSingleSigner
	}

	return nil
}

// AccountID returns the id of the account with the provided index in the active pool
func AccountID(idx int) string {
	return fmt.Sprintf("account_%d", idx)
}

// ManyMethodNames returns the 1000 distinct, equally sized method names of the many-methods access key workload
func ManyMethodNames() []string {
	names := make([]string, 0, metric.NumManyMethods)
	for i := 0; i < metric.NumManyMethods; i++ {
		names = append(names, fmt.Sprintf("%s%03d", manyMethodsPrefix, i))
	}

	return names
}

// GenerateBatch builds size signed transactions for the provided metric
func (g *generator) GenerateBatch(m metric.Metric, size int) ([]*Transaction, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBatchSize, size)
	}

	batch := make([]*Transaction, 0, size)
	for i := 0; i < size; i++ {
		tx, err := g.Generate(m)
		if err != nil {
			return nil, fmt.Errorf("%w after %d transactions of %s", err, i, m)
		}

		batch = append(batch, tx)
	}

	return batch, nil
}

// Generate builds one signed transaction isolating the cost of the provided metric
func (g *generator) Generate(m metric.Metric) (*Transaction, error) {
	info, err := metric.InfoOf(m)
	if err != nil {
		return nil, err
	}

	if info.Kind == metric.KindFunctionCall {
		return g.functionCall(info)
	}

	switch m {
	case metric.Receipt:
		return g.toOtherAccount()
	case metric.ActionTransfer:
		return g.toOtherAccount(&Transfer{Deposit: new(big.Int).Set(transferDeposit)})
	case metric.ActionCreateAccount:
		return g.createAccount()
	case metric.ActionDeleteAccount:
		return g.deleteAccount()
	case metric.ActionAddFullAccessKey:
		return g.addKey(nil)
	case metric.ActionAddFunctionAccessKey1Method:
		return g.addKey(g.manyMethods[:1])
	case metric.ActionAddFunctionAccessKey1000Methods:
		return g.addKey(g.manyMethods)
	case metric.ActionDeleteAccessKey:
		return g.deleteKey()
	case metric.ActionStake:
		return g.stake()
	case metric.ActionDeploy10K, metric.ActionDeploy100K, metric.ActionDeploy1M:
		return g.deploy(m)
	default:
		return nil, fmt.Errorf("%w: no workload for %s", metric.ErrUnknownMetric, m)
	}
}

// VerifyTransaction checks the signature of a generated transaction
func (g *generator) VerifyTransaction(tx *Transaction) error {
	return g.keys.verify(tx)
}

func (g *generator) isDeleted(idx int) bool {
	_, ok := g.deleted[idx]
	return ok
}

func (g *generator) isBeneficiary(idx int) bool {
	_, ok := g.beneficiaries[idx]
	return ok
}

// canSign reports whether the account still exists and still holds its key
func (g *generator) canSign(idx int) bool {
	if g.isDeleted(idx) {
		return false
	}

	_, ok := g.keyDeleted[idx]
	return !ok
}

// holdsTestContract reports whether the account still runs the contract the function call workloads target
func (g *generator) holdsTestContract(idx int) bool {
	if idx >= g.deployedAccounts {
		return false
	}

	_, ok := g.redeployed[idx]
	return !ok
}

// pick draws an index in [0, upper) satisfying eligible. Random draws are bounded, after which the
// candidates are scanned from a random offset so a nearly exhausted pool still terminates.
func (g *generator) pick(upper int, eligible func(idx int) bool) (int, error) {
	if upper <= 0 {
		return 0, common.ErrWorkloadGenerationExhausted
	}

	for attempt := 0; attempt < g.maxSelectionAttempts; attempt++ {
		idx := g.rand.intn(upper)
		if eligible(idx) {
			return idx, nil
		}
	}

	log.Debug("random account selection exhausted, scanning the pool", "attempts", g.maxSelectionAttempts)
	offset := g.rand.intn(upper)
	for i := 0; i < upper; i++ {
		idx := (offset + i) % upper
		if eligible(idx) {
			return idx, nil
		}
	}

	return 0, common.ErrWorkloadGenerationExhausted
}

func (g *generator) nextNonce(accountID string) uint64 {
	g.nonces[accountID]++
	return g.nonces[accountID]
}

func (g *generator) build(signerID string, receiverID string, actions ...Action) (*Transaction, error) {
	tx := &Transaction{
		Nonce:      g.nextNonce(signerID),
		SignerID:   signerID,
		ReceiverID: receiverID,
		Actions:    actions,
		BlockHash:  make([]byte, blockHashLen),
	}
	if tx.Actions == nil {
		tx.Actions = make([]Action, 0)
	}

	err := g.keys.sign(tx)
	if err != nil {
		return nil, err
	}

	return tx, nil
}

func (g *generator) pickSigner() (int, error) {
	return g.pick(g.activeAccounts, g.canSign)
}

func (g *generator) toOtherAccount(actions ...Action) (*Transaction, error) {
	signer, err := g.pickSigner()
	if err != nil {
		return nil, err
	}

	receiver, err := g.pick(g.activeAccounts, func(idx int) bool {
		return idx != signer && !g.isDeleted(idx)
	})
	if err != nil {
		return nil, err
	}

	return g.build(AccountID(signer), AccountID(receiver), actions...)
}

func (g *generator) createAccount() (*Transaction, error) {
	signer, err := g.pickSigner()
	if err != nil {
		return nil, err
	}

	g.createdAccounts++
	receiverID := fmt.Sprintf("created_account_%d", g.createdAccounts)

	return g.build(
		AccountID(signer),
		receiverID,
		&CreateAccount{},
		&Transfer{Deposit: new(big.Int).Set(createAccountDeposit)},
	)
}

func (g *generator) deleteAccount() (*Transaction, error) {
	victim, err := g.pick(g.activeAccounts, func(idx int) bool {
		return g.canSign(idx) && !g.isBeneficiary(idx)
	})
	if err != nil {
		return nil, err
	}

	beneficiary, err := g.pick(g.activeAccounts, func(idx int) bool {
		return idx != victim && !g.isDeleted(idx) && !g.isBeneficiary(idx)
	})
	if err != nil {
		return nil, err
	}

	g.deleted[victim] = struct{}{}
	g.beneficiaries[beneficiary] = struct{}{}
	victimID := AccountID(victim)

	return g.build(victimID, victimID, &DeleteAccount{BeneficiaryID: AccountID(beneficiary)})
}

func (g *generator) addKey(methodNames []string) (*Transaction, error) {
	signer, err := g.pickSigner()
	if err != nil {
		return nil, err
	}

	signerID := AccountID(signer)
	newKey, err := g.keys.publicKeyOf(fmt.Sprintf("%s_key_%d", signerID, g.nonces[signerID]+1))
	if err != nil {
		return nil, err
	}

	accessKey := AccessKey{}
	if methodNames != nil {
		names := make([]string, len(methodNames))
		copy(names, methodNames)
		accessKey.FunctionCall = &FunctionCallPermission{
			Allowance:   new(big.Int).Set(accessKeyAllowance),
			ReceiverID:  AccountID(0),
			MethodNames: names,
		}
	}

	return g.build(signerID, signerID, &AddKey{PublicKey: newKey, AccessKey: accessKey})
}

// deleteKey removes the signer's own key, so an account is never picked twice
func (g *generator) deleteKey() (*Transaction, error) {
	signer, err := g.pickSigner()
	if err != nil {
		return nil, err
	}

	signerID := AccountID(signer)
	publicKey, err := g.keys.publicKeyOf(signerID)
	if err != nil {
		return nil, err
	}

	tx, err := g.build(signerID, signerID, &DeleteKey{PublicKey: publicKey})
	if err != nil {
		return nil, err
	}

	g.keyDeleted[signer] = struct{}{}

	return tx, nil
}

func (g *generator) stake() (*Transaction, error) {
	signer, err := g.pickSigner()
	if err != nil {
		return nil, err
	}

	signerID := AccountID(signer)
	publicKey, err := g.keys.publicKeyOf(signerID)
	if err != nil {
		return nil, err
	}

	return g.build(signerID, signerID, &Stake{Stake: new(big.Int).Set(stakeAmount), PublicKey: publicKey})
}

func (g *generator) deploy(m metric.Metric) (*Transaction, error) {
	code, ok := g.contractCodes[m]
	if !ok || len(code) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrMissingContractCode, m)
	}

	signer, err := g.pickDeploySigner()
	if err != nil {
		return nil, err
	}

	signerID := AccountID(signer)
	tx, err := g.build(signerID, signerID, &DeployContract{Code: code})
	if err != nil {
		return nil, err
	}

	if signer < g.deployedAccounts {
		g.redeployed[signer] = struct{}{}
	}

	return tx, nil
}

// pickDeploySigner prefers accounts outside the test contract holders. Once those are used up a holder
// is drawn and its contract counts as replaced.
func (g *generator) pickDeploySigner() (int, error) {
	offset := g.deployedAccounts
	idx, err := g.pick(g.activeAccounts-offset, func(idx int) bool {
		return g.canSign(offset + idx)
	})
	if err == nil {
		return offset + idx, nil
	}

	return g.pickSigner()
}

func (g *generator) functionCall(info metric.Info) (*Transaction, error) {
	signer, err := g.pick(g.deployedAccounts, func(idx int) bool {
		return g.canSign(idx) && g.holdsTestContract(idx)
	})
	if err != nil {
		return nil, err
	}

	signerID := AccountID(signer)
	call := &FunctionCall{
		MethodName: info.Method,
		Args:       make([]byte, info.ArgsLen),
		Gas:        FunctionCallGas,
		Deposit:    big.NewInt(0),
	}

	return g.build(signerID, signerID, call)
}

// IsInterfaceNil returns true if there is no value under the interface
func (g *generator) IsInterfaceNil() bool {
	return g == nil
}
