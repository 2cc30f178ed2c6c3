package workload

import (
	"encoding/json"
	"math/big"
)

// ActionType is the wire tag of an action
type ActionType string

// Action types
const (
	ActionCreateAccount ActionType = "CreateAccount"
	ActionTransfer      ActionType = "Transfer"
	ActionDeleteAccount ActionType = "DeleteAccount"
	ActionAddKey        ActionType = "AddKey"
	ActionDeleteKey     ActionType = "DeleteKey"
	ActionStake         ActionType = "Stake"
	ActionDeploy        ActionType = "DeployContract"
	ActionFunctionCall  ActionType = "FunctionCall"
)

// Action is one step executed by a transaction on its receiver
type Action interface {
	Type() ActionType
}

// CreateAccount creates the receiver account
type CreateAccount struct{}

// Transfer moves Deposit tokens from the signer to the receiver
type Transfer struct {
	Deposit *big.Int `json:"deposit"`
}

// DeleteAccount deletes the receiver, sending its balance to the beneficiary
type DeleteAccount struct {
	BeneficiaryID string `json:"beneficiary_id"`
}

// FunctionCallPermission restricts an access key to a receiver and a set of methods
type FunctionCallPermission struct {
	Allowance   *big.Int `json:"allowance"`
	ReceiverID  string   `json:"receiver_id"`
	MethodNames []string `json:"method_names"`
}

// AccessKey is the permission attached to an added key. A nil FunctionCall means full access.
type AccessKey struct {
	Nonce        uint64                  `json:"nonce"`
	FunctionCall *FunctionCallPermission `json:"function_call,omitempty"`
}

// AddKey adds PublicKey to the receiver account
type AddKey struct {
	PublicKey []byte    `json:"public_key"`
	AccessKey AccessKey `json:"access_key"`
}

// DeleteKey removes PublicKey from the receiver account
type DeleteKey struct {
	PublicKey []byte `json:"public_key"`
}

// Stake locks Stake tokens with the validator key
type Stake struct {
	Stake     *big.Int `json:"stake"`
	PublicKey []byte   `json:"public_key"`
}

// DeployContract deploys Code on the receiver account
type DeployContract struct {
	Code []byte `json:"code"`
}

// FunctionCall calls MethodName of the receiver's contract
type FunctionCall struct {
	MethodName string   `json:"method_name"`
	Args       []byte   `json:"args"`
	Gas        uint64   `json:"gas"`
	Deposit    *big.Int `json:"deposit"`
}

// Type returns ActionCreateAccount
func (a *CreateAccount) Type() ActionType { return ActionCreateAccount }

// Type returns ActionTransfer
func (a *Transfer) Type() ActionType { return ActionTransfer }

// Type returns ActionDeleteAccount
func (a *DeleteAccount) Type() ActionType { return ActionDeleteAccount }

// Type returns ActionAddKey
func (a *AddKey) Type() ActionType { return ActionAddKey }

// Type returns ActionDeleteKey
func (a *DeleteKey) Type() ActionType { return ActionDeleteKey }

// Type returns ActionStake
func (a *Stake) Type() ActionType { return ActionStake }

// Type returns ActionDeploy
func (a *DeployContract) Type() ActionType { return ActionDeploy }

// Type returns ActionFunctionCall
func (a *FunctionCall) Type() ActionType { return ActionFunctionCall }

// Transaction is a signed list of actions sent by SignerID to ReceiverID
type Transaction struct {
	Nonce      uint64
	SignerID   string
	ReceiverID string
	PublicKey  []byte
	Actions    []Action
	BlockHash  []byte
	Signature  []byte
}

type taggedAction struct {
	Type ActionType `json:"type"`
	Body Action     `json:"body"`
}

type transactionJSON struct {
	Nonce      uint64         `json:"nonce"`
	SignerID   string         `json:"signer_id"`
	ReceiverID string         `json:"receiver_id"`
	PublicKey  []byte         `json:"public_key"`
	Actions    []taggedAction `json:"actions"`
	BlockHash  []byte         `json:"block_hash"`
	Signature  []byte         `json:"signature,omitempty"`
}

// MarshalJSON encodes the transaction with every action tagged by its type
func (tx *Transaction) MarshalJSON() ([]byte, error) {
	actions := make([]taggedAction, 0, len(tx.Actions))
	for _, action := range tx.Actions {
		actions = append(actions, taggedAction{
			Type: action.Type(),
			Body: action,
		})
	}

	return json.Marshal(&transactionJSON{
		Nonce:      tx.Nonce,
		SignerID:   tx.SignerID,
		ReceiverID: tx.ReceiverID,
		PublicKey:  tx.PublicKey,
		Actions:    actions,
		BlockHash:  tx.BlockHash,
		Signature:  tx.Signature,
	})
}

func (tx *Transaction) unsigned() *Transaction {
	clone := *tx
	clone.Signature = nil

	return &clone
}
