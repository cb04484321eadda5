package txstore

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Status enumerates the lifecycle states of a tracked transaction.
//
// A transaction starts Pending and moves through exactly one of the terminal
// paths: Success, Failed, or Cancelling followed by Cancelled. Replacing
// marks a speed-up in flight; the replacement eventually lands as a fresh
// terminal status.
type Status string

const (
	StatusPending    Status = "pending"
	StatusCancelling Status = "cancelling"
	StatusCancelled  Status = "cancelled"
	StatusReplacing  Status = "replacing"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
)

// Terminal reports whether the status ends the transaction's lifecycle.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusFailed || s == StatusCancelled
}

// Routing identifies the execution path a transaction took.
type Routing string

const (
	// RoutingClassic is an ordinary on-chain transaction submitted by the
	// wallet itself.
	RoutingClassic Routing = "classic"

	// RoutingOrder is an off-chain order filled by a third party; amounts are
	// extracted the same way as classic swaps but the settlement path
	// differs.
	RoutingOrder Routing = "order"

	// RoutingBridge is a cross-chain transfer executed through a bridge.
	RoutingBridge Routing = "bridge"
)

// OriginType records where a transaction originated.
type OriginType string

const (
	// OriginInternal marks transactions submitted by this wallet.
	OriginInternal OriginType = "internal"

	// OriginExternal marks transactions observed on chain but submitted
	// elsewhere, including batch transactions tracked under a synthetic id.
	OriginExternal OriginType = "external"
)

// TransactionOptions carries the request parameters a transaction was (or
// will be) submitted with. The store treats it as opaque data: it is merged
// on replacement and surfaced back to callers, never interpreted.
type TransactionOptions struct {
	To           string `json:"to,omitempty"`
	Value        string `json:"value,omitempty"`
	Data         string `json:"data,omitempty"`
	Nonce        uint64 `json:"nonce,omitempty"`
	GasLimit     string `json:"gasLimit,omitempty"`
	MaxFeePerGas string `json:"maxFeePerGas,omitempty"`
}

// TransactionReceipt holds the on-chain confirmation metadata attached when a
// transaction is finalized.
type TransactionReceipt struct {
	BlockNumber      int64  `json:"blockNumber"`
	BlockHash        string `json:"blockHash"`
	TransactionIndex int    `json:"transactionIndex"`
	GasUsed          uint64 `json:"gasUsed,omitempty"`
	ConfirmedTime    int64  `json:"confirmedTime"` // epoch milliseconds
}

// NetworkFee describes the fee paid for a finalized transaction.
type NetworkFee struct {
	Quantity     string `json:"quantity"`
	TokenSymbol  string `json:"tokenSymbol"`
	TokenAddress string `json:"tokenAddress"`
	ChainID      int    `json:"chainId"`
}

// TransactionDetails is the canonical record for one submitted or observed
// transaction.
//
// Identity is the triple (From, ChainID, ID); the id is immutable once the
// record has been added, as is the kind of its TypeInfo. Hash stays empty
// until the transaction has been broadcast, which is how batch transactions
// tracked under a synthetic id are represented before their real hash is
// known.
type TransactionDetails struct {
	ID      string `json:"id" validate:"required"`
	ChainID int    `json:"chainId" validate:"required"`
	From    string `json:"from" validate:"required"`

	Status                 Status `json:"status"`
	AddedTime              int64  `json:"addedTime"` // epoch milliseconds
	Hash                   string `json:"hash,omitempty"`
	LastCheckedBlockNumber int64  `json:"lastCheckedBlockNumber,omitempty"`

	TypeInfo TypeInfo   `json:"-" validate:"required"`
	Routing  Routing    `json:"routing,omitempty"`
	Origin   OriginType `json:"origin,omitempty"`

	Options       *TransactionOptions `json:"options,omitempty"`
	CancelRequest *TransactionOptions `json:"cancelRequest,omitempty"`
	Receipt       *TransactionReceipt `json:"receipt,omitempty"`
	NetworkFee    *NetworkFee         `json:"networkFee,omitempty"`
}

// Clone returns an independent deep copy of the record.
func (tx TransactionDetails) Clone() TransactionDetails {
	c := tx

	if tx.TypeInfo != nil {
		c.TypeInfo = cloneTypeInfo(tx.TypeInfo)
	}
	if tx.Options != nil {
		opts := *tx.Options
		c.Options = &opts
	}
	if tx.CancelRequest != nil {
		req := *tx.CancelRequest
		c.CancelRequest = &req
	}
	if tx.Receipt != nil {
		receipt := *tx.Receipt
		c.Receipt = &receipt
	}
	if tx.NetworkFee != nil {
		fee := *tx.NetworkFee
		c.NetworkFee = &fee
	}

	return c
}

// plainTransactionDetails strips the custom JSON methods so the record's
// ordinary fields can be (de)serialized without recursion.
type plainTransactionDetails TransactionDetails

// transactionDetailsJSON is the persisted wire form of a record: every plain
// field plus the type info in its tagged envelope form.
type transactionDetailsJSON struct {
	plainTransactionDetails
	TypeInfo json.RawMessage `json:"typeInfo,omitempty"`
}

// MarshalJSON encodes the record with its TypeInfo wrapped in the tagged
// envelope.
func (tx TransactionDetails) MarshalJSON() ([]byte, error) {
	var (
		envelope json.RawMessage
		err      error
	)

	if tx.TypeInfo != nil {
		envelope, err = marshalTypeInfo(tx.TypeInfo)
		if err != nil {
			return nil, err
		}
	}

	return json.Marshal(transactionDetailsJSON{
		plainTransactionDetails: plainTransactionDetails(tx),
		TypeInfo:                envelope,
	})
}

// UnmarshalJSON decodes a record produced by MarshalJSON, restoring the
// concrete TypeInfo variant from its envelope.
func (tx *TransactionDetails) UnmarshalJSON(data []byte) error {
	var aux transactionDetailsJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	record := TransactionDetails(aux.plainTransactionDetails)
	if len(aux.TypeInfo) > 0 && string(aux.TypeInfo) != "null" {
		info, err := unmarshalTypeInfo(aux.TypeInfo)
		if err != nil {
			return err
		}
		record.TypeInfo = info
	}

	*tx = record
	return nil
}

// NewBatchID mints a synthetic transaction id for batch transactions whose
// on-chain hash is not yet known. Time-ordered UUIDs keep synthetic ids
// sortable by creation time.
func NewBatchID() string {
	return uuid.Must(uuid.NewV7()).String()
}
