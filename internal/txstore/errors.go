package txstore

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying every invariant violation the store can raise.
// Each OpError produced by a store operation wraps exactly one of these, so
// callers can branch with errors.Is while tests can still assert on the full
// rendered message.
var (
	// ErrTransactionExists indicates an Add for an id that is already tracked
	// under the same address and chain.
	ErrTransactionExists = errors.New("transaction already exists")

	// ErrTransactionMissing indicates an operation addressed a transaction
	// that is not present in the state tree.
	ErrTransactionMissing = errors.New("transaction does not exist")

	// ErrTransactionNotPending indicates a block-check against a transaction
	// that has already left the Pending status.
	ErrTransactionNotPending = errors.New("transaction is not pending")

	// ErrTypeInfoMismatch indicates an attempt to swap a transaction's type
	// info for one of a different kind.
	ErrTypeInfoMismatch = errors.New("transaction type info mismatch")

	// ErrNotBridge indicates a bridge-only operation invoked against a
	// transaction of another kind.
	ErrNotBridge = errors.New("transaction is not a bridge")
)

// OpError describes a store invariant violation. It carries the operation
// name, the transaction id involved, and the violation kind as a wrapped
// sentinel error.
//
// The rendered message follows a fixed, greppable template:
//
//	"{operation}: Attempted to {action} with id {id}"
//
// These errors signal programming mistakes in calling code, not user-facing
// failures: in normal operation the caller has already verified existence
// before dispatching. The store never swallows them.
type OpError struct {
	Op     string // operation name, e.g. "AddTransaction"
	ID     string // transaction id the operation addressed
	Kind   error  // one of the sentinel errors above
	action string // human-readable description of the rejected action
}

// Error renders the fixed message template.
func (e *OpError) Error() string {
	return fmt.Sprintf("%s: Attempted to %s with id %s", e.Op, e.action, e.ID)
}

// Unwrap exposes the violation kind so errors.Is can match the sentinel.
func (e *OpError) Unwrap() error {
	return e.Kind
}

// newOpError builds an OpError for the given operation, action description,
// violation kind, and transaction id.
func newOpError(op, action string, kind error, id string) *OpError {
	return &OpError{
		Op:     op,
		ID:     id,
		Kind:   kind,
		action: action,
	}
}
