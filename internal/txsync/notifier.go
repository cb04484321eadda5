package txsync

import (
	"context"

	"github.com/gabapcia/txledger/internal/txstore"
)

// FinalityNotifier is told whenever a tracked transaction reaches a terminal
// Success or Failed status, for downstream processing such as user alerts or
// balance refreshes.
type FinalityNotifier interface {
	// NotifyFinalized receives a copy of the finalized record. Delivery is
	// best effort; the sync pass does not depend on its outcome.
	NotifyFinalized(ctx context.Context, tx txstore.TransactionDetails)
}

// nopFinalityNotifier discards finality notifications. It is the default
// when no notifier is configured.
type nopFinalityNotifier struct{}

var _ FinalityNotifier = (*nopFinalityNotifier)(nil)

func (nopFinalityNotifier) NotifyFinalized(context.Context, txstore.TransactionDetails) {}
