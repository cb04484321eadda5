package txsync

import (
	"context"

	"github.com/gabapcia/txledger/internal/activity"
	"github.com/gabapcia/txledger/internal/pkg/logger"
	"github.com/gabapcia/txledger/internal/txstore"
)

// ActivityFeed supplies raw activity records for one address on one chain.
//
// Implementations wrap the remote activity APIs; GraphQL and REST upstreams
// are normalized to the same activity.RawTransaction shape before they reach
// this interface, so the sync service never distinguishes between them.
type ActivityFeed interface {
	// FetchActivity returns every activity record currently known for the
	// address on the given chain, most recent first. The slice may be empty.
	FetchActivity(ctx context.Context, address string, chainID int) ([]activity.RawTransaction, error)
}

// SyncAddress fetches the activity feed for the address (retried per the
// configured policy) and reconciles each record into the store:
//
//   - An unseen id is inserted with the status the feed reports.
//   - A stored pending record whose feed status turned terminal is finalized
//     with its receipt and fee, and the transition is forwarded to the
//     finality notifier.
//   - A stored record of the same kind gets its type info refreshed, keeping
//     amounts current as the feed's indexing settles.
//
// Records the extractor cannot apply (nil type info) are skipped. After the
// pass the address's records are written to snapshot storage; a snapshot
// failure is logged but does not fail the sync.
func (s *service) SyncAddress(ctx context.Context, address string, chainID int) error {
	var raws []activity.RawTransaction
	err := s.retrier.Execute(ctx, func() error {
		fetched, err := s.feed.FetchActivity(ctx, address, chainID)
		if err != nil {
			return err
		}
		raws = fetched
		return nil
	})
	if err != nil {
		return err
	}

	for _, raw := range raws {
		if err := s.reconcile(ctx, address, chainID, raw); err != nil {
			return err
		}
	}

	if err := s.snapshots.SaveTransactions(ctx, address, chainID, s.store.AddressTransactions(address, chainID)); err != nil {
		logger.Error(ctx, "failed to persist transaction snapshot",
			"address", address,
			"chainId", chainID,
			"error", err,
		)
	}

	return nil
}

// reconcile applies a single raw activity record to the store.
func (s *service) reconcile(ctx context.Context, address string, chainID int, raw activity.RawTransaction) error {
	if raw.Hash == "" {
		return nil
	}

	info := activity.Extract(raw)
	if info == nil {
		return nil
	}

	ref := txstore.Ref{
		Address: address,
		ChainID: chainID,
		ID:      raw.Hash,
	}

	existing, ok := s.store.Transaction(ref)
	if !ok {
		tx := buildTransaction(address, chainID, raw, info)
		if err := s.store.Add(tx); err != nil {
			return err
		}
		if tx.Status.Terminal() {
			s.notifier.NotifyFinalized(ctx, tx)
		}
		return nil
	}

	if existing.Status == txstore.StatusPending {
		if status, final := finalStatus(raw.Status); final {
			if err := s.store.Finalize(ref, status, receiptFromRaw(raw), feeFromRaw(raw)); err != nil {
				return err
			}
			if finalized, ok := s.store.Transaction(ref); ok {
				s.notifier.NotifyFinalized(ctx, finalized)
			}
			return nil
		}
	}

	// Refreshing info of a different kind would violate the store's type
	// immutability invariant; the feed occasionally relabels a record while
	// its indexing settles, so that case is skipped rather than failed.
	if existing.TypeInfo.Type() != info.Type() {
		logger.Warn(ctx, "skipping type info refresh with mismatched kind",
			"address", address,
			"chainId", chainID,
			"id", raw.Hash,
			"stored", existing.TypeInfo.Type(),
			"extracted", info.Type(),
		)
		return nil
	}

	return s.store.UpdateTypeInfo(ref, info)
}

// buildTransaction assembles the store record for an unseen activity entry.
// Feed-sourced records are external by definition; their hash doubles as the
// record id.
func buildTransaction(address string, chainID int, raw activity.RawTransaction, info txstore.TypeInfo) txstore.TransactionDetails {
	tx := txstore.TransactionDetails{
		ID:        raw.Hash,
		ChainID:   chainID,
		From:      address,
		Hash:      raw.Hash,
		AddedTime: raw.Timestamp,
		TypeInfo:  info,
		Routing:   activity.RoutingFor(raw.Label),
		Origin:    txstore.OriginExternal,
		Status:    txstore.StatusPending,
	}

	if status, final := finalStatus(raw.Status); final {
		tx.Status = status
		tx.Receipt = receiptFromRaw(raw)
		tx.NetworkFee = feeFromRaw(raw)
	}

	return tx
}

// finalStatus maps a feed settlement status onto the store's terminal
// statuses, reporting whether the record has settled.
func finalStatus(status activity.RawStatus) (txstore.Status, bool) {
	switch status {
	case activity.RawStatusConfirmed:
		return txstore.StatusSuccess, true
	case activity.RawStatusFailed:
		return txstore.StatusFailed, true
	default:
		return "", false
	}
}

// receiptFromRaw builds the confirmation receipt for a settled record, when
// the feed reported enough block metadata.
func receiptFromRaw(raw activity.RawTransaction) *txstore.TransactionReceipt {
	if raw.BlockNumber == 0 {
		return nil
	}

	return &txstore.TransactionReceipt{
		BlockNumber:   raw.BlockNumber,
		ConfirmedTime: raw.Timestamp,
	}
}

// feeFromRaw converts the feed's fee entry, when present.
func feeFromRaw(raw activity.RawTransaction) *txstore.NetworkFee {
	if raw.Fee == nil {
		return nil
	}

	return &txstore.NetworkFee{
		Quantity:     raw.Fee.Quantity,
		TokenSymbol:  raw.Fee.TokenSymbol,
		TokenAddress: raw.Fee.TokenAddress,
		ChainID:      raw.Fee.ChainID,
	}
}
