package txsync

import (
	"context"
	"errors"

	"github.com/gabapcia/txledger/internal/pkg/logger"
	"github.com/gabapcia/txledger/internal/txstore"
)

// ChainHeight reports the latest block number of a chain.
type ChainHeight interface {
	// LatestBlockNumber returns the current head height for the given chain.
	LatestBlockNumber(ctx context.Context, chainID int) (int64, error)
}

// CheckPending reads the chain head once and records a block check against
// every pending transaction tracked on the chain, advancing each record's
// LastCheckedBlockNumber.
//
// The pending set is captured before the checks run, so a transaction that
// settles concurrently can legitimately reject its check; that race is logged
// and skipped rather than propagated.
func (s *service) CheckPending(ctx context.Context, chainID int) error {
	height, err := s.chainHeight.LatestBlockNumber(ctx, chainID)
	if err != nil {
		return err
	}

	for _, tx := range s.store.Pending(chainID) {
		ref := txstore.Ref{
			Address: tx.From,
			ChainID: tx.ChainID,
			ID:      tx.ID,
		}

		if err := s.store.Checked(ref, height); err != nil {
			if errors.Is(err, txstore.ErrTransactionNotPending) {
				logger.Debug(ctx, "transaction settled between listing and check",
					"chainId", chainID,
					"id", tx.ID,
				)
				continue
			}
			return err
		}
	}

	return nil
}
