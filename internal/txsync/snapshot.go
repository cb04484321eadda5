package txsync

import (
	"context"
	"errors"

	"github.com/gabapcia/txledger/internal/txstore"
)

// ErrNoSnapshotFound is returned by LoadTransactions when no snapshot has
// been persisted yet for the requested address and chain.
var ErrNoSnapshotFound = errors.New("no snapshot found for address")

// SnapshotStorage persists and restores per-address transaction records, so
// the store survives restarts.
type SnapshotStorage interface {
	// SaveTransactions overwrites the persisted record set for the address
	// and chain with the given records.
	SaveTransactions(ctx context.Context, address string, chainID int, txs []txstore.TransactionDetails) error

	// LoadTransactions returns the persisted record set for the address and
	// chain, or ErrNoSnapshotFound when none exists.
	LoadTransactions(ctx context.Context, address string, chainID int) ([]txstore.TransactionDetails, error)
}

// nopSnapshotStorage persists nothing. It is the default when no snapshot
// storage is configured, for tests and throwaway runs.
type nopSnapshotStorage struct{}

var _ SnapshotStorage = (*nopSnapshotStorage)(nil)

func (nopSnapshotStorage) SaveTransactions(context.Context, string, int, []txstore.TransactionDetails) error {
	return nil
}

func (nopSnapshotStorage) LoadTransactions(context.Context, string, int) ([]txstore.TransactionDetails, error) {
	return nil, ErrNoSnapshotFound
}

// RestoreSnapshots loads the persisted records for every watched address on
// the given chain into the store. Missing snapshots are skipped; any other
// storage failure aborts the restore.
func (s *service) RestoreSnapshots(ctx context.Context, chainID int) error {
	addresses, err := s.addresses.ListWatched(ctx, chainID)
	if err != nil {
		return err
	}

	for _, address := range addresses {
		txs, err := s.snapshots.LoadTransactions(ctx, address, chainID)
		if err != nil {
			if errors.Is(err, ErrNoSnapshotFound) {
				continue
			}
			return err
		}

		s.store.Restore(txs)
	}

	return nil
}
