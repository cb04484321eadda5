package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/txledger/internal/txstore"
	"github.com/gabapcia/txledger/internal/txsync"
)

// snapshotKeyPrefix namespaces all persisted transaction snapshots.
const snapshotKeyPrefix = "txsnapshot"

// snapshotKey is the hash holding one address's records for one chain, one
// field per transaction id.
//
// Format: "txsnapshot:{address}:{chainId}"
func snapshotKey(address string, chainID int) string {
	return fmt.Sprintf("%s:%s:%d", snapshotKeyPrefix, address, chainID)
}

// SaveTransactions overwrites the persisted record set for the address and
// chain. The delete and rewrite run in one transactional pipeline so readers
// never observe a partially written snapshot.
func (c *client) SaveTransactions(ctx context.Context, address string, chainID int, txs []txstore.TransactionDetails) error {
	key := snapshotKey(address, chainID)

	fields := make(map[string]any, len(txs))
	for _, tx := range txs {
		encoded, err := json.Marshal(tx)
		if err != nil {
			return err
		}
		fields[tx.ID] = encoded
	}

	pipe := c.conn.TxPipeline()
	pipe.Del(ctx, key)
	if len(fields) > 0 {
		pipe.HSet(ctx, key, fields)
	}

	_, err := pipe.Exec(ctx)
	return err
}

// LoadTransactions returns the persisted record set for the address and
// chain, or txsync.ErrNoSnapshotFound when nothing was persisted yet.
func (c *client) LoadTransactions(ctx context.Context, address string, chainID int) ([]txstore.TransactionDetails, error) {
	entries, err := c.conn.HGetAll(ctx, snapshotKey(address, chainID)).Result()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, txsync.ErrNoSnapshotFound
	}

	txs := make([]txstore.TransactionDetails, 0, len(entries))
	for id, encoded := range entries {
		var tx txstore.TransactionDetails
		if err := json.Unmarshal([]byte(encoded), &tx); err != nil {
			return nil, fmt.Errorf("corrupt snapshot entry %s: %w", id, err)
		}
		txs = append(txs, tx)
	}

	return txs, nil
}

// Compile-time assertion that client satisfies the txsync.SnapshotStorage
// interface.
var _ txsync.SnapshotStorage = new(client)
