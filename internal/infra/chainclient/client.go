// Package chainclient implements the txsync.ChainHeight interface against
// Ethereum-compatible JSON-RPC nodes, one endpoint per chain.
package chainclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/txledger/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txledger/internal/pkg/types"
	"github.com/gabapcia/txledger/internal/txsync"
)

// ErrUnsupportedChain indicates no JSON-RPC endpoint is configured for the
// requested chain.
var ErrUnsupportedChain = fmt.Errorf("no rpc endpoint configured for chain")

// client resolves chain head heights through per-chain JSON-RPC connections.
type client struct {
	conns map[int]jsonrpc.Client
}

// Ensure compile-time compliance with the txsync.ChainHeight interface.
var _ txsync.ChainHeight = (*client)(nil)

// NewClient creates a chain client over the given per-chain JSON-RPC
// connections.
func NewClient(conns map[int]jsonrpc.Client) *client {
	return &client{
		conns: conns,
	}
}

// LatestBlockNumber fetches eth_blockNumber from the chain's endpoint and
// decodes the hex-encoded height.
func (c *client) LatestBlockNumber(ctx context.Context, chainID int) (int64, error) {
	conn, ok := c.conns[chainID]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
	}

	result, err := conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	var raw string
	if err := json.Unmarshal(result, &raw); err != nil {
		return 0, err
	}

	height, err := types.HexFromString(raw)
	if err != nil {
		return 0, err
	}

	return height.Int(), nil
}
