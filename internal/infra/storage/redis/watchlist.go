package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gabapcia/txledger/internal/watchlist"
)

// watchlistKeyPrefix namespaces all keys of the watched-address registry.
const watchlistKeyPrefix = "watchlist"

// watchlistChainsKey is the set of chain ids carrying at least one watched
// address.
func watchlistChainsKey() string {
	return fmt.Sprintf("%s:chains", watchlistKeyPrefix)
}

// watchlistAddressesKey is the set of watched addresses for one chain.
//
// Format: "watchlist:addresses:{chainId}"
func watchlistAddressesKey(chainID int) string {
	return fmt.Sprintf("%s:addresses:%d", watchlistKeyPrefix, chainID)
}

// RegisterAddress adds the address to the chain's watched set and records the
// chain in the chain index. Registering the same address twice is a no-op.
func (c *client) RegisterAddress(ctx context.Context, id watchlist.AddressIdentifier) error {
	pipe := c.conn.TxPipeline()
	pipe.SAdd(ctx, watchlistAddressesKey(id.ChainID), id.Address)
	pipe.SAdd(ctx, watchlistChainsKey(), id.ChainID)

	_, err := pipe.Exec(ctx)
	return err
}

// UnregisterAddress removes the address from the chain's watched set. When
// the set empties, the chain is dropped from the chain index as well.
func (c *client) UnregisterAddress(ctx context.Context, id watchlist.AddressIdentifier) error {
	key := watchlistAddressesKey(id.ChainID)

	if err := c.conn.SRem(ctx, key, id.Address).Err(); err != nil {
		return err
	}

	remaining, err := c.conn.SCard(ctx, key).Result()
	if err != nil {
		return err
	}
	if remaining == 0 {
		return c.conn.SRem(ctx, watchlistChainsKey(), id.ChainID).Err()
	}

	return nil
}

// ListAddresses returns every watched address for the chain.
func (c *client) ListAddresses(ctx context.Context, chainID int) ([]string, error) {
	return c.conn.SMembers(ctx, watchlistAddressesKey(chainID)).Result()
}

// ListChains returns every chain id present in the chain index.
func (c *client) ListChains(ctx context.Context) ([]int, error) {
	members, err := c.conn.SMembers(ctx, watchlistChainsKey()).Result()
	if err != nil {
		return nil, err
	}

	chains := make([]int, 0, len(members))
	for _, member := range members {
		chainID, err := strconv.Atoi(member)
		if err != nil {
			return nil, fmt.Errorf("corrupt chain index entry %q: %w", member, err)
		}
		chains = append(chains, chainID)
	}

	return chains, nil
}

// Compile-time assertion that client satisfies the watchlist.Storage
// interface.
var _ watchlist.Storage = new(client)
