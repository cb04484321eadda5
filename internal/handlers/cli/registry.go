package cli

import (
	"context"

	"github.com/gabapcia/txledger/internal/watchlist"

	"github.com/urfave/cli/v3"
)

// startWatchingAddressCommand returns a CLI command that registers a wallet
// address for activity syncing on a specific chain.
//
// Usage example:
//
//	txledger watch --chain-id 1 --address 0xABC123...
func startWatchingAddressCommand(wl watchlist.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Register a wallet address so its transaction activity is synced on a specific chain.",
		Usage:       "Registers an address for syncing. Must provide both chain id and address.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "chain-id",
				Usage:    "Chain id the address lives on (e.g., 1 for mainnet)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to start syncing",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				chainID = int(c.Int("chain-id"))
				address = c.String("address")
			)

			return wl.StartWatching(ctx, chainID, address)
		},
	}
}

// stopWatchingAddressCommand returns a CLI command that unregisters a wallet
// address from activity syncing on a specific chain.
//
// Usage example:
//
//	txledger unwatch --chain-id 1 --address 0xABC123...
func stopWatchingAddressCommand(wl watchlist.Service) *cli.Command {
	return &cli.Command{
		Name:        "unwatch",
		Description: "Unregister a wallet address from activity syncing on a specific chain.",
		Usage:       "Stops syncing an address. Must provide both chain id and address.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "chain-id",
				Usage:    "Chain id the address lives on (e.g., 1 for mainnet)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to stop syncing",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				chainID = int(c.Int("chain-id"))
				address = c.String("address")
			)

			return wl.StopWatching(ctx, chainID, address)
		},
	}
}
