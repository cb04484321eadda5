package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/txledger/internal/txstore"
	"github.com/gabapcia/txledger/internal/txsync"

	"github.com/urfave/cli/v3"
)

// startPipelineCommand returns a CLI command that starts the background
// activity sync pipeline: periodic feed fetches for every watched address
// plus pending-transaction checks per chain.
//
// Usage example:
//
//	txledger start
//
// The process runs indefinitely until it receives an interrupt (SIGINT or
// SIGTERM).
func startPipelineCommand(ts txsync.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the activity sync pipeline for all watched addresses.",
		Usage:       "Initializes and runs the sync loop. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			if err := ts.Start(ctx); err != nil {
				return err
			}
			defer ts.Close()

			<-quit
			return nil
		},
	}
}

// syncAddressCommand returns a CLI command that performs a one-shot activity
// sync for a single address on a single chain.
//
// Usage example:
//
//	txledger sync --chain-id 1 --address 0xABC123...
func syncAddressCommand(ts txsync.Service) *cli.Command {
	return &cli.Command{
		Name:        "sync",
		Description: "Fetches the activity feed once for an address and reconciles it into the store.",
		Usage:       "Runs a single sync pass. Must provide both chain id and address.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "chain-id",
				Usage:    "Chain id to sync (e.g., 1 for mainnet)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to sync",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				chainID = int(c.Int("chain-id"))
				address = c.String("address")
			)

			if err := ts.SyncAddress(ctx, address, chainID); err != nil {
				return err
			}

			return ts.CheckPending(ctx, chainID)
		},
	}
}

// clearTransactionsCommand returns a CLI command that removes every tracked
// transaction for an address on a chain.
//
// Usage example:
//
//	txledger clear --chain-id 1 --address 0xABC123...
func clearTransactionsCommand(store *txstore.Store) *cli.Command {
	return &cli.Command{
		Name:        "clear",
		Description: "Drops all tracked transactions for an address on a specific chain.",
		Usage:       "Clears local transaction state. Must provide both chain id and address.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "chain-id",
				Usage:    "Chain id to clear (e.g., 1 for mainnet)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address whose transactions are dropped",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				chainID = int(c.Int("chain-id"))
				address = c.String("address")
			)

			store.ClearAll(address, chainID)
			return nil
		},
	}
}
