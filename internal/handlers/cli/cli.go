package cli

import (
	"context"
	"os"

	"github.com/gabapcia/txledger/internal/txstore"
	"github.com/gabapcia/txledger/internal/txsync"
	"github.com/gabapcia/txledger/internal/watchlist"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the txledger CLI application.
//
// It registers all available commands:
//
//   - `start`: Runs the background activity sync pipeline.
//   - `sync`: Performs a one-shot activity sync for a single address.
//   - `watch`: Registers an address for activity syncing.
//   - `unwatch`: Unregisters an address from activity syncing.
//   - `clear`: Drops every tracked transaction for an address on a chain.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - wl: The watchlist service used by the watch/unwatch commands.
//   - ts: The txsync service used by the start/sync commands.
//   - store: The transaction store used by the clear command.
func Run(ctx context.Context, wl watchlist.Service, ts txsync.Service, store *txstore.Store) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txledger",
		Description:           "Command-line interface for managing and running the txledger activity sync.",
		Usage:                 "txledger [command] [flags]",
		Commands: []*cli.Command{
			startPipelineCommand(ts),
			syncAddressCommand(ts),
			startWatchingAddressCommand(wl),
			stopWatchingAddressCommand(wl),
			clearTransactionsCommand(store),
		},
	}

	return app.Run(ctx, os.Args)
}
