package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/gabapcia/txledger/internal/txstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// fakeSync records the sync operations the commands trigger.
type fakeSync struct {
	synced   []string
	checked  []int
	startErr error
	syncErr  error
}

func (f *fakeSync) SyncAddress(_ context.Context, address string, _ int) error {
	if f.syncErr != nil {
		return f.syncErr
	}
	f.synced = append(f.synced, address)
	return nil
}

func (f *fakeSync) CheckPending(_ context.Context, chainID int) error {
	f.checked = append(f.checked, chainID)
	return nil
}

func (f *fakeSync) RestoreSnapshots(context.Context, int) error {
	return nil
}

func (f *fakeSync) Start(context.Context) error {
	return f.startErr
}

func (f *fakeSync) Close() {}

func TestStartPipelineCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		cmd := startPipelineCommand(&fakeSync{})

		assert.Equal(t, "start", cmd.Name)
		assert.Len(t, cmd.Flags, 0)
		assert.NotNil(t, cmd.Action)
	})

	t.Run("should return error when service start fails", func(t *testing.T) {
		// Setup
		ts := &fakeSync{startErr: errors.New("service start error")}
		app := &cli.Command{Commands: []*cli.Command{startPipelineCommand(ts)}}

		// Execute
		err := app.Run(t.Context(), []string{"test", "start"})

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "service start error")
	})
}

func TestSyncAddressCommand(t *testing.T) {
	t.Run("should sync the address then check pending", func(t *testing.T) {
		// Setup
		ts := &fakeSync{}
		app := &cli.Command{Commands: []*cli.Command{syncAddressCommand(ts)}}

		// Execute
		err := app.Run(t.Context(), []string{"test", "sync", "--chain-id", "1", "--address", "0xwallet"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"0xwallet"}, ts.synced)
		assert.Equal(t, []int{1}, ts.checked)
	})

	t.Run("should skip the pending check when the sync fails", func(t *testing.T) {
		// Setup
		ts := &fakeSync{syncErr: errors.New("feed unavailable")}
		app := &cli.Command{Commands: []*cli.Command{syncAddressCommand(ts)}}

		// Execute
		err := app.Run(t.Context(), []string{"test", "sync", "--chain-id", "1", "--address", "0xwallet"})

		// Assert
		require.Error(t, err)
		assert.Empty(t, ts.checked)
	})
}

func TestClearTransactionsCommand(t *testing.T) {
	t.Run("should clear the address transactions", func(t *testing.T) {
		// Setup
		store := txstore.New()
		require.NoError(t, store.Add(txstore.TransactionDetails{
			ID:       "0xtx1",
			ChainID:  1,
			From:     "0xwallet",
			TypeInfo: &txstore.SendInfo{CurrencyID: "1-0xtoken", AmountRaw: "1"},
		}))

		app := &cli.Command{Commands: []*cli.Command{clearTransactionsCommand(store)}}

		// Execute
		err := app.Run(t.Context(), []string{"test", "clear", "--chain-id", "1", "--address", "0xwallet"})

		// Assert
		require.NoError(t, err)
		assert.Empty(t, store.AddressTransactions("0xwallet", 1))
	})
}
