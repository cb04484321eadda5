// Package txsync keeps the local transaction store aligned with remote
// activity: it pulls raw activity records for watched addresses, extracts
// their normalized type infos, reconciles them into the store, and checks
// pending transactions against the chain head.
package txsync

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/txledger/internal/pkg/resilience/retry"
	"github.com/gabapcia/txledger/internal/txstore"
)

const defaultSyncInterval = 30 * time.Second

// ErrServiceAlreadyStarted is returned by Start when the sync pipeline is
// already running.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Service drives the activity synchronization pipeline.
type Service interface {
	// SyncAddress fetches the activity feed for one address on one chain and
	// reconciles every record into the store.
	SyncAddress(ctx context.Context, address string, chainID int) error

	// CheckPending reads the chain head once and records a block check
	// against every pending transaction on the chain.
	CheckPending(ctx context.Context, chainID int) error

	// RestoreSnapshots rebuilds the store from persisted snapshots for every
	// watched address on the given chain.
	RestoreSnapshots(ctx context.Context, chainID int) error

	// Start launches the periodic sync pipeline over all watched addresses.
	// It returns immediately; processing continues until Close is called or
	// the context is canceled.
	Start(ctx context.Context) error

	// Close stops the pipeline and waits for in-flight work to finish.
	Close()
}

type service struct {
	store *txstore.Store

	feed        ActivityFeed
	chainHeight ChainHeight
	addresses   AddressSource

	notifier  FinalityNotifier
	snapshots SnapshotStorage
	retrier   retry.Retry

	syncInterval time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ Service = (*service)(nil)

type config struct {
	notifier     FinalityNotifier
	snapshots    SnapshotStorage
	retrier      retry.Retry
	syncInterval time.Duration
}

// Option customizes the sync service.
type Option func(*config)

// WithFinalityNotifier routes Success/Failed transitions to the given
// notifier.
func WithFinalityNotifier(n FinalityNotifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}

// WithSnapshotStorage persists each address's records after every sync pass.
func WithSnapshotStorage(s SnapshotStorage) Option {
	return func(c *config) {
		c.snapshots = s
	}
}

// WithRetry overrides the retry policy applied to feed fetches.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retrier = r
	}
}

// WithSyncInterval sets the period of the background sync pipeline.
func WithSyncInterval(d time.Duration) Option {
	return func(c *config) {
		c.syncInterval = d
	}
}

// New assembles the sync service around the given store, activity feed, chain
// head source, and watched-address source.
func New(store *txstore.Store, feed ActivityFeed, ch ChainHeight, as AddressSource, opts ...Option) *service {
	cfg := config{
		notifier:     nopFinalityNotifier{},
		snapshots:    nopSnapshotStorage{},
		retrier:      retry.New(),
		syncInterval: defaultSyncInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		store:        store,
		feed:         feed,
		chainHeight:  ch,
		addresses:    as,
		notifier:     cfg.notifier,
		snapshots:    cfg.snapshots,
		retrier:      cfg.retrier,
		syncInterval: cfg.syncInterval,
	}
}
