// Package watchlist manages the set of wallet addresses whose activity is
// synchronized, scoped per chain.
package watchlist

import "context"

// Service registers and unregisters addresses for activity syncing and
// enumerates the watched set.
//
// Implementations validate input and delegate persistence to the configured
// Storage.
type Service interface {
	// StartWatching registers an address for activity syncing on a chain.
	StartWatching(ctx context.Context, chainID int, address string) error

	// StopWatching unregisters an address from activity syncing on a chain.
	StopWatching(ctx context.Context, chainID int, address string) error

	// WatchedChains returns every chain id with at least one watched address.
	WatchedChains(ctx context.Context) ([]int, error)

	// ListWatched returns the watched addresses for the given chain.
	ListWatched(ctx context.Context, chainID int) ([]string, error)
}

// service is the concrete implementation of the Service interface backed by
// a Storage.
type service struct {
	storage Storage
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a watchlist service using the provided Storage implementation.
func New(storage Storage) *service {
	return &service{
		storage: storage,
	}
}
