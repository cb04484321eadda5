package watchlist

import (
	"context"
	"errors"

	"github.com/gabapcia/txledger/internal/pkg/validator"
)

// ErrAddressAlreadyWatched may be returned by Storage implementations that
// distinguish re-registration from a fresh registration.
var ErrAddressAlreadyWatched = errors.New("address already watched")

// AddressIdentifier uniquely identifies a watched address by chain and
// wallet address. Both fields are required and validated before persistence.
type AddressIdentifier struct {
	ChainID int    `validate:"required"` // chain the address is watched on
	Address string `validate:"required"` // wallet address to sync
}

// Storage is the persistence contract for the watched-address set.
type Storage interface {
	// RegisterAddress adds the identifier to the watched set. Safe to call
	// repeatedly with the same identifier.
	RegisterAddress(ctx context.Context, id AddressIdentifier) error

	// UnregisterAddress removes the identifier from the watched set.
	UnregisterAddress(ctx context.Context, id AddressIdentifier) error

	// ListAddresses returns every watched address for the chain.
	ListAddresses(ctx context.Context, chainID int) ([]string, error)

	// ListChains returns every chain id with at least one watched address.
	ListChains(ctx context.Context) ([]int, error)
}

// buildAddressIdentifier constructs and validates an AddressIdentifier.
func buildAddressIdentifier(chainID int, address string) (AddressIdentifier, error) {
	id := AddressIdentifier{
		ChainID: chainID,
		Address: address,
	}

	return id, validator.Validate(id)
}

// StartWatching registers an address for syncing after validating it.
func (s *service) StartWatching(ctx context.Context, chainID int, address string) error {
	id, err := buildAddressIdentifier(chainID, address)
	if err != nil {
		return err
	}

	return s.storage.RegisterAddress(ctx, id)
}

// StopWatching unregisters an address after validating it.
func (s *service) StopWatching(ctx context.Context, chainID int, address string) error {
	id, err := buildAddressIdentifier(chainID, address)
	if err != nil {
		return err
	}

	return s.storage.UnregisterAddress(ctx, id)
}

// WatchedChains lists the chains carrying at least one watched address.
func (s *service) WatchedChains(ctx context.Context) ([]int, error) {
	return s.storage.ListChains(ctx)
}

// ListWatched lists the watched addresses for a chain.
func (s *service) ListWatched(ctx context.Context, chainID int) ([]string, error) {
	return s.storage.ListAddresses(ctx, chainID)
}
