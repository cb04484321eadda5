package txsync

import (
	"context"
	"time"

	"github.com/gabapcia/txledger/internal/pkg/logger"
	"github.com/gabapcia/txledger/internal/pkg/x/chflow"
)

// AddressSource lists the wallet addresses that have opted into syncing, per
// chain, and the chains carrying at least one watched address.
type AddressSource interface {
	// WatchedChains returns every chain id with at least one watched address.
	WatchedChains(ctx context.Context) ([]int, error)

	// ListWatched returns the watched addresses for the given chain.
	ListWatched(ctx context.Context, chainID int) ([]string, error)
}

// syncJob is one unit of pipeline work: sync a single address on a single
// chain.
type syncJob struct {
	address string
	chainID int
}

// Start launches the background sync pipeline: on every tick it enumerates
// the watched addresses and pushes one job per address through the sync
// stage, then checks pending transactions per chain.
//
// Start returns immediately. The pipeline stops when Close is called or the
// given context is canceled. Calling Start on a running service returns
// ErrServiceAlreadyStarted.
func (s *service) Start(ctx context.Context) error {
	if s.cancel != nil {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	jobs := make(chan syncJob)

	s.wg.Add(2)
	go s.produceJobs(ctx, jobs)
	go s.runJobs(ctx, jobs)

	return nil
}

// Close stops the pipeline and waits for the in-flight sync pass to finish.
// Closing a service that was never started is a no-op.
func (s *service) Close() {
	if s.cancel == nil {
		return
	}

	s.cancel()
	s.wg.Wait()
	s.cancel = nil
}

// produceJobs emits one syncJob per watched address on every tick, then a
// pending check per chain. The jobs channel is closed when the context ends.
func (s *service) produceJobs(ctx context.Context, jobs chan<- syncJob) {
	defer s.wg.Done()
	defer close(jobs)

	ticker := time.NewTicker(s.syncInterval)
	defer ticker.Stop()

	for {
		chains, err := s.addresses.WatchedChains(ctx)
		if err != nil {
			logger.Error(ctx, "failed to list watched chains", "error", err)
		}

		for _, chainID := range chains {
			addresses, err := s.addresses.ListWatched(ctx, chainID)
			if err != nil {
				logger.Error(ctx, "failed to list watched addresses",
					"chainId", chainID,
					"error", err,
				)
				continue
			}

			for _, address := range addresses {
				job := syncJob{address: address, chainID: chainID}
				if ok := chflow.Send(ctx, jobs, job); !ok {
					return
				}
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// runJobs consumes sync jobs until the channel closes, syncing each address
// and then checking the chain's pending transactions.
func (s *service) runJobs(ctx context.Context, jobs <-chan syncJob) {
	defer s.wg.Done()

	for {
		job, ok := chflow.Receive(ctx, jobs)
		if !ok {
			return
		}

		if err := s.SyncAddress(ctx, job.address, job.chainID); err != nil {
			logger.Error(ctx, "failed to sync address activity",
				"address", job.address,
				"chainId", job.chainID,
				"error", err,
			)
			continue
		}

		if err := s.CheckPending(ctx, job.chainID); err != nil {
			logger.Error(ctx, "failed to check pending transactions",
				"chainId", job.chainID,
				"error", err,
			)
		}
	}
}
