package main

import (
	"context"
	"log"

	"github.com/gabapcia/txledger/internal/config"
	"github.com/gabapcia/txledger/internal/handlers/cli"
	"github.com/gabapcia/txledger/internal/infra/activityfeed"
	"github.com/gabapcia/txledger/internal/infra/chainclient"
	"github.com/gabapcia/txledger/internal/infra/storage/redis"
	"github.com/gabapcia/txledger/internal/pkg/logger"
	"github.com/gabapcia/txledger/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/txledger/internal/pkg/transport/http"
	"github.com/gabapcia/txledger/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txledger/internal/txstore"
	"github.com/gabapcia/txledger/internal/txsync"
	"github.com/gabapcia/txledger/internal/watchlist"
)

const serviceName = "txledger"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, serviceName)
		if err != nil {
			log.Fatalf("failed to initialize telemetry: %v", err)
		}
		defer shutdown(ctx)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	storage, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to redis", "error", err)
	}
	defer storage.Close()

	httpClient := transporthttp.NewClient()

	conns := make(map[int]jsonrpc.Client, len(cfg.RPCEndpoints))
	for chainID, endpoint := range cfg.RPCEndpoints {
		conns[chainID] = jsonrpc.NewClient(httpClient.StandardClient(), endpoint)
	}

	var (
		store       = txstore.New()
		feed        = activityfeed.NewClient(httpClient, cfg.ActivityFeedURL)
		chainHeight = chainclient.NewClient(conns)
		wl          = watchlist.New(storage)
	)

	ts := txsync.New(store, feed, chainHeight, wl,
		txsync.WithSnapshotStorage(storage),
		txsync.WithSyncInterval(cfg.SyncInterval),
	)

	chains, err := wl.WatchedChains(ctx)
	if err != nil {
		logger.Fatal(ctx, "failed to list watched chains", "error", err)
	}
	for _, chainID := range chains {
		if err := ts.RestoreSnapshots(ctx, chainID); err != nil {
			logger.Fatal(ctx, "failed to restore transaction snapshots",
				"chainId", chainID,
				"error", err,
			)
		}
	}

	if err := cli.Run(ctx, wl, ts, store); err != nil {
		logger.Fatal(ctx, "application terminated with error", "error", err)
	}
}
