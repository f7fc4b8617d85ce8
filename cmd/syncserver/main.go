package main

import (
	"context"
	"fmt"

	"github.com/mirrorlake/docsync/internal/adapter"
	"github.com/mirrorlake/docsync/internal/checkpoint"
	"github.com/mirrorlake/docsync/internal/config"
	"github.com/mirrorlake/docsync/internal/handler"
	"github.com/mirrorlake/docsync/internal/logger"
	"github.com/mirrorlake/docsync/internal/server"
	"github.com/mirrorlake/docsync/internal/service"
	"github.com/mirrorlake/docsync/internal/store"
	"github.com/mirrorlake/docsync/internal/workers"
	"github.com/mirrorlake/docsync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("syncserver")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages.Documents, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	// When an upstream endpoint is configured this server also replicates
	// against it, acting as a relay between its replicas and the upstream.
	if cfg.Endpoint.URL != "" {
		background, err := startUpstreamReplication(cfg, storages, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error starting upstream replication")
		}
		defer background.Stop()
	}

	srv.RunServer()
}

func startUpstreamReplication(cfg *config.StructuredConfig, storages *store.Storages, log *logger.Logger) (*workers.Workers, error) {
	endpoint, err := models.NewRemoteEndpoint(cfg.Endpoint.URL, cfg.Endpoint.Collection, cfg.Endpoint.Token)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream endpoint: %w", err)
	}

	endpointAdapter, err := adapter.NewHTTPEndpointAdapter(endpoint, cfg.Endpoint.RequestTimeout, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create endpoint adapter: %w", err)
	}

	batchSize := cfg.Sync.BatchSize
	if batchSize <= 0 {
		batchSize = checkpoint.DefaultBatchSize
	}

	codec := store.NewJSONCodec(cfg.Sync.PrimaryKey)
	pushManager := checkpoint.NewPushManager(cfg.App.Namespace, storages.Checkpoints, codec, storages.Documents, log,
		checkpoint.WithBatchSize(batchSize),
		checkpoint.WithSyncRevisions(cfg.Sync.SyncRevisions),
		checkpoint.WithLastPulledRevField(cfg.Sync.LastPulledRevField),
	)
	pullManager := checkpoint.NewPullManager(cfg.App.Namespace, storages.Meta, log)

	replication := service.NewReplicator(pushManager, pullManager, storages.Documents, endpointAdapter, batchSize, log)
	syncJob := service.NewReplicationJob(replication, endpoint, cfg.Sync.Interval, log)

	background := workers.NewWorkers(syncJob)
	background.Run()
	log.Info().Str("endpoint_hash", endpoint.Hash()).Msg("upstream replication started")

	return background, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
