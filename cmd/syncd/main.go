package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/mirrorlake/docsync/internal/adapter"
	"github.com/mirrorlake/docsync/internal/checkpoint"
	"github.com/mirrorlake/docsync/internal/config"
	"github.com/mirrorlake/docsync/internal/logger"
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

	log := logger.NewDaemonLogger("syncd")
	cfg, err := config.GetDaemonConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening document store")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating document store")
	}

	documents := store.NewDocumentStore(db)
	codec := store.NewJSONCodec(cfg.Sync.PrimaryKey)

	endpoint, err := models.NewRemoteEndpoint(cfg.Endpoint.URL, cfg.Endpoint.Collection, cfg.Endpoint.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid remote endpoint")
	}

	endpointAdapter, err := adapter.NewHTTPEndpointAdapter(endpoint, cfg.Endpoint.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating endpoint adapter")
	}

	batchSize := cfg.Sync.BatchSize
	if batchSize <= 0 {
		batchSize = checkpoint.DefaultBatchSize
	}

	pushManager := checkpoint.NewPushManager(cfg.App.Namespace, documents, codec, documents, log,
		checkpoint.WithBatchSize(batchSize),
		checkpoint.WithSyncRevisions(cfg.Sync.SyncRevisions),
		checkpoint.WithLastPulledRevField(cfg.Sync.LastPulledRevField),
	)
	pullManager := checkpoint.NewPullManager(cfg.App.Namespace, documents, log)

	replication := service.NewReplicator(pushManager, pullManager, documents, endpointAdapter, batchSize, log)
	syncJob := service.NewReplicationJob(replication, endpoint, cfg.Sync.Interval, log)

	background := workers.NewWorkers(syncJob)
	background.Run()
	log.Info().Str("endpoint_hash", endpoint.Hash()).Msg("replication started")

	if cfg.App.StatusAddress != "" {
		go runStatusListener(cfg.App.StatusAddress, log)
	}

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()
	<-signalCtx.Done()

	background.Stop()
	if err = db.Close(); err != nil {
		log.Err(err).Msg("error closing document store")
	}
	log.Info().Msg("syncd stopped gracefully")
}

// runStatusListener serves the daemon build version for basic liveness
// checks. Errors here must not take the replication loop down.
func runStatusListener(address string, log *logger.Logger) {
	router := chi.NewRouter()
	router.Get("/api/status", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(buildVersion))
	})

	if err := http.ListenAndServe(address, router); err != nil {
		log.Err(err).Str("address", address).Msg("status listener stopped")
	}
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
