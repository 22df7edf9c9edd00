package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tikinang/app-update/appupdate"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	stores, err := appupdate.LoadStoreTable(cfg.StoresFile)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	regs, err := buildRegistrations(stores, appupdate.NewFetcher(cfg.HTTPTimeout))
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	watcher := appupdate.New(newStateStore(cfg), appupdate.NewWebhookNotifier(cfg.WebhookURL, cfg.HTTPTimeout), appupdate.CommitNote{Path: cfg.CommitFile})
	for _, reg := range regs {
		slog.Debug("Registered store", "store", reg.Store.Kind.Label(), "source", reg.Source.Description())
		watcher.Register(reg)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := watcher.Run(ctx); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
	slog.Info("Done")
}

func newStateStore(cfg *Config) appupdate.StateStore {
	if cfg.S3Bucket == "" {
		return appupdate.FileState{Path: cfg.StateFile}
	}
	client := appupdate.NewS3Client(appupdate.S3Config{
		Endpoint:  cfg.S3Endpoint,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Region:    cfg.S3Region,
	})
	return appupdate.S3State{Client: client, Key: cfg.S3StateKey}
}
