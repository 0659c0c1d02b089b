package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Dali-debug/Jinen/internal/auth"
	"github.com/Dali-debug/Jinen/internal/blob"
	"github.com/Dali-debug/Jinen/internal/config"
	"github.com/Dali-debug/Jinen/internal/db"
	"github.com/Dali-debug/Jinen/internal/kafka"
	"github.com/Dali-debug/Jinen/internal/kvstore"
	"github.com/Dali-debug/Jinen/internal/logger"
	"github.com/Dali-debug/Jinen/internal/records"
	"github.com/Dali-debug/Jinen/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	defer func() { _ = log.Sync() }()

	cfg := config.Load()

	database, err := db.NewDb(ctx, cfg)
	if err != nil {
		log.Fatal("Database init error", zap.Error(err))
	}
	defer database.Close()

	store := kvstore.NewPostgresStore(database)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal("Schema init error", zap.Error(err))
	}

	recordStore := records.NewStore(store)
	identity := auth.NewService(store, recordStore, cfg.TokenTTL)
	images := blob.NewDiskStore(cfg.ImageDir, cfg.BaseURL)

	var producer kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewWriterProducer(cfg.KafkaBrokers)
	} else {
		producer = kafka.NewConsoleProducer()
	}

	srv := server.New(recordStore, identity, images, producer, cfg.ImageDir, log)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gctx, cfg.HTTPPort)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server failed", zap.Error(err))
	}

	log.Info("Server gracefully stopped")
}
