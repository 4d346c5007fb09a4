// Command arc-api serves the review ingest and scoring API
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"arc/internal/adapters/journal"
	"arc/internal/platform/config"
	"arc/internal/platform/logger"
	phttp "arc/internal/platform/net/http"
	"arc/internal/platform/store"

	"arc/internal/services/api"
)

func main() {
	logger.Init(logger.FromEnv())
	l := logger.Get()

	cfg := config.New().Prefix("ARC_")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// backing stores are optional, the journal alone is enough to run
	var st *store.Store
	stCfg := store.FromConf(cfg)
	if stCfg.PG.Enabled || stCfg.CH.Enabled {
		var err error
		st, err = store.Open(ctx, stCfg, store.WithLogger(*l))
		if err != nil {
			l.Panic().Err(err).Msg("store.Open failed")
		}
		defer func() {
			if err := st.Close(context.Background()); err != nil {
				l.Error().Err(err).Msg("failed to close store")
			}
		}()
		if err := st.Guard(ctx); err != nil {
			l.Panic().Err(err).Msg("store readiness check failed")
		}
	}

	jr, err := journal.FromConf(cfg)
	if err != nil {
		l.Panic().Err(err).Msg("journal open failed")
	}
	defer func() {
		if err := jr.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close journal")
		}
	}()
	l.Info().Str("path", jr.Path()).Msg("journal ready")

	// http server (reads ARC_API_PORT)
	srv := phttp.NewServer(cfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:        cfg,
			Store:         st,
			Logger:        l,
			Journal:       jr,
			EnableSwagger: cfg.MayBool("SWAGGER", true),
		},
	)

	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	select {
	case err := <-errc:
		if err != nil {
			l.Panic().Err(err).Msg("http server stopped")
		}
	case <-ctx.Done():
		l.Info().Msg("shutting down")
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			l.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}
