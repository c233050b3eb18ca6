package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordrank/config"
	"github.com/domino14/wordrank/internal/rankserver"
	"github.com/domino14/wordrank/internal/rankstore"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("loading-config")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if strings.ToLower(cfg.LogLevel) == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Info().Str("listen-addr", cfg.ListenAddr).Str("db-path", cfg.DBPath).
		Bool("auth", cfg.SecretKey != "").Msg("rankserver-starting")

	rankServer := &rankserver.Server{FoldCase: cfg.FoldCase}
	if cfg.DBPath != "" {
		store, err := rankstore.Open(context.Background(), cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Msg("opening-rank-store")
		}
		defer store.Close()
		rankServer.Store = store
	}

	var opts []connect.HandlerOption
	if cfg.SecretKey != "" {
		opts = append(opts, connect.WithInterceptors(NewAuthInterceptor([]byte(cfg.SecretKey))))
	}

	mux := http.NewServeMux()
	mux.Handle(rankserver.NewRankServiceHandler(rankServer, opts...))
	mux.Handle("/txt", rankserver.NewTextHandler(rankServer))

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: rankserver.WithMiddleware(log.Logger, mux),
	}
	idleConnsClosed := make(chan struct{})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		// We received an interrupt signal, shut down.
		log.Info().Msg("got quit signal...")
		ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)

		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Error().Msgf("HTTP server Shutdown: %v", err)
		}
		cancel()
		close(idleConnsClosed)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("")
	}
	<-idleConnsClosed
	log.Info().Msg("server gracefully shutting down")
}
