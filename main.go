package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"net/http"
	"os"
	"os/signal"
	"projecthub/api"
	"projecthub/api/errs"
	"projecthub/config"
	"projecthub/models"
	"syscall"
	"time"
)

func setupLogging(cfg *config.Config) {
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.IsProduction() {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		gin.SetMode(gin.ReleaseMode)
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	gin.DefaultWriter = zerolog.ConsoleWriter{Out: os.Stdout}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("app failed to start")
	}
}

// run serves until ctx is done or the listener fails. Deferred cleanup
// always runs before it returns.
func run(ctx context.Context, cfg *config.Config) error {
	deps := api.Deps{Verbose: !cfg.IsProduction(), TrustedProxies: cfg.TrustedProxies}
	db, err := models.Open(cfg.DatabaseURL)
	if err != nil {
		deps.DBErr = err
		log.Warn().
			Err(err).
			Strs("steps", errs.SetupSteps).
			Msg("database setup required, data routes will answer 503 until the server is restarted with a working DATABASE_URL")
	} else {
		deps.DB = db
		defer models.Close(db)
	}

	if cfg.RateLimitMax > 0 {
		deps.RateLimiter = api.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
		go deps.RateLimiter.Run(ctx)
	}

	router := api.NewRouter(deps)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.WithCORS(router, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
