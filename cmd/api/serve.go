package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	rediscache "petclinic/internal/adapters/cache/redis"
	"petclinic/internal/platform/config"
	"petclinic/internal/platform/logger"
	"petclinic/internal/router"

	"github.com/spf13/cobra"
)

var configPath string

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Error("storage init failed", map[string]any{"driver": cfg.Storage.Driver, "error": err})
		return err
	}
	defer st.Close()

	// migraciones al arrancar (idempotente)
	if err := st.Migrate(ctx); err != nil {
		log.Error("migrations failed", map[string]any{"driver": cfg.Storage.Driver, "error": err})
		return err
	}

	opts := st.RouterOptions()
	opts.Logger = log

	if cfg.Redis.Enabled() {
		client, err := rediscache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			// sin cache se sirve igual desde la base
			log.Warn("redis unavailable, vets cache disabled", map[string]any{"addr": cfg.Redis.Addr, "error": err})
		} else {
			defer client.Close()
			opts.VetCache = rediscache.NewVetCache(client, cfg.Redis.TTL)
			log.Info("vets cache enabled", map[string]any{"addr": cfg.Redis.Addr, "ttl": cfg.Redis.TTL.String()})
		}
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "storage": cfg.Storage.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func bootstrap() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logger.Level),
		Format: logger.ParseFormat(cfg.Logger.Format),
		App:    cfg.App.Name,
	})
	// log estándar (goose, net/http) sale por el mismo handler
	if sl, ok := log.(*logger.SlogLogger); ok {
		slog.SetDefault(sl.Slog())
	}
	return cfg, log, nil
}
