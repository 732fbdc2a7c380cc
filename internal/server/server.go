// Package server owns the process lifecycle: boot, listen, drain, shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/webnexa/api/config"
	"github.com/webnexa/api/internal/kernel"
	"github.com/webnexa/api/internal/store"
	"github.com/webnexa/api/pkg/cache"
	"github.com/webnexa/api/pkg/logger"
	"github.com/webnexa/api/pkg/notify"
	"github.com/webnexa/api/pkg/storage"
)

// Start boots every subsystem, serves HTTP until SIGINT/SIGTERM, then
// drains in-flight requests before returning.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bootCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	st, err := store.Connect(bootCtx)
	if err != nil {
		return fmt.Errorf("server: connect store: %w", err)
	}

	cache.Connect()
	storage.Connect()

	// In production, fan request logs out to a capped Mongo collection
	// alongside stdout.
	var mongoLogs *logger.MongoHandler
	if mongo, ok := st.(*store.Mongo); ok && config.AppEnv() == "production" {
		mongoLogs = logger.NewMongoHandler(mongo.Collection("logs"))
		logger.L = slog.New(logger.NewMultiHandler(logger.L.Handler(), mongoLogs))
	}

	if config.RegistrationMode() == "open" {
		logger.Warn("admin registration is open to anyone; set REGISTRATION_MODE=bootstrap once the admin account exists")
	}

	r, err := kernel.BuildRouter(st, notify.FromConfig())
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown did not drain cleanly", "error", err)
	}

	if mongoLogs != nil {
		mongoLogs.Close()
	}
	if err := st.Close(shutdownCtx); err != nil {
		logger.Error("store close failed", "error", err)
	}

	return nil
}
