// Local HTTP service for the cipher, envelope and pairing endpoints.
// Usage: go run ./cmd/pairingd
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/pairing-cipher/internal/api"
	"github.com/AlexZinkM/pairing-cipher/internal/config"
	"github.com/AlexZinkM/pairing-cipher/internal/logger"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// @title        Pairing Cipher API
// @version      1.0
// @description  Triple-DES CBC cipher, passphrase envelopes and dongle pairing crypto.
// @host         localhost:8080
// @BasePath     /
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Init(); err != nil {
		return err
	}

	log, err := logger.New(config.GetLogLevel(), config.GetLogDevelopment())
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := config.PromptForPassphrase(); err != nil {
		return fmt.Errorf("failed to read passphrase: %w", err)
	}

	router, err := api.SetupRouter(log)
	if err != nil {
		return fmt.Errorf("failed to setup router: %w", err)
	}

	srv := &http.Server{
		Addr:              "127.0.0.1:" + config.GetPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr), zap.String("swagger", "http://"+srv.Addr+"/swagger/index.html"))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
