package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/jaminalder/history-tic-tac-toe/internal/app"
	"github.com/jaminalder/history-tic-tac-toe/internal/config"
	"github.com/jaminalder/history-tic-tac-toe/internal/logging"
	"github.com/jaminalder/history-tic-tac-toe/internal/tui"
	"github.com/jaminalder/history-tic-tac-toe/internal/web"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "config.yml", "path to config file")
	flag.Parse()

	conf := config.MustLoad(*configPath)

	out, closeLog, err := logOutput(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger := logging.New(out, conf.LogLevel, conf.LogFormat)

	switch conf.Mode {
	case config.ModeTUI:
		err = tui.New(logger).Run()
	default:
		err = runWeb(logger, conf)
	}
	if err != nil {
		logger.Error().Err(err).Msg("exited with error")
		closeLog()
		os.Exit(1)
	}
}

// logOutput picks the log destination. The terminal UI owns the screen, so it
// only logs when a file is configured.
func logOutput(conf *config.Config) (io.Writer, func(), error) {
	if conf.LogFile == "" {
		if conf.Mode == config.ModeTUI {
			return io.Discard, func() {}, nil
		}
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func runWeb(logger zerolog.Logger, conf *config.Config) error {
	log := logging.Component(logger, "main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := app.NewService(logger)
	go svc.Run(ctx, conf.HTTP.SweepInterval, conf.HTTP.SessionTTL)

	srv := &http.Server{
		Addr:              conf.HTTP.Addr,
		Handler:           web.NewServer(svc, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", conf.HTTP.Addr).Msg("starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info().Int("sessions", svc.Len()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	return nil
}
