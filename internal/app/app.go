// Package app holds the startup sequence shared by the console programs.
//
// STARTUP SEQUENCE:
//  1. Load configuration (YAML file and/or environment)
//  2. Initialise the logger
//  3. Connect to (and set up) the database
//  4. Run the program's menu until the user exits
//  5. Stop early on an OS signal (Ctrl+C / kill)
//  6. Close the database connection on every path
package app

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/aanand-mishra/records-console/internal/config"
	"github.com/aanand-mishra/records-console/internal/console"
	"github.com/aanand-mishra/records-console/internal/storage/sqlstore"
	"github.com/aanand-mishra/records-console/internal/utils/logger"
)

// MenuFunc builds the program's menu around the opened store.
type MenuFunc func(store *sqlstore.Store) *console.Menu

// Run executes the startup sequence for the program called name and
// exits the process with status 1 when the database cannot be reached.
func Run(name string, menu MenuFunc) {
	cfg := config.MustLoad()

	log := logger.New(cfg.Env, os.Stderr).With().Str("program", name).Logger()
	log.Info().
		Str("env", cfg.Env).
		Str("driver", cfg.Driver).
		Msg("starting")

	if err := run(log.WithContext(context.Background()), cfg, menu, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Error().Err(err).Msg("failed to initialise storage")
		os.Exit(1)
	}
}

// run opens the store, drives the menu over the given streams and closes
// the store again. It fails only when the store cannot be opened.
func run(ctx context.Context, cfg *config.Config, menu MenuFunc, in io.Reader, out, errOut io.Writer) error {
	log := zerolog.Ctx(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store, err := sqlstore.New(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database connection")
			return
		}
		log.Info().Msg("database connection closed")
	}()

	// The menu blocks on its input, so it runs on its own goroutine
	// while this one waits for either the exit choice or a signal.
	done := make(chan error, 1)
	go func() {
		term := console.NewTerminal(in, out, errOut)
		done <- menu(store).Run(ctx, term)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-done:
		if err != nil {
			log.Error().Err(err).Msg("menu stopped")
		}
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
		cancel()
	}

	return nil
}
