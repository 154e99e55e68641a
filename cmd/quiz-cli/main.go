package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"quiz-studio/internal/cli"
	"quiz-studio/internal/config"
	"quiz-studio/internal/logger"
	"quiz-studio/internal/quiz"
	"quiz-studio/internal/store"
)

func main() {
	cfg := config.Load()

	driver := flag.String("store", cfg.StoreDriver, "library store: sqlite, file, redis or memory")
	path := flag.String("path", "", "store location (sqlite/file path or redis URL); defaults to the configured one")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level")
	flag.Parse()

	cfg.StoreDriver = *driver
	if *path != "" {
		cfg.SetStorePath(*path)
	}
	cfg.LogLevel = *logLevel

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	blobs, closeStore, err := store.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error().Err(err).Msg("Failed to close store")
		}
	}()

	library := quiz.NewLibrary(blobs, log)
	if err := library.Load(ctx); err != nil {
		return err
	}
	log.Info().Str("driver", cfg.StoreDriver).Int("quizzes", library.Len()).Msg("Library ready")

	term := cli.NewTerminal(os.Stdout)
	controller := quiz.NewController(library, term, log,
		quiz.WithCountdown(quiz.NewCountdown(cfg.TickInterval, log)),
	)
	defer controller.Close()

	return cli.NewApp(controller, library, term).Run(ctx, os.Stdin)
}
