package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"tourmap/internal/config"
	"tourmap/internal/fixtures"
	"tourmap/internal/infra"
	"tourmap/pkg/logging"
)

type Options struct {
	File  string `short:"f" long:"file" description:"Fixture file (YAML)" required:"true"`
	Reset bool   `long:"reset" description:"Delete all existing records before loading"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	file, err := os.Open(opts.File)
	if err != nil {
		return fmt.Errorf("failed to open fixture: %w", err)
	}
	defer file.Close()

	fixture, err := fixtures.Parse(file)
	if err != nil {
		return err
	}

	db, err := infra.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = infra.Close(db) }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	counts, err := fixtures.Load(ctx, db, fixture, opts.Reset)
	if err != nil {
		return fmt.Errorf("failed to load fixture: %w", err)
	}

	log.Info().
		Str("file", opts.File).
		Bool("reset", opts.Reset).
		Int("categories", counts.Categories).
		Int("spots", counts.Spots).
		Int("routes", counts.Routes).
		Msg("fixture loaded")

	return nil
}
