package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"RouletteSim/internal/config"
	"RouletteSim/internal/recorder"
	"RouletteSim/internal/report"
	"RouletteSim/internal/scheduler"
	"RouletteSim/internal/simulation"
	"RouletteSim/internal/strategy"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("load .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	case errors.Is(err, context.Canceled):
		log.Warn("shutdown signal received, simulation aborted")
		os.Exit(130)
	default:
		log.Fatal(err)
	}
}

// run executes one simulation and writes progress and the report to stdout.
// Every resource it opens is released before it returns.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("sim", flag.ContinueOnError)
	flags := config.NewFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Load config
	cfgPath := flags.ConfigPath()
	if v := os.Getenv("CONFIG_PATH"); v != "" && cfgPath == config.DefaultPath {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := flags.Apply(cfg); err != nil {
		return fmt.Errorf("parse arguments: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	log.WithFields(log.Fields{
		"max_loss_streak": cfg.MaxLossStreak,
		"minimum_bet":     cfg.MinimumBet,
		"bet_count":       cfg.BetCount,
		"game_count":      cfg.GameCount,
		"table_size":      cfg.Table(),
		"no_green":        cfg.NoGreen,
	}).Info("roulette simulator starting")

	// Progress output
	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if !cfg.Quiet {
		rec = recorder.NewWriterRecorder(stdout)
	}
	defer func() {
		if err := rec.Close(); err != nil {
			log.WithError(err).Warn("close progress recorder")
		}
	}()

	runner, err := simulation.New(simulation.Config{
		Players:   cfg.GameCount,
		Rounds:    cfg.BetCount,
		Workers:   cfg.Workers,
		Seed:      cfg.Seed,
		TableSize: cfg.Table(),
		NoGreen:   cfg.NoGreen,
		Strategy: strategy.Martingale{
			MaxLossStreak: cfg.MaxLossStreak,
			MinimumBet:    cfg.MinimumBet,
		},
	}, rec)
	if err != nil {
		return fmt.Errorf("init simulation: %w", err)
	}

	if cfg.HeartbeatEnabled() {
		hb, err := scheduler.NewHeartbeat(cfg.Heartbeat, runner)
		if err != nil {
			return fmt.Errorf("init heartbeat: %w", err)
		}
		hb.Start()
		defer hb.Stop()
	}

	res, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("run simulation: %w", err)
	}

	summary := report.Build(res.Stats)
	summary.RunID = res.RunID
	if _, err := fmt.Fprint(stdout, report.Format(summary)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
