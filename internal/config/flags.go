package config

import (
	"flag"
	"fmt"
	"strconv"
)

// DefaultPath is where the CLI looks for a config file when -config is not given.
const DefaultPath = "configs/config.yaml"

// Flags binds command-line options. Only flags given explicitly override the
// loaded config.
type Flags struct {
	fs *flag.FlagSet

	configPath    string
	maxLossStreak int
	minimumBet    float64
	betCount      int
	gameCount     int
	tableSize     int
	noGreen       bool
	workers       int
	seed          int64
	quiet         bool
	logLevel      string
	heartbeat     string
}

// NewFlags registers every option on fs.
func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.configPath, "config", DefaultPath, "path to a YAML or TOML config file")
	fs.IntVar(&f.maxLossStreak, "max_loss_streak", 5, "losses in a row after which the stake resets")
	fs.Float64Var(&f.minimumBet, "minimum_bet", 1.0, "base stake unit")
	fs.IntVar(&f.betCount, "bet_count", 10_000_000, "rounds per player")
	fs.IntVar(&f.betCount, "player_bet_count", 10_000_000, "alias of -bet_count")
	fs.IntVar(&f.gameCount, "game_count", 1, "number of independent players")
	fs.IntVar(&f.tableSize, "table_size", 37, "number of wheel pockets")
	fs.BoolVar(&f.noGreen, "no_green", false, "wheel without a green pocket (even table_size)")
	fs.IntVar(&f.workers, "workers", 0, "parallel workers, 0 for one per CPU")
	fs.Int64Var(&f.seed, "seed", 0, "base random seed, 0 for wall clock")
	fs.BoolVar(&f.quiet, "quiet", false, "only print the final report")
	fs.StringVar(&f.logLevel, "log_level", "info", "debug, info, warn or error")
	fs.StringVar(&f.heartbeat, "heartbeat", "@every 5s", "cron spec for progress logs, or \"off\"")
	return f
}

// ConfigPath returns the -config value.
func (f *Flags) ConfigPath() string { return f.configPath }

// Apply copies explicitly set flags onto cfg, then the optional positional
// arguments: [max_loss_streak [minimum_bet [bet_count]]].
func (f *Flags) Apply(cfg *Config) error {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "max_loss_streak":
			cfg.MaxLossStreak = f.maxLossStreak
		case "minimum_bet":
			cfg.MinimumBet = f.minimumBet
		case "bet_count", "player_bet_count":
			cfg.BetCount = f.betCount
		case "game_count":
			cfg.GameCount = f.gameCount
		case "table_size":
			cfg.TableSize = f.tableSize
		case "no_green":
			cfg.NoGreen = f.noGreen
		case "workers":
			cfg.Workers = f.workers
		case "seed":
			cfg.Seed = f.seed
		case "quiet":
			cfg.Quiet = f.quiet
		case "log_level":
			cfg.LogLevel = f.logLevel
		case "heartbeat":
			cfg.Heartbeat = f.heartbeat
		}
	})

	args := f.fs.Args()
	if len(args) > 3 {
		return fmt.Errorf("too many arguments: %v", args)
	}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("max_loss_streak argument: %w", err)
		}
		cfg.MaxLossStreak = n
	}
	if len(args) > 1 {
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("minimum_bet argument: %w", err)
		}
		cfg.MinimumBet = v
	}
	if len(args) > 2 {
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("bet_count argument: %w", err)
		}
		cfg.BetCount = n
	}
	return nil
}
