package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// HeartbeatOff disables the wall-clock progress heartbeat.
const HeartbeatOff = "off"

// Config holds all simulation settings.
type Config struct {
	MaxLossStreak  int     `yaml:"max_loss_streak" toml:"max_loss_streak"`
	MinimumBet     float64 `yaml:"minimum_bet" toml:"minimum_bet"`
	BetCount       int     `yaml:"bet_count" toml:"bet_count"`
	PlayerBetCount *int    `yaml:"player_bet_count" toml:"player_bet_count"` // alias of bet_count, wins when both are set
	GameCount      int     `yaml:"game_count" toml:"game_count"`
	TableSize      int     `yaml:"table_size" toml:"table_size"` // 0 = 37, or 36 with no_green
	NoGreen        bool    `yaml:"no_green" toml:"no_green"`
	Workers        int     `yaml:"workers" toml:"workers"` // 0 = one per CPU
	Seed           int64   `yaml:"seed" toml:"seed"`       // 0 = wall clock
	Quiet          bool    `yaml:"quiet" toml:"quiet"`     // suppress per-player progress blocks
	LogLevel       string  `yaml:"log_level" toml:"log_level"`
	Heartbeat      string  `yaml:"heartbeat" toml:"heartbeat"`
}

// Load starts from the defaults, then applies a YAML or TOML file (chosen by
// extension) and environment variable overrides. A missing file is not an error.
// Values given explicitly, zero included, are kept and left to Validate.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := decode(path, data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		if cfg.PlayerBetCount != nil {
			cfg.BetCount = *cfg.PlayerBetCount
			cfg.PlayerBetCount = nil
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Defaults returns the configuration used when nothing else is given.
func Defaults() *Config {
	return &Config{
		MaxLossStreak: 5,
		MinimumBet:    1.0,
		BetCount:      10_000_000,
		GameCount:     1,
		LogLevel:      "info",
		Heartbeat:     "@every 5s",
	}
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

func (c *Config) applyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"MAX_LOSS_STREAK", &c.MaxLossStreak},
		{"PLAYER_BET_COUNT", &c.BetCount},
		{"BET_COUNT", &c.BetCount},
		{"GAME_COUNT", &c.GameCount},
		{"TABLE_SIZE", &c.TableSize},
		{"WORKERS", &c.Workers},
	}
	for _, e := range ints {
		if v := os.Getenv(e.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("env %s: %w", e.key, err)
			}
			*e.dst = n
		}
	}

	if v := os.Getenv("MINIMUM_BET"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("env MINIMUM_BET: %w", err)
		}
		c.MinimumBet = f
	}
	if v := os.Getenv("SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("env SEED: %w", err)
		}
		c.Seed = n
	}
	for key, dst := range map[string]*bool{"NO_GREEN": &c.NoGreen, "QUIET": &c.Quiet} {
		if v := os.Getenv(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("env %s: %w", key, err)
			}
			*dst = b
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("HEARTBEAT"); v != "" {
		c.Heartbeat = v
	}
	return nil
}

// Validate checks that the settings describe a runnable simulation.
func (c *Config) Validate() error {
	if c.MaxLossStreak < 1 {
		return fmt.Errorf("max_loss_streak must be at least 1, got %d", c.MaxLossStreak)
	}
	if c.MinimumBet <= 0 {
		return fmt.Errorf("minimum_bet must be positive, got %g", c.MinimumBet)
	}
	if c.BetCount < 1 {
		return fmt.Errorf("bet_count must be positive, got %d", c.BetCount)
	}
	if c.GameCount < 1 {
		return fmt.Errorf("game_count must be positive, got %d", c.GameCount)
	}
	size := c.Table()
	if size < 1 {
		return fmt.Errorf("table_size must be positive, got %d", size)
	}
	if odd := size%2 == 1; odd == c.NoGreen {
		if c.NoGreen {
			return fmt.Errorf("table_size %d is odd but no_green is set: odd tables need a green pocket", size)
		}
		return fmt.Errorf("table_size %d is even: set no_green for a table without a green pocket", size)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Table returns the wheel size, defaulting to the standard single-zero wheel.
func (c *Config) Table() int {
	if c.TableSize != 0 {
		return c.TableSize
	}
	if c.NoGreen {
		return 36
	}
	return 37
}

// HeartbeatEnabled reports whether a heartbeat schedule is configured.
func (c *Config) HeartbeatEnabled() bool {
	return c.Heartbeat != "" && !strings.EqualFold(c.Heartbeat, HeartbeatOff)
}
