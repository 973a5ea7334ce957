package simulation

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"RouletteSim/internal/model"
	"RouletteSim/internal/player"
	"RouletteSim/internal/recorder"
	"RouletteSim/internal/strategy"
	"RouletteSim/internal/wheel"
)

// seedStride spaces per-player seeds so neighbouring players do not share a stream.
const seedStride = 1337

// Config describes one simulation run.
type Config struct {
	Players   int
	Rounds    int
	Workers   int   // <= 0 means runtime.NumCPU()
	Seed      int64 // 0 means seeded from the wall clock
	TableSize int
	NoGreen   bool
	Strategy  strategy.Martingale
}

// Result holds the final statistics of every player, in player order.
type Result struct {
	RunID   string
	Seed    int64
	Stats   []model.PlayerStats
	Elapsed time.Duration
}

// Runner plays independent players concurrently. Each player owns its wheel and
// random source, so nothing mutable is shared between workers.
type Runner struct {
	cfg  Config
	rec  recorder.Recorder
	done atomic.Int64
}

// New validates cfg and returns a Runner. Wheel and strategy problems are reported
// here, before any round is played.
func New(cfg Config, rec recorder.Recorder) (*Runner, error) {
	if cfg.Players < 0 {
		return nil, fmt.Errorf("player count must not be negative, got %d", cfg.Players)
	}
	if cfg.Rounds < 0 {
		return nil, fmt.Errorf("rounds per player must not be negative, got %d", cfg.Rounds)
	}
	if err := cfg.Strategy.Validate(); err != nil {
		return nil, fmt.Errorf("strategy: %w", err)
	}
	probe, err := wheel.New(cfg.TableSize, !cfg.NoGreen, wheel.NewRandomSource(1))
	if err != nil {
		return nil, fmt.Errorf("wheel: %w", err)
	}
	layout := probe.Colors()
	log.WithFields(log.Fields{
		"red":   wheel.Count(layout, model.Red),
		"black": wheel.Count(layout, model.Black),
		"green": wheel.Count(layout, model.Green),
	}).Debug("wheel layout")
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Runner{cfg: cfg, rec: rec}, nil
}

// Total returns the number of rounds the run will play across all players.
func (r *Runner) Total() int64 {
	return int64(r.cfg.Players) * int64(r.cfg.Rounds)
}

// Completed returns the number of rounds played so far. It lags behind by at
// most one progress interval per running player.
func (r *Runner) Completed() int64 {
	return r.done.Load()
}

// Run plays every player to completion and returns their final statistics.
// A Runner may be run again; each run starts its round count from zero.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	r.done.Store(0)
	start := time.Now()
	seed := r.cfg.Seed
	if seed == 0 {
		seed = start.UnixNano()
	}
	runID := uuid.NewString()

	log.WithFields(log.Fields{
		"run_id":  runID,
		"players": r.cfg.Players,
		"rounds":  r.cfg.Rounds,
		"workers": r.cfg.Workers,
		"seed":    seed,
	}).Info("simulation starting")

	stats := make([]model.PlayerStats, r.cfg.Players)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i := 0; i < r.cfg.Players; i++ {
		i := i
		g.Go(func() error {
			s, err := r.play(gctx, i, seed+int64(i)*seedStride)
			if err != nil {
				return err
			}
			stats[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:   runID,
		Seed:    seed,
		Stats:   stats,
		Elapsed: time.Since(start),
	}
	log.WithFields(log.Fields{
		"run_id":  runID,
		"elapsed": res.Elapsed.Round(time.Millisecond),
	}).Info("simulation finished")
	return res, nil
}

// ColorForRound alternates bets: RED on even rounds, BLACK on odd ones.
func ColorForRound(round int) model.Color {
	if round%2 == 0 {
		return model.Red
	}
	return model.Black
}

// PlayerName returns the identifier of the i-th player.
func PlayerName(i int) string {
	return fmt.Sprintf("player-%03d", i)
}

// ProgressInterval returns how many rounds separate two progress samples.
func ProgressInterval(rounds int) int {
	return max(1, rounds/100)
}

func (r *Runner) play(ctx context.Context, idx int, seed int64) (model.PlayerStats, error) {
	w, err := wheel.New(r.cfg.TableSize, !r.cfg.NoGreen, wheel.NewRandomSource(seed))
	if err != nil {
		return model.PlayerStats{}, fmt.Errorf("player %d wheel: %w", idx, err)
	}
	p := player.New(PlayerName(idx), w, r.cfg.Strategy.MaxLossStreak, r.cfg.Strategy.MinimumBet)

	entry := log.WithField("player", p.Name())
	debug := log.IsLevelEnabled(log.DebugLevel)
	interval := ProgressInterval(r.cfg.Rounds)
	recordFailed := false
	var pending int64

	for round := 0; round < r.cfg.Rounds; round++ {
		out := p.Bet(ColorForRound(round))
		pending++

		if debug {
			verdict := "LOST"
			if out.Won {
				verdict = "WON"
			}
			entry.WithFields(log.Fields{
				"round":  round,
				"bet":    out.Chosen,
				"stake":  out.Stake,
				"result": out.Result,
			}).Debug(verdict)
		}

		last := round == r.cfg.Rounds-1
		if round%interval != 0 && !last {
			continue
		}

		r.done.Add(pending)
		pending = 0
		if err := ctx.Err(); err != nil {
			return model.PlayerStats{}, err
		}

		err := r.rec.RecordProgress(&model.Progress{
			Player:      idx,
			Round:       round,
			TotalRounds: r.cfg.Rounds,
			Final:       last,
			Stats:       out.Stats,
		})
		if err != nil && !recordFailed {
			recordFailed = true
			entry.WithError(err).Warn("record progress failed, further failures suppressed")
		}
	}

	return p.Stats(), nil
}
