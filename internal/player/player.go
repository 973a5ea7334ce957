package player

import (
	"math"

	"RouletteSim/internal/model"
	"RouletteSim/internal/strategy"
)

// Spinner produces one wheel outcome per call.
type Spinner interface {
	Play() model.Color
}

// Player bets on a single color each round and keeps running statistics.
// A Player and its Spinner must be driven from one goroutine.
type Player struct {
	wheel    Spinner
	strategy strategy.Martingale
	stats    model.PlayerStats
}

// New creates a player that doubles up to maxLossStreak consecutive losses.
func New(name string, w Spinner, maxLossStreak int, minimumBet float64) *Player {
	return &Player{
		wheel:    w,
		strategy: strategy.Martingale{MaxLossStreak: maxLossStreak, MinimumBet: minimumBet},
		stats: model.PlayerStats{
			Name:          name,
			MaxLossStreak: maxLossStreak,
		},
	}
}

// Bet wagers on chosen with a stake sized from the current losing streak.
func (p *Player) Bet(chosen model.Color) model.BetOutcome {
	return p.place(chosen, p.strategy.Stake(p.stats.LosingStreak))
}

// BetWith wagers stake on chosen, bypassing the strategy. The losing streak
// is still tracked as usual. A stake that is not a positive finite number is
// ignored and the strategy sizes the bet instead.
func (p *Player) BetWith(chosen model.Color, stake float64) model.BetOutcome {
	if !(stake > 0) || math.IsInf(stake, 0) {
		return p.Bet(chosen)
	}
	return p.place(chosen, stake)
}

// Stats returns a snapshot of the player's statistics.
func (p *Player) Stats() model.PlayerStats {
	return p.stats
}

// Name returns the player identifier.
func (p *Player) Name() string {
	return p.stats.Name
}

func (p *Player) place(chosen model.Color, stake float64) model.BetOutcome {
	if stake > p.stats.BiggestBet {
		p.stats.BiggestBet = stake
	}

	result := p.wheel.Play()
	p.stats.PlayedGames++

	won := result == chosen
	if won {
		p.win(stake)
	} else {
		p.lose(stake)
	}

	return model.BetOutcome{
		Chosen: chosen,
		Result: result,
		Stake:  stake,
		Won:    won,
		Stats:  p.stats,
	}
}

func (p *Player) win(stake float64) {
	p.stats.WinCount++
	p.stats.WinAmount += stake
	if p.stats.LosingStreak > p.stats.HighestLossStreak {
		p.stats.HighestLossStreak = p.stats.LosingStreak
	}
	p.stats.LosingStreak = 0
}

func (p *Player) lose(stake float64) {
	p.stats.LossCount++
	p.stats.LostAmount -= stake
	p.stats.LosingStreak++

	if p.stats.LosingStreak == p.strategy.MaxLossStreak {
		p.stats.MaxStreakHits++
		p.stats.LosingStreak = 0
		p.stats.HighestLossStreak = p.strategy.MaxLossStreak
	}
}
