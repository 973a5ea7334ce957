package model

// PlayerStats holds the running counters of a single simulated player.
type PlayerStats struct {
	Name              string
	PlayedGames       int
	WinCount          int
	LossCount         int
	WinAmount         float64 // >= 0
	LostAmount        float64 // <= 0
	LosingStreak      int
	HighestLossStreak int
	MaxStreakHits     int // times LosingStreak reached MaxLossStreak
	BiggestBet        float64
	MaxLossStreak     int
}

// Balance is the net result: won amount plus the (negative) lost amount.
func (s PlayerStats) Balance() float64 {
	return s.WinAmount + s.LostAmount
}

// Won reports whether the player finished strictly above zero.
func (s PlayerStats) Won() bool {
	return s.Balance() > 0
}
