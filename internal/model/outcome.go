package model

// BetOutcome is the result of one round for one player.
type BetOutcome struct {
	Chosen Color
	Result Color
	Stake  float64
	Won    bool
	Stats  PlayerStats
}

// Progress is a sampled observation of a player mid-run.
type Progress struct {
	Player      int
	Round       int // 0-based
	TotalRounds int
	Final       bool
	Stats       PlayerStats
}
