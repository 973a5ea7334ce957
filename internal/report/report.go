package report

import (
	"sort"

	"RouletteSim/internal/calculator"
	"RouletteSim/internal/model"
)

// Summary is the ranked outcome of a simulation run.
type Summary struct {
	RunID   string
	Players []model.PlayerStats // ascending by balance
	Total   int
	Won     int
	WinRate int // percent
	Rounds  int

	MeanBalance   float64
	StdDevBalance float64
	BestBalance   float64
	WorstBalance  float64
}

// Build ranks stats by final balance and computes the aggregates. Players with
// equal balances keep their input order. The input slice is not modified.
func Build(stats []model.PlayerStats) *Summary {
	players := make([]model.PlayerStats, len(stats))
	copy(players, stats)
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Balance() < players[j].Balance()
	})

	s := &Summary{Players: players, Total: len(players)}
	balances := make([]float64, len(players))
	for i, p := range players {
		balances[i] = p.Balance()
		s.Rounds += p.PlayedGames
		if p.Won() {
			s.Won++
		}
	}
	s.WinRate = calculator.CalculateWinRate(s.Won, s.Total)

	// All three only fail on an empty run, where the zero values are what we want.
	if mean, err := calculator.CalculateMean(balances); err == nil {
		s.MeanBalance = mean
	}
	if sd, err := calculator.CalculateStdDev(balances); err == nil {
		s.StdDevBalance = sd
	}
	if high, low, err := calculator.CalculateRange(balances); err == nil {
		s.BestBalance, s.WorstBalance = high, low
	}
	return s
}
