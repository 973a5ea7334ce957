package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RouletteSim/internal/model"
)

func stats(name string, win, lost float64) model.PlayerStats {
	return model.PlayerStats{Name: name, WinAmount: win, LostAmount: lost, PlayedGames: 10, MaxLossStreak: 5}
}

func TestBuild_SortsAscendingByBalance(t *testing.T) {
	in := []model.PlayerStats{
		stats("a", 10, -2),  // 8
		stats("b", 1, -5),   // -4
		stats("c", 3, -3),   // 0
		stats("d", 20, -30), // -10
	}
	s := Build(in)

	names := make([]string, 0, len(s.Players))
	for _, p := range s.Players {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"d", "b", "c", "a"}, names)
	assert.Equal(t, "a", in[0].Name, "input must not be reordered")
}

func TestBuild_TiesKeepInsertionOrder(t *testing.T) {
	in := []model.PlayerStats{
		stats("first", 5, -5),
		stats("loser", 0, -1),
		stats("second", 2, -2),
		stats("third", 0, 0),
	}
	s := Build(in)
	require.Len(t, s.Players, 4)
	assert.Equal(t, "loser", s.Players[0].Name)
	assert.Equal(t, "first", s.Players[1].Name)
	assert.Equal(t, "second", s.Players[2].Name)
	assert.Equal(t, "third", s.Players[3].Name)
}

func TestBuild_WonCountsStrictlyPositiveBalances(t *testing.T) {
	in := []model.PlayerStats{
		stats("up", 4, -1),
		stats("flat", 1, -1),
		stats("down", 0, -1),
	}
	s := Build(in)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Won)
	assert.Equal(t, 33, s.WinRate)
	assert.Equal(t, 30, s.Rounds)
	assert.InDelta(t, 2.0/3, s.MeanBalance, 1e-12)
	assert.Equal(t, 3.0, s.BestBalance)
	assert.Equal(t, -1.0, s.WorstBalance)
	assert.Equal(t, "played 3 games, won 1 games (33%)", FormatAggregate(s))
}

func TestBuild_EmptyRun(t *testing.T) {
	s := Build(nil)
	assert.Zero(t, s.Total)
	assert.Zero(t, s.Won)
	assert.Zero(t, s.WinRate)
	assert.Zero(t, s.MeanBalance)

	out := Format(s)
	assert.Equal(t, "played 0 games, won 0 games (0%)\n", out)
	assert.NotContains(t, out, "NaN")
}

func TestFormat_ContainsEveryPlayerAndAggregate(t *testing.T) {
	s := Build([]model.PlayerStats{stats("alpha", 8, -7), stats("beta", 0, -3)})
	s.RunID = "run-1"
	out := Format(s)

	assert.True(t, strings.HasPrefix(out, "Run run-1\n"))
	assert.Less(t, strings.Index(out, "Player beta"), strings.Index(out, "Player alpha"))
	assert.Contains(t, out, "rounds played: 20")
	assert.True(t, strings.HasSuffix(out, "played 2 games, won 1 games (50%)\n"))
}

func TestFormatPlayer(t *testing.T) {
	s := model.PlayerStats{
		Name:              "p-001",
		PlayedGames:       12345,
		WinCount:          7,
		LossCount:         3,
		WinAmount:         8,
		LostAmount:        -7,
		HighestLossStreak: 3,
		MaxStreakHits:     2,
		BiggestBet:        1024,
		MaxLossStreak:     4,
	}
	out := FormatPlayer(&s)

	assert.Contains(t, out, "Player p-001 {")
	assert.Contains(t, out, "rounds: 12,345")
	assert.Contains(t, out, "won: 000007 lost: 000003 lost_4_in_a_row: 000002")
	assert.Contains(t, out, "biggest_bet$: 1,024")
	assert.Contains(t, out, "won$:   0000000008.00")
	assert.Contains(t, out, "lost$:  -000000007.00")
	assert.Contains(t, out, "result: 0000000001.00")
}

func TestFormatProgress(t *testing.T) {
	p := &model.Progress{Round: 49, TotalRounds: 100, Stats: stats("x", 1, 0)}
	assert.True(t, strings.HasPrefix(FormatProgress(p), "[progress 50%] Player x {"))

	p.Round, p.Final = 99, true
	assert.True(t, strings.HasPrefix(FormatProgress(p), "[final 100%]"))
}
