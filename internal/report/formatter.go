package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"RouletteSim/internal/model"
)

// FormatPlayer renders one player's statistics block.
func FormatPlayer(s *model.PlayerStats) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Player %s {\n", s.Name))
	b.WriteString(fmt.Sprintf("  rounds: %s\n", humanize.Comma(int64(s.PlayedGames))))
	b.WriteString(fmt.Sprintf("  won: %06d lost: %06d lost_%d_in_a_row: %06d highest_streak: %d biggest_bet$: %s\n",
		s.WinCount, s.LossCount, s.MaxLossStreak, s.MaxStreakHits, s.HighestLossStreak, formatAmount(s.BiggestBet)))
	b.WriteString(fmt.Sprintf("  won$:   %013.2f\n", s.WinAmount))
	b.WriteString(fmt.Sprintf("  lost$:  %013.2f\n", s.LostAmount))
	b.WriteString(fmt.Sprintf("  result: %013.2f\n", s.Balance()))
	b.WriteString("}")
	return b.String()
}

// FormatProgress renders a sampled observation of a running player.
func FormatProgress(p *model.Progress) string {
	pct := 100.0
	if p.TotalRounds > 0 {
		pct = float64(p.Round+1) / float64(p.TotalRounds) * 100
	}
	tag := "progress"
	if p.Final {
		tag = "final"
	}
	return fmt.Sprintf("[%s %.0f%%] %s", tag, pct, FormatPlayer(&p.Stats))
}

// FormatAggregate renders the one-line verdict of a run.
func FormatAggregate(s *Summary) string {
	return fmt.Sprintf("played %d games, won %d games (%d%%)", s.Total, s.Won, s.WinRate)
}

// Format renders every player, worst balance first, followed by the aggregates.
func Format(s *Summary) string {
	var b strings.Builder

	if s.RunID != "" {
		b.WriteString(fmt.Sprintf("Run %s\n\n", s.RunID))
	}

	for i := range s.Players {
		b.WriteString(FormatPlayer(&s.Players[i]))
		b.WriteString("\n")
	}

	if s.Total > 0 {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("rounds played: %s\n", humanize.Comma(int64(s.Rounds))))
		b.WriteString(fmt.Sprintf("balance mean: %s std-dev: %s best: %s worst: %s\n",
			formatAmount(s.MeanBalance), formatAmount(s.StdDevBalance),
			formatAmount(s.BestBalance), formatAmount(s.WorstBalance)))
	}

	b.WriteString(FormatAggregate(s))
	b.WriteString("\n")
	return b.String()
}

func formatAmount(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}
