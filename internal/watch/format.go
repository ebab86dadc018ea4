package watch

import (
	"fmt"
	"strings"

	"github.com/clubwatch-hq/clubwatch/internal/domain"
)

// FormatResult renders the final-score announcement.
func FormatResult(r domain.MatchResult) string {
	return fmt.Sprintf("🏒 Final score: %s %d - %d %s", r.Team, r.ScoreA, r.ScoreB, r.Opponent)
}

// FormatPregame renders the game-day reminder. The kickoff already carries
// the club's timezone, so Format prints local wall time.
func FormatPregame(team string, f domain.Fixture) string {
	return fmt.Sprintf("⏰ Game day tomorrow: %s vs %s, face-off %s",
		team, f.Opponent, f.Kickoff.Format("Mon 2 Jan 15:04"))
}

// FormatScoreboard renders the daily league digest, one game per line.
func FormatScoreboard(sb domain.Scoreboard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 Latest scores (%s):", sb.Date)
	for _, row := range sb.Rows {
		b.WriteString("\n• ")
		b.WriteString(row)
	}
	return b.String()
}
