package extract

import (
	"strconv"

	"github.com/clubwatch-hq/clubwatch/internal/domain"
	"github.com/clubwatch-hq/clubwatch/internal/textscan"
)

// Results scans the page lines for completed games. A window qualifies when
// it carries a scoreline and names a second roster team next to the tracked
// one; the first score token in the window is taken as the game's score.
// Neighboring anchors may describe the same game twice; those duplicates
// collapse downstream by id equality, not here.
func (e *Extractor) Results(lines []string) []domain.MatchResult {
	wins := textscan.Windows(lines, e.profile.Team, e.profile.ResultLinesBefore, e.profile.ResultLinesAfter)

	var out []domain.MatchResult
	for _, w := range wins {
		m := scorePat.FindStringSubmatch(w.Text)
		if m == nil {
			continue
		}
		// The anchor guarantees the tracked team; one more roster name
		// makes a game.
		opp, ok := e.opponent(e.rosterIn(w.Text))
		if !ok {
			continue
		}
		scoreA, _ := strconv.Atoi(m[1])
		scoreB, _ := strconv.Atoi(m[2])
		out = append(out, domain.MatchResult{
			Team:     e.profile.Team,
			Opponent: opp,
			ScoreA:   scoreA,
			ScoreB:   scoreB,
			Excerpt:  w.Text,
		})
	}
	return out
}
