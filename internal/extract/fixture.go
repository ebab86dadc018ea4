package extract

import (
	"regexp"
	"time"

	"github.com/clubwatch-hq/clubwatch/internal/domain"
	"github.com/clubwatch-hq/clubwatch/internal/textscan"
)

// kickoffPat recognizes tokens such as "27 Dec 2025 19:30": 1-2 digit day,
// 3-letter English month, 4-digit year, 24-hour clock.
var kickoffPat = regexp.MustCompile(`\b(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+(\d{4})\s+(\d{1,2}:\d{2})\b`)

const kickoffLayout = "2 Jan 2006 15:04"

// KickoffTimes parses every date/time token in the window against the club's
// home timezone. Tokens with impossible calendar values ("31 Feb 2026 19:30",
// "27 Dec 2025 25:70") are skipped; they never abort the window.
func (e *Extractor) KickoffTimes(window string) []time.Time {
	var out []time.Time
	for _, m := range kickoffPat.FindAllStringSubmatch(window, -1) {
		tok := m[1] + " " + m[2] + " " + m[3] + " " + m[4]
		t, err := time.ParseInLocation(kickoffLayout, tok, e.loc)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Fixtures scans the page lines for upcoming games. A window qualifies when
// it carries NO scoreline (absence of a score is what separates "upcoming"
// from "completed"), names an opponent, and holds at least one kickoff token
// strictly after now; the earliest future token is the window's kickoff.
func (e *Extractor) Fixtures(lines []string, now time.Time) []domain.Fixture {
	wins := textscan.Windows(lines, e.profile.Team, e.profile.FixtureLinesBefore, e.profile.FixtureLinesAfter)

	var out []domain.Fixture
	for _, w := range wins {
		if scorePat.MatchString(w.Text) {
			continue
		}
		opp, ok := e.opponent(e.rosterIn(w.Text))
		if !ok {
			continue
		}
		var kickoff time.Time
		for _, t := range e.KickoffTimes(w.Text) {
			if !t.After(now) {
				continue
			}
			if kickoff.IsZero() || t.Before(kickoff) {
				kickoff = t
			}
		}
		if kickoff.IsZero() {
			continue
		}
		out = append(out, domain.Fixture{Kickoff: kickoff, Opponent: opp})
	}
	return out
}
