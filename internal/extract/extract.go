// Package extract applies the heuristic pattern rules that turn scan windows
// into structured events: final results, upcoming fixtures and league
// scoreboard rows. The rules are loose text heuristics over loosely
// structured pages; a window that does not satisfy a rule yields nothing
// rather than an error.
package extract

import (
	"regexp"
	"time"

	"github.com/clubwatch-hq/clubwatch/internal/club"
	"github.com/clubwatch-hq/clubwatch/internal/textscan"
)

// scorePat matches a scoreline such as "3 - 2" or "3–2": one or two digit
// integers around a hyphen or en dash, word-boundary delimited.
var scorePat = regexp.MustCompile(`\b(\d{1,2})\s*[-–]\s*(\d{1,2})\b`)

// Extractor evaluates one club's pattern rules against normalized page lines.
type Extractor struct {
	profile    *club.Profile
	loc        *time.Location
	rosterPats []*regexp.Regexp
}

// New compiles the roster matchers and resolves the club's home timezone.
func New(p *club.Profile) (*Extractor, error) {
	loc, err := p.Location()
	if err != nil {
		return nil, err
	}
	pats := make([]*regexp.Regexp, len(p.Roster))
	for i, name := range p.Roster {
		pats[i] = textscan.WordPattern(name)
	}
	return &Extractor{profile: p, loc: loc, rosterPats: pats}, nil
}

// rosterIn lists the roster names present in the window as whole words, in
// roster declaration order.
func (e *Extractor) rosterIn(window string) []string {
	var found []string
	for i, pat := range e.rosterPats {
		if pat.MatchString(window) {
			found = append(found, e.profile.Roster[i])
		}
	}
	return found
}

// opponent picks the first non-tracked name from found. Declaration order
// wins over textual proximity, even when three or more roster names share the
// window.
func (e *Extractor) opponent(found []string) (string, bool) {
	for _, name := range found {
		if name != e.profile.Team {
			return name, true
		}
	}
	return "", false
}
