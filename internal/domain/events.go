// Package domain contains the event types the watcher extracts from pages.
package domain

import (
	"crypto/sha1" //nolint:gosec // non-cryptographic id generation
	"encoding/hex"
	"fmt"
	"time"
)

// excerptIDLen bounds how much of the window text participates in a result
// id. The prefix keeps ids stable when trailing page noise shifts while still
// separating distinct games that happen to share a scoreline.
const excerptIDLen = 80

// MatchResult is a completed game detected on a page: the tracked team, the
// opponent inferred from the roster, the two score tokens as they appeared,
// and the window text they were extracted from.
type MatchResult struct {
	Team     string
	Opponent string
	ScoreA   int
	ScoreB   int
	Excerpt  string
}

// ID returns the deterministic dedup fingerprint for the result. Identical
// extractions always produce the same id, across runs and restarts.
func (r MatchResult) ID() string {
	excerpt := r.Excerpt
	if len(excerpt) > excerptIDLen {
		excerpt = excerpt[:excerptIDLen]
	}
	return fingerprint(fmt.Sprintf("%s|%d|%d|%s", r.Opponent, r.ScoreA, r.ScoreB, excerpt))
}

// Fixture is an upcoming game: kickoff in the club's timezone and the
// opponent inferred from the roster.
type Fixture struct {
	Kickoff  time.Time
	Opponent string
}

// ID returns the dedup key for a pregame alert. Kickoff is rendered in UTC so
// the key does not depend on the host timezone database.
func (f Fixture) ID() string {
	return f.Kickoff.UTC().Format(time.RFC3339) + "|" + f.Opponent
}

// Scoreboard is a digest of recent league scores, not necessarily involving
// the tracked team.
type Scoreboard struct {
	Date string
	Rows []string
}

func fingerprint(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
