package domain

import (
	"strings"
	"testing"
	"time"
)

func TestMatchResultIDIsDeterministic(t *testing.T) {
	a := MatchResult{Team: "Capitals", Opponent: "Warriors", ScoreA: 3, ScoreB: 2, Excerpt: "Sat 20 Dec Capitals 3 - 2 Warriors full time"}
	b := MatchResult{Team: "Capitals", Opponent: "Warriors", ScoreA: 3, ScoreB: 2, Excerpt: "Sat 20 Dec Capitals 3 - 2 Warriors full time"}

	if a.ID() != b.ID() {
		t.Fatalf("identical results must share an id: %s vs %s", a.ID(), b.ID())
	}
	if len(a.ID()) != 40 {
		t.Fatalf("expected sha1 hex id, got %q", a.ID())
	}
}

func TestMatchResultIDSeparatesDistinctGames(t *testing.T) {
	base := MatchResult{Opponent: "Warriors", ScoreA: 3, ScoreB: 2, Excerpt: "x"}

	diffOpponent := base
	diffOpponent.Opponent = "Tigers"
	diffScore := base
	diffScore.ScoreB = 1
	diffExcerpt := base
	diffExcerpt.Excerpt = "y"

	for _, other := range []MatchResult{diffOpponent, diffScore, diffExcerpt} {
		if base.ID() == other.ID() {
			t.Fatalf("distinct results collided: %#v vs %#v", base, other)
		}
	}
}

func TestMatchResultIDIgnoresExcerptTail(t *testing.T) {
	head := strings.Repeat("a", 80)
	a := MatchResult{Opponent: "Warriors", ScoreA: 1, ScoreB: 0, Excerpt: head + " trailing navigation junk"}
	b := MatchResult{Opponent: "Warriors", ScoreA: 1, ScoreB: 0, Excerpt: head + " different junk entirely"}

	if a.ID() != b.ID() {
		t.Fatalf("ids should only depend on the excerpt prefix")
	}
}

func TestFixtureID(t *testing.T) {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	kickoff := time.Date(2025, time.December, 27, 19, 30, 0, 0, loc)
	f := Fixture{Kickoff: kickoff, Opponent: "Tigers"}

	if got := f.ID(); got != "2025-12-27T19:30:00Z|Tigers" {
		t.Fatalf("Fixture.ID() = %q", got)
	}
}
