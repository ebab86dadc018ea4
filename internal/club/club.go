// Package club carries the immutable profile of the watched club: the
// tracked team, the opponent roster, the public pages to scan and the
// heuristics' tuning values. The default profile is compiled into the binary;
// tests construct synthetic profiles directly.
package club

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed club.yaml
var defaultProfileYAML []byte

// Profile describes one watched club. Roster order matters: when several
// roster names share a window, the opponent is chosen by declaration order.
type Profile struct {
	Team   string   `yaml:"team"`
	Roster []string `yaml:"roster"`

	FixturesURL   string `yaml:"fixtures_url"`
	HomeURL       string `yaml:"home_url"`
	ScoreboardURL string `yaml:"scoreboard_url"`

	// IANA name of the club's home timezone; fixture times on the pages are
	// local to it.
	Timezone string `yaml:"timezone"`

	ResultLinesBefore  int `yaml:"result_lines_before"`
	ResultLinesAfter   int `yaml:"result_lines_after"`
	FixtureLinesBefore int `yaml:"fixture_lines_before"`
	FixtureLinesAfter  int `yaml:"fixture_lines_after"`

	// Pregame alerts fire while hours-to-kickoff sits inside [min, max].
	PregameMinHours float64 `yaml:"pregame_min_hours"`
	PregameMaxHours float64 `yaml:"pregame_max_hours"`

	ScoreboardMarker    string `yaml:"scoreboard_marker"`
	ScoreboardScanLines int    `yaml:"scoreboard_scan_lines"`
	ScoreboardSpanLines int    `yaml:"scoreboard_span_lines"`
	ScoreboardMaxRows   int    `yaml:"scoreboard_max_rows"`

	// The daily scoreboard digest posts when local time is inside
	// [DigestHour:00, DigestHour:DigestWindowMinutes).
	DigestHour          int `yaml:"digest_hour"`
	DigestWindowMinutes int `yaml:"digest_window_minutes"`
}

var (
	defaultOnce    sync.Once
	defaultProfile *Profile
	defaultErr     error
)

// Default returns the compiled-in profile.
func Default() (*Profile, error) {
	defaultOnce.Do(func() {
		var p Profile
		if err := yaml.Unmarshal(defaultProfileYAML, &p); err != nil {
			defaultErr = fmt.Errorf("decode embedded club profile: %w", err)
			return
		}
		if err := p.Validate(); err != nil {
			defaultErr = fmt.Errorf("embedded club profile: %w", err)
			return
		}
		defaultProfile = &p
	})
	return defaultProfile, defaultErr
}

// Validate checks the profile is internally consistent.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Team) == "" {
		return fmt.Errorf("team is required")
	}
	if len(p.Roster) < 2 {
		return fmt.Errorf("roster needs the tracked team plus at least one opponent")
	}
	found := false
	for _, name := range p.Roster {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("roster contains an empty name")
		}
		if name == p.Team {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("roster must contain the tracked team %q", p.Team)
	}
	if p.FixturesURL == "" || p.HomeURL == "" || p.ScoreboardURL == "" {
		return fmt.Errorf("fixtures_url, home_url and scoreboard_url are all required")
	}
	if p.ResultLinesBefore < 0 || p.ResultLinesAfter <= 0 {
		return fmt.Errorf("result window is invalid")
	}
	if p.FixtureLinesBefore < 0 || p.FixtureLinesAfter <= 0 {
		return fmt.Errorf("fixture window is invalid")
	}
	if p.PregameMinHours <= 0 || p.PregameMaxHours <= p.PregameMinHours {
		return fmt.Errorf("pregame band must satisfy 0 < min < max")
	}
	if p.ScoreboardMarker == "" {
		return fmt.Errorf("scoreboard_marker is required")
	}
	if p.ScoreboardScanLines <= 0 || p.ScoreboardSpanLines <= 0 || p.ScoreboardMaxRows <= 0 {
		return fmt.Errorf("scoreboard limits must be positive")
	}
	if p.DigestHour < 0 || p.DigestHour > 23 {
		return fmt.Errorf("digest_hour must be a clock hour")
	}
	if p.DigestWindowMinutes <= 0 || p.DigestWindowMinutes > 59 {
		return fmt.Errorf("digest_window_minutes must be within 1..59")
	}
	if _, err := time.LoadLocation(p.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", p.Timezone, err)
	}
	return nil
}

// Location resolves the club's home timezone.
func (p *Profile) Location() (*time.Location, error) {
	return time.LoadLocation(p.Timezone)
}
