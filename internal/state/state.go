// Package state persists which events have already been notified, so
// repeated runs stay quiet about games they reported before.
package state

import (
	"fmt"
	"slices"
	"strings"
)

// State is the persisted dedup document. Id sets only ever grow during
// normal operation; the document is loaded once at run start and saved back
// after every mutating pass.
type State struct {
	PostedResultIDs    []string `json:"postedResultIds"`
	PostedPregameIDs   []string `json:"postedPregameIds"`
	LastScoreboardDate string   `json:"lastScoreboardDate"`
}

func (s *State) HasResult(id string) bool  { return slices.Contains(s.PostedResultIDs, id) }
func (s *State) HasPregame(id string) bool { return slices.Contains(s.PostedPregameIDs, id) }

// AddResult records a delivered result id.
func (s *State) AddResult(id string) {
	if !s.HasResult(id) {
		s.PostedResultIDs = append(s.PostedResultIDs, id)
	}
}

// AddPregame records a delivered pregame alert id.
func (s *State) AddPregame(id string) {
	if !s.HasPregame(id) {
		s.PostedPregameIDs = append(s.PostedPregameIDs, id)
	}
}

func (s State) clone() State {
	return State{
		PostedResultIDs:    slices.Clone(s.PostedResultIDs),
		PostedPregameIDs:   slices.Clone(s.PostedPregameIDs),
		LastScoreboardDate: s.LastScoreboardDate,
	}
}

// Store is the injected load/save contract around the document.
type Store interface {
	Load() (State, error)
	Save(State) error
	Close() error
}

// New creates the configured store backend.
func New(typ, path string) (Store, error) {
	switch strings.TrimSpace(strings.ToLower(typ)) {
	case "", "none", "memory":
		return NewMemory(), nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt state store requires a path")
		}
		return openBolt(path)
	case "json", "file":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("json state store requires a path")
		}
		return newFileStore(path), nil
	default:
		return nil, fmt.Errorf("unsupported state store type %q", typ)
	}
}
