// Package watch runs the detection passes over the club's pages and decides
// which notifications are due. Three passes per run, each gated by its own
// trigger and isolated from the others' failures: final results, the ~24h
// pregame alert, and the daily scoreboard digest.
package watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clubwatch-hq/clubwatch/internal/club"
	"github.com/clubwatch-hq/clubwatch/internal/domain"
	"github.com/clubwatch-hq/clubwatch/internal/extract"
	"github.com/clubwatch-hq/clubwatch/internal/logger"
	"github.com/clubwatch-hq/clubwatch/internal/state"
	"github.com/clubwatch-hq/clubwatch/internal/textscan"
	"github.com/clubwatch-hq/clubwatch/pkg/notifiers"
)

// Fetcher retrieves one page as flattened text.
type Fetcher interface {
	Text(ctx context.Context, url string) (string, error)
}

// Dispatcher delivers one finished message; a nil error confirms delivery to
// every configured sink.
type Dispatcher interface {
	Notify(ctx context.Context, msg notifiers.Message) (int, error)
}

// Watcher owns one run: load state once, run the passes, save after every
// pass that changed the state.
type Watcher struct {
	profile   *club.Profile
	loc       *time.Location
	extractor *extract.Extractor
	fetcher   Fetcher
	dispatch  Dispatcher
	store     state.Store

	now func() time.Time
}

// New builds a watcher for the given club profile.
func New(p *club.Profile, fetcher Fetcher, dispatch Dispatcher, store state.Store) (*Watcher, error) {
	loc, err := p.Location()
	if err != nil {
		return nil, err
	}
	extractor, err := extract.New(p)
	if err != nil {
		return nil, err
	}
	return &Watcher{
		profile:   p,
		loc:       loc,
		extractor: extractor,
		fetcher:   fetcher,
		dispatch:  dispatch,
		store:     store,
		now:       time.Now,
	}, nil
}

// RunOnce executes the three passes. A failing pass is logged and never
// stops the others; an event id is recorded only after its notification was
// confirmed, so undelivered events are retried on the next run. Only state
// save failures are returned: they mean delivered ids were not recorded.
func (w *Watcher) RunOnce(ctx context.Context) error {
	st, err := w.store.Load()
	if err != nil {
		logger.WarnObj("state load failed; starting from empty state", "error", err.Error())
		st = state.State{}
	}

	passes := []struct {
		name string
		run  func(context.Context, *state.State) (bool, error)
	}{
		{"results", w.resultsPass},
		{"pregame", w.pregamePass},
		{"scoreboard", w.scoreboardPass},
	}

	var saveErrs []error
	for _, p := range passes {
		changed, err := p.run(ctx, &st)
		if err != nil {
			logger.ErrorObj(p.name+" pass failed", "error", err.Error())
		}
		if !changed {
			continue
		}
		if err := w.store.Save(st); err != nil {
			saveErrs = append(saveErrs, fmt.Errorf("save state after %s pass: %w", p.name, err))
		}
	}
	return errors.Join(saveErrs...)
}

// resultsPass posts every newly detected final score. Duplicate windows for
// the same game share an id and collapse here against the state document.
func (w *Watcher) resultsPass(ctx context.Context, st *state.State) (bool, error) {
	text, err := w.fetcher.Text(ctx, w.profile.FixturesURL)
	if err != nil {
		return false, err
	}
	lines := textscan.Lines(text)

	changed := false
	var errs []error
	for _, res := range w.extractor.Results(lines) {
		id := res.ID()
		if st.HasResult(id) {
			continue
		}

		msg := notifiers.Message{Kind: notifiers.KindResult, Text: FormatResult(res)}
		if _, err := w.dispatch.Notify(ctx, msg); err != nil {
			errs = append(errs, fmt.Errorf("deliver result vs %s: %w", res.Opponent, err))
			continue
		}
		st.AddResult(id)
		changed = true

		logger.InfoObj("result notification posted", "result", map[string]any{
			"opponent": res.Opponent,
			"score":    fmt.Sprintf("%d-%d", res.ScoreA, res.ScoreB),
		})
	}
	return changed, errors.Join(errs...)
}

// pregamePass fires at most one alert for the next upcoming game, and only
// while hours-to-kickoff sits inside the trigger band. The band fires once
// as time decreases through it; the id check is the second net for repeated
// runs inside the band.
func (w *Watcher) pregamePass(ctx context.Context, st *state.State) (bool, error) {
	text, err := w.fetcher.Text(ctx, w.profile.HomeURL)
	if err != nil {
		return false, err
	}
	now := w.now()

	fixtures := w.extractor.Fixtures(textscan.Lines(text), now)
	if len(fixtures) == 0 {
		return false, nil
	}

	next := fixtures[0]
	for _, f := range fixtures[1:] {
		if f.Kickoff.Before(next.Kickoff) {
			next = f
		}
	}

	hours := next.Kickoff.Sub(now).Hours()
	if hours < w.profile.PregameMinHours || hours > w.profile.PregameMaxHours {
		return false, nil
	}

	id := next.ID()
	if st.HasPregame(id) {
		return false, nil
	}

	msg := notifiers.Message{Kind: notifiers.KindPregame, Text: FormatPregame(w.profile.Team, next)}
	if _, err := w.dispatch.Notify(ctx, msg); err != nil {
		return false, fmt.Errorf("deliver pregame vs %s: %w", next.Opponent, err)
	}
	st.AddPregame(id)

	logger.InfoObj("pregame notification posted", "fixture", map[string]any{
		"opponent": next.Opponent,
		"kickoff":  next.Kickoff.Format(time.RFC3339),
	})
	return true, nil
}

// scoreboardPass posts the league digest once per local calendar date,
// during a short clock window. Finding no rows leaves the date unset so a
// later run inside the window can still post that day.
func (w *Watcher) scoreboardPass(ctx context.Context, st *state.State) (bool, error) {
	local := w.now().In(w.loc)
	if local.Hour() != w.profile.DigestHour || local.Minute() >= w.profile.DigestWindowMinutes {
		return false, nil
	}
	today := local.Format("2006-01-02")
	if st.LastScoreboardDate == today {
		return false, nil
	}

	text, err := w.fetcher.Text(ctx, w.profile.ScoreboardURL)
	if err != nil {
		return false, err
	}
	rows := w.extractor.ScoreboardRows(textscan.Lines(text))
	if len(rows) == 0 {
		return false, nil
	}

	msg := notifiers.Message{
		Kind: notifiers.KindScoreboard,
		Text: FormatScoreboard(domain.Scoreboard{Date: today, Rows: rows}),
	}
	if _, err := w.dispatch.Notify(ctx, msg); err != nil {
		return false, fmt.Errorf("deliver scoreboard digest: %w", err)
	}
	st.LastScoreboardDate = today

	logger.InfoObj("scoreboard digest posted", "scoreboard", map[string]any{
		"date": today,
		"rows": len(rows),
	})
	return true, nil
}
