package extract

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ScoreboardRows builds the daily digest rows. It looks for the literal
// marker line, then slides a fixed-size window over every offset of the
// bounded block below it, keeping spans that pair a scoreline with two roster
// names. The tracked team is not required; any league game between roster
// teams qualifies. Rows keep first-seen order, dedup by exact formatted
// string and stop at the profile cap. No marker or zero rows means nil.
func (e *Extractor) ScoreboardRows(lines []string) []string {
	marker := -1
	for i, line := range lines {
		if strings.Contains(line, e.profile.ScoreboardMarker) {
			marker = i
			break
		}
	}
	if marker < 0 {
		return nil
	}

	block := lines[marker+1 : min(len(lines), marker+1+e.profile.ScoreboardScanLines)]

	var rows []string
	seen := make(map[string]bool)
	for i := range block {
		win := strings.Join(block[i:min(len(block), i+e.profile.ScoreboardSpanLines)], " ")
		m := scorePat.FindStringSubmatch(win)
		if m == nil {
			continue
		}
		home, away, ok := e.pairIn(win)
		if !ok {
			continue
		}
		scoreA, _ := strconv.Atoi(m[1])
		scoreB, _ := strconv.Atoi(m[2])
		row := fmt.Sprintf("%s %d - %d %s", home, scoreA, scoreB, away)
		if seen[row] {
			continue
		}
		seen[row] = true
		rows = append(rows, row)
		if len(rows) >= e.profile.ScoreboardMaxRows {
			break
		}
	}
	return rows
}

// pairIn returns the first two distinct roster names in the window by text
// position, so the row reads the way the page prints the game.
func (e *Extractor) pairIn(window string) (home, away string, ok bool) {
	type hit struct {
		pos  int
		name string
	}
	var hits []hit
	for i, pat := range e.rosterPats {
		if loc := pat.FindStringIndex(window); loc != nil {
			hits = append(hits, hit{pos: loc[0], name: e.profile.Roster[i]})
		}
	}
	if len(hits) < 2 {
		return "", "", false
	}
	sort.Slice(hits, func(a, b int) bool { return hits[a].pos < hits[b].pos })
	return hits[0].name, hits[1].name, true
}
