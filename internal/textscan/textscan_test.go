package textscan

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Capitals  3 - 2\tWarriors", "Capitals 3 - 2 Warriors"},
		{"  leading and trailing  ", "leading and trailing"},
		{"\t\n  \t", ""},
		{"already clean", "already clean"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLinesKeepsOrderAndDropsBlanks(t *testing.T) {
	raw := "First   line\n\n   \nSecond\tline\nThird line\n"

	lines := Lines(raw)

	want := []string{"First line", "Second line", "Third line"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %v, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestLinesNeverEmptyOrDoubleSpaced(t *testing.T) {
	raw := "a  b\n\n\n c\t\td \n   \n e\n"
	for i, l := range Lines(raw) {
		if l == "" {
			t.Errorf("line %d is empty", i)
		}
		if strings.Contains(l, "  ") {
			t.Errorf("line %d contains a double space: %q", i, l)
		}
		if l != strings.TrimSpace(l) {
			t.Errorf("line %d has untrimmed whitespace: %q", i, l)
		}
	}
}

func TestWordPatternMatchesWholeWordsOnly(t *testing.T) {
	pat := WordPattern("Capitals")

	for _, s := range []string{"Capitals win", "go Capitals!", "Warriors 2 - 3 Capitals"} {
		if !pat.MatchString(s) {
			t.Errorf("expected match in %q", s)
		}
	}
	for _, s := range []string{"Capitalsburg derby", "their capitals", "RecapitalsXYZ"} {
		if pat.MatchString(s) {
			t.Errorf("unexpected match in %q", s)
		}
	}
}

func TestWindowsClampAtPageEdges(t *testing.T) {
	lines := []string{
		"Capitals on line zero",
		"one",
		"two",
		"three",
		"Capitals again near the end",
	}

	wins := Windows(lines, "Capitals", 4, 10)
	if len(wins) != 2 {
		t.Fatalf("got %d windows, want 2", len(wins))
	}

	if wins[0].Anchor != 0 {
		t.Errorf("first anchor = %d, want 0", wins[0].Anchor)
	}
	if !strings.HasPrefix(wins[0].Text, "Capitals on line zero") {
		t.Errorf("first window does not start at line zero: %q", wins[0].Text)
	}

	if wins[1].Anchor != 4 {
		t.Errorf("second anchor = %d, want 4", wins[1].Anchor)
	}
	if !strings.HasSuffix(wins[1].Text, "Capitals again near the end") {
		t.Errorf("second window does not end at the last line: %q", wins[1].Text)
	}
}

func TestWindowsOverlapForNearbyAnchors(t *testing.T) {
	lines := []string{
		"Capitals beat someone",
		"filler",
		"Capitals host someone else",
	}

	wins := Windows(lines, "Capitals", 4, 10)
	if len(wins) != 2 {
		t.Fatalf("got %d windows, want 2", len(wins))
	}
	for _, w := range wins {
		if !strings.Contains(w.Text, "filler") {
			t.Errorf("window anchored at %d should cover the shared line: %q", w.Anchor, w.Text)
		}
	}
}

func TestWindowsNoAnchorsNoWindows(t *testing.T) {
	if wins := Windows([]string{"Warriors 4 - 1 Rockets"}, "Capitals", 4, 10); len(wins) != 0 {
		t.Fatalf("expected no windows, got %v", wins)
	}
}
