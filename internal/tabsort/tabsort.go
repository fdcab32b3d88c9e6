// Package tabsort owns per-table sort state and ordering. Each rendered
// table gets its own State, recreated whenever a new result replaces the
// old one.
package tabsort

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"ftcscope/internal/model"
)

type Direction int

const (
	Descending Direction = iota
	Ascending
)

// State is the click-to-toggle state machine: no active column until the
// first toggle, then the active column with a direction.
type State struct {
	Column    string
	Direction Direction
}

// Toggle applies a header activation: the active column flips direction, a
// new column becomes active descending ("biggest first" for fresh picks).
func (s *State) Toggle(column string) {
	if s.Column == column {
		if s.Direction == Descending {
			s.Direction = Ascending
		} else {
			s.Direction = Descending
		}
		return
	}
	s.Column = column
	s.Direction = Descending
}

func (s State) Active() bool { return s.Column != "" }

// Indicator returns the header marker for a column: "▲"/"▼" when it is the
// active sort column, "" otherwise.
func (s State) Indicator(column string) string {
	if s.Column != column {
		return ""
	}
	if s.Direction == Ascending {
		return "▲"
	}
	return "▼"
}

// Sort orders rows by the active column. With no active column the input
// order is preserved as-is. Numeric cells compare numerically; everything
// else compares case-insensitively with numeric-aware string ordering, so
// "2" sorts before "10". Stable for equal keys. Absent cells compare as "".
func Sort(rows []model.Row, state State) []model.Row {
	if !state.Active() {
		return rows
	}
	out := make([]model.Row, len(rows))
	copy(out, rows)

	mult := 1
	if state.Direction == Descending {
		mult = -1
	}
	col := collate.New(language.Und, collate.Numeric, collate.Loose)

	sort.SliceStable(out, func(i, j int) bool {
		return compare(out[i].Get(state.Column), out[j].Get(state.Column), col)*mult < 0
	})
	return out
}

func compare(left, right string, col *collate.Collator) int {
	ln, lok := parseFinite(left)
	rn, rok := parseFinite(right)
	if lok && rok {
		switch {
		case ln < rn:
			return -1
		case ln > rn:
			return 1
		default:
			return 0
		}
	}
	return col.CompareString(left, right)
}

func parseFinite(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
