package normalize

import (
	"math"
	"strconv"
	"strings"

	"ftcscope/internal/model"
)

// firstDefined returns the first key present on obj, trying the primary
// lowercase-snake spelling first and the capitalized alternate second. The
// upstream API has shipped both casings of the same logical fields, so every
// payload read goes through here. A present-but-null value counts as defined.
func firstDefined(obj any, keys ...string) any {
	m, ok := obj.(map[string]any)
	if !ok {
		return nil
	}
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return nil
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

// asString renders a loosely-typed scalar for display. Whole-number floats
// (the default JSON decoding of every number) print without a decimal part.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// formatNumber renders rating-like values with exactly two fractional
// digits; anything non-numeric or absent renders empty, never "NaN".
func formatNumber(v any) string {
	f, ok := asFloat(v)
	if !ok {
		return ""
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// formatRecord renders a win/loss/tie record object as "W-L-T", with zero
// standing in for any missing component. Non-objects render empty.
func formatRecord(v any) string {
	m := asMap(v)
	if m == nil {
		return ""
	}
	part := func(keys ...string) string {
		if s := asString(firstDefined(m, keys...)); s != "" {
			return s
		}
		return "0"
	}
	return part("wins", "Wins") + "-" + part("losses", "Losses") + "-" + part("ties", "Ties")
}

// formatDate keeps the calendar-date prefix of a timestamp string.
func formatDate(v any) string {
	s := asString(v)
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}

// matchPhase classifies a match by its level/type descriptors: anything
// mentioning "qual" is qualification, "playoff" or "final" is playoff,
// everything else is unclassified.
func matchPhase(match any) string {
	descriptor := strings.ToLower(
		asString(firstDefined(match, "tournamentLevel", "TournamentLevel")) + " " +
			asString(firstDefined(match, "matchType", "MatchType")))
	if strings.Contains(descriptor, "qual") {
		return "qualification"
	}
	if strings.Contains(descriptor, "playoff") || strings.Contains(descriptor, "final") {
		return "playoff"
	}
	return ""
}

// allianceEntries renders an alliance roster as ordered {number, name}
// entries, dropping entries with neither present.
func allianceEntries(alliance any) []model.Entry {
	teams := asSlice(firstDefined(alliance, "teams", "Teams"))
	out := make([]model.Entry, 0, len(teams))
	for _, team := range teams {
		e := model.Entry{
			Number: asString(firstDefined(team, "team_id", "TeamID")),
			Name:   asString(firstDefined(team, "name", "Name")),
		}
		if e.Number == "" && e.Name == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

// eventDisplay renders an event reference as "CODE - Name".
func eventDisplay(event any) string {
	if asMap(event) == nil {
		return ""
	}
	code := asString(firstDefined(event, "event_code", "EventCode"))
	name := asString(firstDefined(event, "name", "Name"))
	return strings.TrimSpace(code + " - " + name)
}

// location joins city/state/country, skipping blanks.
func location(parts ...any) string {
	var nonEmpty []string
	for _, p := range parts {
		if s := asString(p); s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

func checkmark(b bool) string {
	if b {
		return "✓"
	}
	return ""
}
