package normalize

import (
	"strconv"
	"strings"

	"ftcscope/internal/catalog"
	"ftcscope/internal/model"
)

func eventMatchesTables(raw any, values catalog.Values) []model.Table {
	event := firstDefined(raw, "event", "Event")
	matches := asSlice(firstDefined(event, "matches", "Matches"))
	if matches == nil {
		matches = asSlice(firstDefined(raw, "matches", "Matches"))
	}

	// Post-filters compose in a fixed order: phase, team, then limit.
	matches = filterByPhase(matches, values.Get("phase"))
	matches = filterByTeam(matches, values.Get("team"))
	matches = truncate(matches, values.Get("limit"))

	rows := make([]model.Row, 0, len(matches))
	for _, match := range matches {
		red := firstDefined(match, "red_alliance", "RedAlliance")
		blue := firstDefined(match, "blue_alliance", "BlueAlliance")
		redScore, redOK := asFloat(firstDefined(firstDefined(red, "score", "Score"), "total_points", "TotalPoints"))
		blueScore, blueOK := asFloat(firstDefined(firstDefined(blue, "score", "Score"), "total_points", "TotalPoints"))

		score := ""
		if redOK && blueOK {
			score = asString(redScore) + "-" + asString(blueScore)
		}

		result := asString(firstDefined(match, "result", "Result"))
		if result == "" && redOK && blueOK {
			switch {
			case redScore > blueScore:
				result = "Red"
			case blueScore > redScore:
				result = "Blue"
			default:
				result = "Tie"
			}
		}

		rows = append(rows, model.Row{
			"Type":          model.Text(asString(firstDefined(match, "matchType", "MatchType"))),
			"Match #":       model.Text(asString(firstDefined(match, "matchNumber", "MatchNumber"))),
			"Red Alliance":  model.List(allianceEntries(red)),
			"Blue Alliance": model.List(allianceEntries(blue)),
			"Score":         model.Text(score),
			"Result":        model.Text(result),
		})
	}

	return []model.Table{{
		Title:   titleWithEvent("Event Matches", event),
		Columns: []string{"Type", "Match #", "Red Alliance", "Blue Alliance", "Score", "Result"},
		Rows:    rows,
	}}
}

func filterByPhase(matches []any, phase string) []any {
	phase = strings.ToLower(phase)
	if phase == "" {
		return matches
	}
	var out []any
	for _, m := range matches {
		if matchPhase(m) == phase {
			out = append(out, m)
		}
	}
	return out
}

// filterByTeam keeps matches whose red or blue roster contains a team whose
// number, compared as a string, equals the filter. Never sent to the server.
func filterByTeam(matches []any, team string) []any {
	if team == "" {
		return matches
	}
	var out []any
	for _, m := range matches {
		if rosterHasTeam(firstDefined(m, "red_alliance", "RedAlliance"), team) ||
			rosterHasTeam(firstDefined(m, "blue_alliance", "BlueAlliance"), team) {
			out = append(out, m)
		}
	}
	return out
}

func rosterHasTeam(alliance any, team string) bool {
	for _, e := range allianceEntries(alliance) {
		if e.Number == team {
			return true
		}
	}
	return false
}

// truncate keeps the first n matches when limit parses as a positive
// integer; anything else leaves the list untouched.
func truncate(matches []any, limit string) []any {
	n, err := strconv.Atoi(limit)
	if err != nil || n <= 0 {
		return matches
	}
	if n >= len(matches) {
		return matches
	}
	return matches[:n]
}
