// Package normalize turns raw API payloads into render-ready tables, one
// registered transform per view id. No transform may fail: missing or
// oddly-cased fields fall back to neutral values and malformed sections
// degrade to empty rows.
package normalize

import (
	"ftcscope/internal/catalog"
	"ftcscope/internal/model"
)

// Transform converts one view's raw payload into its ordered tables.
type Transform func(raw any, values catalog.Values) []model.Table

var transforms = map[string]Transform{
	"teams":              teamsTables,
	"team-details":       teamDetailsTables,
	"event-teams":        eventTeamsTables,
	"event-rankings":     eventRankingsTables,
	"event-awards":       eventAwardsTables,
	"event-advancement":  eventAdvancementTables,
	"event-matches":      eventMatchesTables,
	"team-rankings":      teamRankingsTables,
	"region-advancement": regionAdvancementTables,
	"all-advancement":    allAdvancementTables,
}

// Tables dispatches to the view's registered transform. Unknown view ids
// yield an empty list, a forward-compatible no-op rather than an error.
func Tables(viewID string, raw any, values catalog.Values) []model.Table {
	t, ok := transforms[viewID]
	if !ok {
		return nil
	}
	return t(raw, values)
}
