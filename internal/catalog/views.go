package catalog

import (
	"sort"
	"strings"
)

// Redirect swaps in an alternate path template when a field is non-blank,
// evaluated before placeholder substitution.
type Redirect struct {
	WhenNonBlank string
	PathTemplate string
}

// Suppression drops a query parameter entirely while another field is
// non-blank, evaluated before the non-empty check.
type Suppression struct {
	Param        string
	WhenNonBlank string
}

// View is one declaratively-configured request/response shape.
type View struct {
	ID             string
	Label          string
	PathTemplate   string
	PathParams     []string
	QueryParams    []string
	LocalParams    []string
	RequiredFields []string
	Redirect       *Redirect
	Suppressions   []Suppression
}

var views = []View{
	{
		ID:             "teams",
		Label:          "Teams",
		PathTemplate:   "/v1/{season}/teams/{region?}",
		PathParams:     []string{"season", "region"},
		QueryParams:    []string{"limit"},
		RequiredFields: []string{"season"},
	},
	{
		ID:             "team-details",
		Label:          "Team Details",
		PathTemplate:   "/v1/{season}/team/{teamId}",
		PathParams:     []string{"season", "teamId"},
		RequiredFields: []string{"season", "teamId"},
	},
	{
		ID:             "event-teams",
		Label:          "Event Teams",
		PathTemplate:   "/v1/{season}/events/{eventCode}/teams",
		PathParams:     []string{"season", "eventCode"},
		QueryParams:    []string{"limit"},
		RequiredFields: []string{"season", "eventCode"},
	},
	{
		ID:             "event-rankings",
		Label:          "Qualification Rankings",
		PathTemplate:   "/v1/{season}/events/{eventCode}/rankings",
		PathParams:     []string{"season", "eventCode"},
		QueryParams:    []string{"limit"},
		RequiredFields: []string{"season", "eventCode"},
	},
	{
		ID:             "event-awards",
		Label:          "Event Awards",
		PathTemplate:   "/v1/{season}/events/{eventCode}/awards",
		PathParams:     []string{"season", "eventCode"},
		QueryParams:    []string{"limit"},
		RequiredFields: []string{"season", "eventCode"},
	},
	{
		ID:             "event-advancement",
		Label:          "Event Advancement",
		PathTemplate:   "/v1/{season}/events/{eventCode}/advancement",
		PathParams:     []string{"season", "eventCode"},
		RequiredFields: []string{"season", "eventCode"},
	},
	{
		ID:             "event-matches",
		Label:          "Event Matches",
		PathTemplate:   "/v1/{season}/events/{eventCode}/matches",
		PathParams:     []string{"season", "eventCode"},
		QueryParams:    []string{"limit"},
		LocalParams:    []string{"phase", "team"},
		RequiredFields: []string{"season", "eventCode"},
		Suppressions:   []Suppression{{Param: "limit", WhenNonBlank: "phase"}},
	},
	{
		ID:             "team-rankings",
		Label:          "Team Rankings",
		PathTemplate:   "/v1/{season}/team-rankings",
		PathParams:     []string{"season"},
		QueryParams:    []string{"region", "country", "event", "limit"},
		RequiredFields: []string{"season"},
		Redirect:       &Redirect{WhenNonBlank: "event", PathTemplate: "/v1/{season}/team-event-rankings"},
	},
	{
		ID:             "region-advancement",
		Label:          "Team Advancement",
		PathTemplate:   "/v1/{season}/regions/{region}/advancement",
		PathParams:     []string{"season", "region"},
		RequiredFields: []string{"season", "region"},
	},
	{
		ID:             "all-advancement",
		Label:          "Advancement Summary",
		PathTemplate:   "/v1/{season}/advancement",
		PathParams:     []string{"season"},
		QueryParams:    []string{"region"},
		RequiredFields: []string{"season"},
	},
}

// Views returns the catalog sorted by label, case-insensitive.
func Views() []View {
	out := make([]View, len(views))
	copy(out, views)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Label) < strings.ToLower(out[j].Label)
	})
	return out
}

func ViewByID(id string) (View, bool) {
	for _, v := range views {
		if v.ID == id {
			return v, true
		}
	}
	return View{}, false
}

// Fields returns the ordered field names the UI renders for a view:
// path params, then query params, then local params.
func (v View) Fields() []string {
	out := make([]string, 0, len(v.PathParams)+len(v.QueryParams)+len(v.LocalParams))
	out = append(out, v.PathParams...)
	out = append(out, v.QueryParams...)
	out = append(out, v.LocalParams...)
	return out
}

// Suppressed reports whether a query parameter is excluded for the current
// values by one of the view's declared rules.
func (v View) Suppressed(param string, values Values) bool {
	for _, s := range v.Suppressions {
		if s.Param == param && values.Get(s.WhenNonBlank) != "" {
			return true
		}
	}
	return false
}
