package normalize

import (
	"strings"

	"ftcscope/internal/catalog"
	"ftcscope/internal/model"
)

// titleWithEvent appends the event code to a table title when one is known.
func titleWithEvent(base string, event any) string {
	if code := asString(firstDefined(event, "event_code", "EventCode")); code != "" {
		return base + " - " + code
	}
	return base
}

func eventTeamsTables(raw any, _ catalog.Values) []model.Table {
	event := firstDefined(raw, "event", "Event")

	identity := model.Row{
		"Event": model.Text(eventDisplay(event)),
		"Year":  model.Text(asString(firstDefined(event, "year", "Year"))),
		"Location": model.Text(location(
			firstDefined(event, "city", "City"),
			firstDefined(event, "state_prov", "StateProv"),
			firstDefined(event, "country", "Country"))),
		"Dates": model.Text(dateRange(
			firstDefined(event, "date_start", "DateStart"),
			firstDefined(event, "date_end", "DateEnd"))),
	}

	teams := asSlice(firstDefined(event, "teams", "Teams"))
	teamRows := make([]model.Row, 0, len(teams))
	for _, team := range teams {
		teamRows = append(teamRows, model.Row{
			"Team Num":  model.Text(asString(firstDefined(team, "team_id", "TeamID"))),
			"Team Name": model.Text(asString(firstDefined(team, "name", "Name"))),
			"Location": model.Text(location(
				firstDefined(team, "city", "City"),
				firstDefined(team, "state_prov", "StateProv"),
				firstDefined(team, "country", "Country"))),
			"Region":      model.Text(asString(firstDefined(team, "home_region", "HomeRegion"))),
			"Rookie Year": model.Text(asString(firstDefined(team, "rookie_year", "RookieYear"))),
		})
	}

	return []model.Table{
		{
			Title:   "Event",
			Columns: []string{"Event", "Year", "Location", "Dates"},
			Rows:    []model.Row{identity},
		},
		{
			Title:   "Event Teams",
			Columns: []string{"Team Num", "Team Name", "Location", "Region", "Rookie Year"},
			Rows:    teamRows,
		},
	}
}

func dateRange(start, end any) string {
	var parts []string
	for _, v := range []any{start, end} {
		if s := formatDate(v); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " to ")
}

func eventRankingsTables(raw any, _ catalog.Values) []model.Table {
	event := firstDefined(raw, "event", "Event")
	rankings := asSlice(firstDefined(raw, "rankings", "Rankings"))
	rows := make([]model.Row, 0, len(rankings))
	for i, item := range rankings {
		team := firstDefined(item, "team", "Team")
		rows = append(rows, model.Row{
			"Rank":       model.Text(asString(float64(i + 1))),
			"Team Num":   model.Text(asString(firstDefined(team, "team_id", "TeamID"))),
			"Team Name":  model.Text(asString(firstDefined(team, "name", "Name"))),
			"RS":         model.Text(formatNumber(firstDefined(item, "sort_order1", "SortOrder1"))),
			"Match Pts":  model.Text(formatNumber(firstDefined(item, "sort_order2", "SortOrder2"))),
			"Base Pts":   model.Text(formatNumber(firstDefined(item, "sort_order3", "SortOrder3"))),
			"Auto Pts":   model.Text(formatNumber(firstDefined(item, "sort_order4", "SortOrder4"))),
			"High Score": model.Text(asString(firstDefined(item, "high_match_score", "HighMatchScore"))),
			"W-L-T":      model.Text(formatRecord(item)),
			"Matches":    model.Text(asString(firstDefined(item, "matches_played", "MatchesPlayed"))),
		})
	}
	return []model.Table{{
		Title:   titleWithEvent("Event Rankings", event),
		Columns: []string{"Rank", "Team Num", "Team Name", "RS", "Match Pts", "Base Pts", "Auto Pts", "High Score", "W-L-T", "Matches"},
		Rows:    rows,
	}}
}

func eventAwardsTables(raw any, _ catalog.Values) []model.Table {
	event := firstDefined(raw, "event", "Event")
	awards := asSlice(firstDefined(event, "awards", "Awards"))
	if awards == nil {
		awards = asSlice(firstDefined(raw, "awards", "Awards"))
	}
	rows := make([]model.Row, 0, len(awards))
	for _, item := range awards {
		team := firstDefined(item, "team", "Team")
		entry := model.Entry{
			Number: asString(firstDefined(team, "team_id", "TeamID")),
			Name:   asString(firstDefined(team, "name", "Name")),
		}
		rows = append(rows, model.Row{
			"Award Name": model.Text(asString(firstDefined(item, "name", "Name"))),
			"Team":       model.Text(entry.Display()),
		})
	}
	return []model.Table{{
		Title:   titleWithEvent("Event Awards", event),
		Columns: []string{"Award Name", "Team"},
		Rows:    rows,
	}}
}

func eventAdvancementTables(raw any, _ catalog.Values) []model.Table {
	event := firstDefined(raw, "event", "Event")
	advancements := asSlice(firstDefined(raw, "team_advancements", "TeamAdvancements"))
	rows := make([]model.Row, 0, len(advancements))
	for _, item := range advancements {
		team := firstDefined(item, "team", "Team")
		status := strings.ToLower(asString(firstDefined(item, "status", "Status")))
		advancing := "-"
		if status == "first" {
			advancing = "✓"
		}
		rows = append(rows, model.Row{
			"Rank":          model.Text(asString(firstDefined(item, "rank", "Rank"))),
			"Team Num":      model.Text(asString(firstDefined(team, "team_id", "TeamID"))),
			"Team Name":     model.Text(asString(firstDefined(team, "name", "Name"))),
			"Total Pts":     model.Text(asString(firstDefined(item, "total_points", "TotalPoints"))),
			"Judging":       model.Text(asString(firstDefined(item, "judging_points", "JudgingPoints"))),
			"Playoff":       model.Text(asString(firstDefined(item, "playoff_points", "PlayoffPoints"))),
			"Selection":     model.Text(asString(firstDefined(item, "selection_points", "SelectionPoints"))),
			"Qualification": model.Text(asString(firstDefined(item, "qualification_points", "QualificationPoints"))),
			"Adv #":         model.Text(asString(firstDefined(item, "advancement_number", "AdvancementNumber"))),
			"Advancing":     model.Text(advancing),
		})
	}
	return []model.Table{{
		Title:   titleWithEvent("Event Advancement", event),
		Columns: []string{"Rank", "Team Num", "Team Name", "Total Pts", "Judging", "Playoff", "Selection", "Qualification", "Adv #", "Advancing"},
		Rows:    rows,
	}}
}
