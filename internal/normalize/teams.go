package normalize

import (
	"ftcscope/internal/catalog"
	"ftcscope/internal/model"
)

func teamsTables(raw any, _ catalog.Values) []model.Table {
	teams := asSlice(raw)
	rows := make([]model.Row, 0, len(teams))
	for _, team := range teams {
		rows = append(rows, model.Row{
			"Team Num":  model.Text(asString(firstDefined(team, "team_id", "TeamID"))),
			"Team Name": model.Text(asString(firstDefined(team, "name", "Name"))),
			"Country":   model.Text(asString(firstDefined(team, "country", "Country"))),
			"Region":    model.Text(asString(firstDefined(team, "home_region", "HomeRegion"))),
			"Location": model.Text(location(
				firstDefined(team, "city", "City"),
				firstDefined(team, "state_prov", "StateProv"),
				firstDefined(team, "country", "Country"))),
			"Rookie Year": model.Text(asString(firstDefined(team, "rookie_year", "RookieYear"))),
		})
	}
	return []model.Table{{
		Title:   "Teams",
		Columns: []string{"Team Num", "Team Name", "Country", "Region", "Location", "Rookie Year"},
		Rows:    rows,
	}}
}

func teamDetailsTables(raw any, _ catalog.Values) []model.Table {
	summary := model.Row{
		"Team Num":  model.Text(asString(firstDefined(raw, "team_id", "TeamID"))),
		"Team Name": model.Text(asString(firstDefined(raw, "name", "Name"))),
		"Location": model.Text(location(
			firstDefined(raw, "city", "City"),
			firstDefined(raw, "state_prov", "StateProv"),
			firstDefined(raw, "country", "Country"))),
		"Region":               model.Text(asString(firstDefined(raw, "region", "Region"))),
		"Rookie Year":          model.Text(asString(firstDefined(raw, "rookie_year", "RookieYear"))),
		"Total Record":         model.Text(formatRecord(firstDefined(raw, "total_record", "TotalRecord"))),
		"Qualification Record": model.Text(formatRecord(firstDefined(raw, "qual_record", "QualRecord"))),
		"Playoff Record":       model.Text(formatRecord(firstDefined(raw, "playoff_record", "PlayoffRecord"))),
	}

	events := asSlice(firstDefined(raw, "events", "Events"))
	eventRows := make([]model.Row, 0, len(events))
	for _, item := range events {
		awards := asSlice(firstDefined(item, "awards", "Awards"))
		awardEntries := make([]model.Entry, 0, len(awards))
		for _, a := range awards {
			if s := asString(a); s != "" {
				awardEntries = append(awardEntries, model.Entry{Name: s})
			}
		}
		eventRows = append(eventRows, model.Row{
			"Event Code": model.Text(asString(firstDefined(item, "event_code", "EventCode"))),
			"Event Name": model.Text(asString(firstDefined(item, "event_name", "EventName"))),
			"Rank":       model.Text(asString(firstDefined(item, "qual_rank", "QualRank"))),
			"Total":      model.Text(formatRecord(firstDefined(item, "total_record", "TotalRecord"))),
			"Qual":       model.Text(formatRecord(firstDefined(item, "qual_record", "QualRecord"))),
			"Playoff":    model.Text(formatRecord(firstDefined(item, "playoff_record", "PlayoffRecord"))),
			"Advanced":   model.Text(checkmark(truthy(firstDefined(item, "advanced", "Advanced")))),
			"Awards":     model.List(awardEntries),
		})
	}

	return []model.Table{
		{
			Title:   "Team Summary",
			Columns: []string{"Team Num", "Team Name", "Location", "Region", "Rookie Year", "Total Record", "Qualification Record", "Playoff Record"},
			Rows:    []model.Row{summary},
		},
		{
			Title:   "Events",
			Columns: []string{"Event Code", "Event Name", "Rank", "Total", "Qual", "Playoff", "Advanced", "Awards"},
			Rows:    eventRows,
		},
	}
}

// truthy mirrors loose-JSON boolean coercion: false, nil, 0 and "" are
// false, everything else true.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}
