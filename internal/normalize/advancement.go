package normalize

import (
	"ftcscope/internal/catalog"
	"ftcscope/internal/model"
)

func regionAdvancementTables(raw any, _ catalog.Values) []model.Table {
	advancements := asSlice(firstDefined(raw, "team_advancements", "TeamAdvancements"))
	rows := make([]model.Row, 0, len(advancements))
	for _, item := range advancements {
		team := firstDefined(item, "team", "Team")

		awards := asSlice(firstDefined(item, "advancing_event_awards", "AdvancingEventAwards"))
		awardEntries := make([]model.Entry, 0, len(awards))
		for _, a := range awards {
			if name := asString(firstDefined(a, "name", "Name")); name != "" {
				awardEntries = append(awardEntries, model.Entry{Name: name})
			}
		}

		others := asSlice(firstDefined(item, "other_event_participations", "OtherEventParticipations"))
		otherEntries := make([]model.Entry, 0, len(others))
		for _, o := range others {
			if display := eventDisplay(firstDefined(o, "event", "Event")); display != "" {
				otherEntries = append(otherEntries, model.Entry{Name: display})
			}
		}

		rows = append(rows, model.Row{
			"Team Num":         model.Text(asString(firstDefined(team, "team_id", "TeamID"))),
			"Team Name":        model.Text(asString(firstDefined(team, "name", "Name"))),
			"Advancing Event":  model.Text(eventDisplay(firstDefined(item, "advancing_event", "AdvancingEvent"))),
			"Advancing Awards": model.List(awardEntries),
			"Other Events":     model.List(otherEntries),
		})
	}

	title := "Region Advancement"
	if code := asString(firstDefined(raw, "region_code", "RegionCode")); code != "" {
		title += " - " + code
	}
	return []model.Table{{
		Title:   title,
		Columns: []string{"Team Num", "Team Name", "Advancing Event", "Advancing Awards", "Other Events"},
		Rows:    rows,
	}}
}

func allAdvancementTables(raw any, _ catalog.Values) []model.Table {
	summaries := asSlice(firstDefined(raw, "event_summaries", "EventSummaries"))
	rows := make([]model.Row, 0, len(summaries))
	for _, item := range summaries {
		event := firstDefined(item, "event", "Event")
		qualified := asSlice(firstDefined(item, "qualified_teams", "QualifiedTeams"))

		teamEntries := make([]model.Entry, 0, len(qualified))
		for _, q := range qualified {
			team := firstDefined(q, "team", "Team")
			e := model.Entry{
				Number: asString(firstDefined(team, "team_id", "TeamID")),
				Name:   asString(firstDefined(team, "name", "Name")),
			}
			if e.Number == "" && e.Name == "" {
				continue
			}
			teamEntries = append(teamEntries, e)
		}

		rows = append(rows, model.Row{
			"Event Code":      model.Text(asString(firstDefined(event, "event_code", "EventCode"))),
			"Event Name":      model.Text(asString(firstDefined(event, "name", "Name"))),
			"Date":            model.Text(formatDate(firstDefined(event, "date_start", "DateStart"))),
			"Qualified Teams": model.Text(asString(float64(len(qualified)))),
			"Teams":           model.List(teamEntries),
		})
	}

	title := "Advancement Summary"
	if code := asString(firstDefined(raw, "region_code", "RegionCode")); code != "" {
		title += " - " + code
	}
	return []model.Table{{
		Title:   title,
		Columns: []string{"Event Code", "Event Name", "Date", "Qualified Teams", "Teams"},
		Rows:    rows,
	}}
}
