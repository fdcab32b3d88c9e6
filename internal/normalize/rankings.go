package normalize

import (
	"ftcscope/internal/catalog"
	"ftcscope/internal/model"
)

func teamRankingsTables(raw any, values catalog.Values) []model.Table {
	items := asSlice(raw)
	eventMode := values.Get("event") != ""

	title := "Team Rankings"
	columns := []string{"Rank", "Team Num", "Team Name", "Region", "Matches", "CCWM", "OPR", "npOPR", "DPR", "npDPR", "npAVG"}
	if eventMode {
		title = "Team Event Rankings"
		columns = []string{"Rank", "Team Num", "Team Name", "Region", "Event", "Matches", "CCWM", "OPR", "npOPR", "DPR", "npDPR", "npAVG"}
	}

	rows := make([]model.Row, 0, len(items))
	for i, item := range items {
		row := model.Row{
			"Rank":      model.Text(asString(float64(i + 1))),
			"Team Num":  model.Text(asString(firstDefined(item, "team_id", "TeamID"))),
			"Team Name": model.Text(asString(firstDefined(item, "team_name", "TeamName"))),
			"Region":    model.Text(asString(firstDefined(item, "region", "Region"))),
			"Matches":   model.Text(asString(firstDefined(item, "matches", "Matches"))),
			"CCWM":      model.Text(formatNumber(firstDefined(item, "ccwm", "CCWM"))),
			"OPR":       model.Text(formatNumber(firstDefined(item, "opr", "OPR"))),
			"npOPR":     model.Text(formatNumber(firstDefined(item, "np_opr", "NpOPR"))),
			"DPR":       model.Text(formatNumber(firstDefined(item, "dpr", "DPR"))),
			"npDPR":     model.Text(formatNumber(firstDefined(item, "np_dpr", "NpDPR"))),
			"npAVG":     model.Text(formatNumber(firstDefined(item, "np_avg", "NpAVG"))),
		}
		if eventMode {
			row["Event"] = model.Text(asString(firstDefined(item, "event_code", "EventCode")))
		}
		rows = append(rows, row)
	}

	return []model.Table{{Title: title, Columns: columns, Rows: rows}}
}
