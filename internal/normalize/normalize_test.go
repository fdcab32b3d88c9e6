package normalize

import (
	"testing"

	"ftcscope/internal/catalog"
)

func TestUnknownViewYieldsEmpty(t *testing.T) {
	if got := Tables("not-a-view", decode(t, `{"a": 1}`), catalog.Values{}); len(got) != 0 {
		t.Fatalf("got %d tables", len(got))
	}
}

func TestEveryCatalogViewHasTransform(t *testing.T) {
	for _, v := range catalog.Views() {
		if _, ok := transforms[v.ID]; !ok {
			t.Fatalf("view %s has no registered transform", v.ID)
		}
	}
}

func TestTeamsDualKeyPopulatesTeamNum(t *testing.T) {
	raw := decode(t, `[{"TeamID": 4242, "Name": "Alt Cased"}]`)
	tables := Tables("teams", raw, catalog.Values{})
	if len(tables) != 1 || len(tables[0].Rows) != 1 {
		t.Fatalf("tables: %v", tables)
	}
	if got := tables[0].Rows[0].Get("Team Num"); got != "4242" {
		t.Fatalf("Team Num: %q", got)
	}
}

func TestTeamsMalformedPayloadDegrades(t *testing.T) {
	tables := Tables("teams", decode(t, `{"unexpected": "object"}`), catalog.Values{})
	if len(tables) != 1 || len(tables[0].Rows) != 0 {
		t.Fatalf("tables: %v", tables)
	}
}

func TestTeamDetailsTableOrder(t *testing.T) {
	raw := decode(t, `{
		"team_id": 12345, "name": "Robo", "city": "Cary", "state_prov": "NC", "country": "USA",
		"rookie_year": 2019,
		"total_record": {"wins": 10, "losses": 2, "ties": 1},
		"events": [{"event_code": "USNCCOQ", "event_name": "Qualifier", "qual_rank": 3,
			"advanced": true, "awards": ["Inspire Award"]}]
	}`)
	tables := Tables("team-details", raw, catalog.Values{})
	if len(tables) != 2 {
		t.Fatalf("tables: %d", len(tables))
	}
	if tables[0].Title != "Team Summary" || tables[1].Title != "Events" {
		t.Fatalf("order: %s, %s", tables[0].Title, tables[1].Title)
	}
	summary := tables[0].Rows[0]
	if got := summary.Get("Location"); got != "Cary, NC, USA" {
		t.Fatalf("location: %q", got)
	}
	if got := summary.Get("Total Record"); got != "10-2-1" {
		t.Fatalf("record: %q", got)
	}
	ev := tables[1].Rows[0]
	if got := ev.Get("Advanced"); got != "✓" {
		t.Fatalf("advanced: %q", got)
	}
	if got := ev.Get("Awards"); got != "Inspire Award" {
		t.Fatalf("awards: %q", got)
	}
}

func TestEventTeamsTwoTables(t *testing.T) {
	raw := decode(t, `{"event": {
		"event_code": "USNCCOQ", "name": "Qualifier", "year": 2025,
		"city": "Cary", "state_prov": "NC", "country": "USA",
		"date_start": "2025-03-14T08:00:00Z", "date_end": "2025-03-15T17:00:00Z",
		"teams": [{"team_id": 1, "name": "One", "home_region": "USCHS"}]
	}}`)
	tables := Tables("event-teams", raw, catalog.Values{})
	if len(tables) != 2 {
		t.Fatalf("tables: %d", len(tables))
	}
	identity := tables[0].Rows[0]
	if got := identity.Get("Event"); got != "USNCCOQ - Qualifier" {
		t.Fatalf("event: %q", got)
	}
	if got := identity.Get("Dates"); got != "2025-03-14 to 2025-03-15" {
		t.Fatalf("dates: %q", got)
	}
	if got := tables[1].Rows[0].Get("Region"); got != "USCHS" {
		t.Fatalf("region: %q", got)
	}
}

func TestEventRankings(t *testing.T) {
	raw := decode(t, `{"event": {"event_code": "USNCCOQ"}, "rankings": [
		{"team": {"team_id": 7, "name": "Seven"}, "sort_order1": 4.5,
		 "wins": 5, "losses": 1, "ties": 0, "high_match_score": 212, "matches_played": 6}
	]}`)
	tables := Tables("event-rankings", raw, catalog.Values{})
	if len(tables) != 1 {
		t.Fatalf("tables: %d", len(tables))
	}
	if tables[0].Title != "Event Rankings - USNCCOQ" {
		t.Fatalf("title: %s", tables[0].Title)
	}
	row := tables[0].Rows[0]
	if got := row.Get("Rank"); got != "1" {
		t.Fatalf("rank: %q", got)
	}
	if got := row.Get("RS"); got != "4.50" {
		t.Fatalf("rs: %q", got)
	}
	if got := row.Get("W-L-T"); got != "5-1-0" {
		t.Fatalf("wlt: %q", got)
	}
}

func TestEventAwardsFallsBackToTopLevel(t *testing.T) {
	raw := decode(t, `{"awards": [{"name": "Inspire Award", "team": {"team_id": 9, "name": "Nine"}}]}`)
	tables := Tables("event-awards", raw, catalog.Values{})
	row := tables[0].Rows[0]
	if got := row.Get("Award Name"); got != "Inspire Award" {
		t.Fatalf("award: %q", got)
	}
	if got := row.Get("Team"); got != "9 - Nine" {
		t.Fatalf("team: %q", got)
	}
}

func TestEventAdvancementMarksFirstOnly(t *testing.T) {
	raw := decode(t, `{"team_advancements": [
		{"team": {"team_id": 1}, "status": "FIRST", "advances": true, "rank": 1},
		{"team": {"team_id": 2}, "status": "already_advanced", "advances": true, "rank": 2},
		{"team": {"team_id": 3}, "advances": false, "rank": 3}
	]}`)
	tables := Tables("event-advancement", raw, catalog.Values{})
	rows := tables[0].Rows
	if got := rows[0].Get("Advancing"); got != "✓" {
		t.Fatalf("first: %q", got)
	}
	if got := rows[1].Get("Advancing"); got != "-" {
		t.Fatalf("already advanced: %q", got)
	}
	if got := rows[2].Get("Advancing"); got != "-" {
		t.Fatalf("not advancing: %q", got)
	}
}

func TestTeamRankingsRegionMode(t *testing.T) {
	raw := decode(t, `[{"team_id": 11, "team_name": "Eleven", "region": "USCHS",
		"matches": 12, "ccwm": 1.5, "opr": 2, "np_opr": 3, "dpr": 4, "np_dpr": 5, "np_avg": 6}]`)
	tables := Tables("team-rankings", raw, catalog.Values{})
	if tables[0].Title != "Team Rankings" {
		t.Fatalf("title: %s", tables[0].Title)
	}
	for _, c := range tables[0].Columns {
		if c == "Event" {
			t.Fatalf("Event column present outside event mode")
		}
	}
	if got := tables[0].Rows[0].Get("OPR"); got != "2.00" {
		t.Fatalf("opr: %q", got)
	}
}

func TestTeamRankingsEventMode(t *testing.T) {
	raw := decode(t, `[{"TeamID": 11, "TeamName": "Eleven", "EventCode": "USNCCOQ", "OPR": 7.125}]`)
	tables := Tables("team-rankings", raw, catalog.Values{"event": "USNCCOQ"})
	if tables[0].Title != "Team Event Rankings" {
		t.Fatalf("title: %s", tables[0].Title)
	}
	row := tables[0].Rows[0]
	if got := row.Get("Event"); got != "USNCCOQ" {
		t.Fatalf("event: %q", got)
	}
	if got := row.Get("OPR"); got != "7.13" {
		t.Fatalf("opr: %q", got)
	}
}

func TestRegionAdvancement(t *testing.T) {
	raw := decode(t, `{"region_code": "USCHS", "team_advancements": [{
		"team": {"team_id": 5, "name": "Five"},
		"advancing_event": {"event_code": "USNCCOQ", "name": "Qualifier"},
		"advancing_event_awards": [{"name": "Inspire Award"}, {"noname": true}],
		"other_event_participations": [{"event": {"event_code": "USNCSCR", "name": "Scrimmage"}}]
	}]}`)
	tables := Tables("region-advancement", raw, catalog.Values{})
	if tables[0].Title != "Region Advancement - USCHS" {
		t.Fatalf("title: %s", tables[0].Title)
	}
	row := tables[0].Rows[0]
	if got := row.Get("Advancing Event"); got != "USNCCOQ - Qualifier" {
		t.Fatalf("advancing event: %q", got)
	}
	if got := row["Advancing Awards"]; len(got.Entries) != 1 || got.Entries[0].Name != "Inspire Award" {
		t.Fatalf("awards: %v", got.Entries)
	}
	if got := row.Get("Other Events"); got != "USNCSCR - Scrimmage" {
		t.Fatalf("other events: %q", got)
	}
}

func TestAllAdvancement(t *testing.T) {
	raw := decode(t, `{"region_code": "USCHS", "event_summaries": [{
		"event": {"event_code": "USNCCOQ", "name": "Qualifier", "date_start": "2025-03-14T08:00:00Z"},
		"qualified_teams": [
			{"team": {"team_id": 1, "name": "One"}},
			{"team": {"team_id": 2}}
		]
	}]}`)
	tables := Tables("all-advancement", raw, catalog.Values{})
	if tables[0].Title != "Advancement Summary - USCHS" {
		t.Fatalf("title: %s", tables[0].Title)
	}
	row := tables[0].Rows[0]
	if got := row.Get("Qualified Teams"); got != "2" {
		t.Fatalf("count: %q", got)
	}
	if got := row.Get("Date"); got != "2025-03-14" {
		t.Fatalf("date: %q", got)
	}
	if got := row["Teams"]; len(got.Entries) != 2 || got.Entries[0].Display() != "1 - One" {
		t.Fatalf("teams: %v", got.Entries)
	}
}
