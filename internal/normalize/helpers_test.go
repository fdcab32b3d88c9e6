package normalize

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return v
}

func TestFirstDefinedPrefersSnakeCase(t *testing.T) {
	obj := decode(t, `{"team_id": 1, "TeamID": 2}`)
	if got := asString(firstDefined(obj, "team_id", "TeamID")); got != "1" {
		t.Fatalf("got %s", got)
	}
}

func TestFirstDefinedFallsBackToAlternate(t *testing.T) {
	obj := decode(t, `{"TeamID": 99}`)
	if got := asString(firstDefined(obj, "team_id", "TeamID")); got != "99" {
		t.Fatalf("got %s", got)
	}
}

func TestFirstDefinedNullCountsAsDefined(t *testing.T) {
	obj := decode(t, `{"team_id": null, "TeamID": 2}`)
	if got := firstDefined(obj, "team_id", "TeamID"); got != nil {
		t.Fatalf("null should win over the alternate key, got %v", got)
	}
}

func TestFirstDefinedOnNonObject(t *testing.T) {
	if got := firstDefined("scalar", "k"); got != nil {
		t.Fatalf("got %v", got)
	}
	if got := firstDefined(nil, "k"); got != nil {
		t.Fatalf("got %v", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{float64(3), "3.00"},
		{float64(12.345), "12.35"},
		{"7.5", "7.50"},
		{"abc", ""},
		{nil, ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := formatNumber(c.in); got != c.want {
			t.Fatalf("formatNumber(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatRecord(t *testing.T) {
	if got := formatRecord(decode(t, `{"wins": 3, "losses": 1, "ties": 0}`)); got != "3-1-0" {
		t.Fatalf("got %s", got)
	}
	if got := formatRecord(decode(t, `{"Wins": 5}`)); got != "5-0-0" {
		t.Fatalf("missing components should default to zero, got %s", got)
	}
	if got := formatRecord("not an object"); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := formatRecord(nil); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate("2025-03-14T09:00:00Z"); got != "2025-03-14" {
		t.Fatalf("got %s", got)
	}
	if got := formatDate("short"); got != "short" {
		t.Fatalf("got %s", got)
	}
	if got := formatDate(nil); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestMatchPhase(t *testing.T) {
	cases := []struct {
		payload string
		want    string
	}{
		{`{"tournamentLevel": "QUALIFICATION"}`, "qualification"},
		{`{"matchType": "Playoff Semifinal"}`, "playoff"},
		{`{"tournamentLevel": "Final"}`, "playoff"},
		{`{"TournamentLevel": "Quals", "MatchType": ""}`, "qualification"},
		{`{"tournamentLevel": "Practice"}`, ""},
		{`{}`, ""},
	}
	for _, c := range cases {
		if got := matchPhase(decode(t, c.payload)); got != c.want {
			t.Fatalf("phase(%s) = %q, want %q", c.payload, got, c.want)
		}
	}
}

func TestAllianceEntries(t *testing.T) {
	alliance := decode(t, `{"teams": [
		{"team_id": 12345, "name": "Robo"},
		{"TeamID": 678},
		{"name": "Nameless"},
		{}
	]}`)
	entries := allianceEntries(alliance)
	if len(entries) != 3 {
		t.Fatalf("entries: %d", len(entries))
	}
	if entries[0].Display() != "12345 - Robo" {
		t.Fatalf("display: %s", entries[0].Display())
	}
	if entries[1].Display() != "678" {
		t.Fatalf("display: %s", entries[1].Display())
	}
	if entries[2].Display() != "Nameless" {
		t.Fatalf("display: %s", entries[2].Display())
	}
}

func TestAllianceEntriesMalformed(t *testing.T) {
	if got := allianceEntries(nil); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
	if got := allianceEntries(decode(t, `{"teams": "oops"}`)); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestEventDisplay(t *testing.T) {
	if got := eventDisplay(decode(t, `{"event_code": "USNCCOQ", "name": "NC Qualifier"}`)); got != "USNCCOQ - NC Qualifier" {
		t.Fatalf("got %s", got)
	}
	if got := eventDisplay(nil); got != "" {
		t.Fatalf("got %q", got)
	}
}
