package query

import (
	"strings"
	"testing"

	"ftcscope/internal/catalog"
)

func view(t *testing.T, id string) catalog.View {
	t.Helper()
	v, ok := catalog.ViewByID(id)
	if !ok {
		t.Fatalf("unknown view %s", id)
	}
	return v
}

func TestBuildSubstitutesAndEncodes(t *testing.T) {
	got := Build("http://localhost:8080", view(t, "event-teams"), catalog.Values{
		"season":    "2025",
		"eventCode": "US NC/COQ",
		"limit":     "10",
	})
	want := "http://localhost:8080/v1/2025/events/US%20NC%2FCOQ/teams?limit=10"
	if got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestBuildLeavesNoPlaceholders(t *testing.T) {
	for _, v := range catalog.Views() {
		got := Build("http://api", v, catalog.DefaultValues())
		if strings.Contains(got, "{") || strings.Contains(got, "}") {
			t.Fatalf("view %s: unsubstituted placeholder in %s", v.ID, got)
		}
	}
}

func TestBuildOptionalSegmentDropped(t *testing.T) {
	got := Build("http://api", view(t, "teams"), catalog.Values{"season": "2025", "region": ""})
	if got != "http://api/v1/2025/teams" {
		t.Fatalf("got %s", got)
	}
	got = Build("http://api", view(t, "teams"), catalog.Values{"season": "2025", "region": "USCHS"})
	if got != "http://api/v1/2025/teams/USCHS" {
		t.Fatalf("got %s", got)
	}
}

func TestBuildRequiredPlaceholderAllowsEmpty(t *testing.T) {
	// Requiredness is Validate's concern; Build substitutes an empty segment.
	got := Build("http://api", view(t, "team-details"), catalog.Values{"season": "2025"})
	if got != "http://api/v1/2025/team/" {
		t.Fatalf("got %s", got)
	}
}

func TestBuildSkipsBlankQueryParams(t *testing.T) {
	got := Build("http://api", view(t, "team-rankings"), catalog.Values{
		"season":  "2025",
		"region":  "",
		"country": "USA",
		"limit":   "  ",
	})
	if got != "http://api/v1/2025/team-rankings?country=USA" {
		t.Fatalf("got %s", got)
	}
}

func TestBuildQueryParamsKeepDeclaredOrder(t *testing.T) {
	got := Build("http://api", view(t, "team-rankings"), catalog.Values{
		"season":  "2025",
		"region":  "USCHS",
		"country": "USA",
		"event":   "",
		"limit":   "5",
	})
	if got != "http://api/v1/2025/team-rankings?region=USCHS&country=USA&limit=5" {
		t.Fatalf("got %s", got)
	}
}

func TestBuildTeamRankingsRedirectsOnEvent(t *testing.T) {
	got := Build("http://api", view(t, "team-rankings"), catalog.Values{
		"season": "2025",
		"event":  "USNCCOQ",
	})
	if got != "http://api/v1/2025/team-event-rankings?event=USNCCOQ" {
		t.Fatalf("got %s", got)
	}
}

func TestBuildPhaseSuppressesLimit(t *testing.T) {
	values := catalog.Values{
		"season":    "2025",
		"eventCode": "USNCCOQ",
		"limit":     "25",
		"phase":     "playoff",
	}
	got := Build("http://api", view(t, "event-matches"), values)
	if got != "http://api/v1/2025/events/USNCCOQ/matches" {
		t.Fatalf("got %s", got)
	}
	values["phase"] = ""
	got = Build("http://api", view(t, "event-matches"), values)
	if got != "http://api/v1/2025/events/USNCCOQ/matches?limit=25" {
		t.Fatalf("got %s", got)
	}
}

func TestBuildTeamFilterNeverSent(t *testing.T) {
	got := Build("http://api", view(t, "event-matches"), catalog.Values{
		"season":    "2025",
		"eventCode": "USNCCOQ",
		"team":      "12345",
	})
	if strings.Contains(got, "team") {
		t.Fatalf("team filter leaked into URL: %s", got)
	}
}

func TestBuildStripsTrailingSlashFromBase(t *testing.T) {
	got := Build("http://api/ ", view(t, "all-advancement"), catalog.Values{"season": "2025"})
	if got != "http://api/v1/2025/advancement" {
		t.Fatalf("got %s", got)
	}
}
