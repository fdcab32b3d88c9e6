// mockapi serves randomized, shape-correct responses for every endpoint the
// explorer knows, so the TUI can be exercised without the real service.
// Responses randomly alternate between snake_case and CapitalCase field
// names to exercise the client's tolerant decoding.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"
)

var teamNames = []string{
	"Gear Grinders", "Circuit Breakers", "Iron Eagles", "Quantum Foxes",
	"Servo Squad", "Binary Bandits", "Torque Titans", "Null Pointers",
	"Omega Drive", "Static Shock", "Cobalt Crew", "Delta Volt",
}

var awardNames = []string{
	"Inspire Award", "Think Award", "Connect Award", "Innovate Award",
	"Control Award", "Motivate Award", "Design Award",
}

var cities = []string{"Richmond", "Norfolk", "Roanoke", "Arlington", "Chantilly"}

type gen struct {
	r     *rand.Rand
	snake bool
}

// key picks the casing for this response; both spellings must decode the
// same way on the client.
func (g *gen) key(snake, capital string) string {
	if g.snake {
		return snake
	}
	return capital
}

func (g *gen) team(num int) map[string]any {
	return map[string]any{
		g.key("team_id", "TeamID"):         num,
		g.key("name", "Name"):              teamNames[g.r.Intn(len(teamNames))],
		g.key("city", "City"):              cities[g.r.Intn(len(cities))],
		g.key("state_prov", "StateProv"):   "VA",
		g.key("country", "Country"):        "USA",
		g.key("home_region", "HomeRegion"): "USCHS",
		g.key("rookie_year", "RookieYear"): 2005 + g.r.Intn(20),
	}
}

func (g *gen) record() map[string]any {
	return map[string]any{
		g.key("wins", "Wins"):     g.r.Intn(10),
		g.key("losses", "Losses"): g.r.Intn(10),
		g.key("ties", "Ties"):     g.r.Intn(3),
	}
}

func (g *gen) event(code string) map[string]any {
	return map[string]any{
		g.key("event_code", "EventCode"): code,
		g.key("name", "Name"):            code + " Qualifier",
		g.key("year", "Year"):            2025,
		g.key("city", "City"):            cities[g.r.Intn(len(cities))],
		g.key("state_prov", "StateProv"): "VA",
		g.key("country", "Country"):      "USA",
		g.key("date_start", "DateStart"): "2025-11-08T08:00:00Z",
		g.key("date_end", "DateEnd"):     "2025-11-09T17:00:00Z",
	}
}

func (g *gen) alliance() map[string]any {
	teams := make([]any, 2)
	for i := range teams {
		teams[i] = g.team(100 + g.r.Intn(9900))
	}
	return map[string]any{
		g.key("teams", "Teams"): teams,
		g.key("score", "Score"): map[string]any{
			g.key("total_points", "TotalPoints"): g.r.Intn(200),
		},
	}
}

func (g *gen) match(n int) map[string]any {
	typ := "QUALIFICATION"
	if g.r.Intn(4) == 0 {
		typ = "PLAYOFF"
	}
	return map[string]any{
		g.key("matchType", "MatchType"):             typ,
		g.key("matchNumber", "MatchNumber"):         n,
		g.key("red_alliance", "RedAlliance"):        g.alliance(),
		g.key("blue_alliance", "BlueAlliance"):      g.alliance(),
		g.key("tournamentLevel", "TournamentLevel"): typ,
	}
}

func (g *gen) advancement(rank int) map[string]any {
	status := "first"
	if g.r.Intn(3) > 0 {
		status = "pending"
	}
	return map[string]any{
		g.key("rank", "Rank"):                                rank,
		g.key("team", "Team"):                                g.team(100 + g.r.Intn(9900)),
		g.key("status", "Status"):                            status,
		g.key("total_points", "TotalPoints"):                 g.r.Intn(120),
		g.key("judging_points", "JudgingPoints"):             g.r.Intn(40),
		g.key("playoff_points", "PlayoffPoints"):             g.r.Intn(40),
		g.key("selection_points", "SelectionPoints"):         g.r.Intn(20),
		g.key("qualification_points", "QualificationPoints"): g.r.Intn(40),
		g.key("advancement_number", "AdvancementNumber"):     rank,
	}
}

func (g *gen) ranking(i int, withEvent bool, eventCode string) map[string]any {
	m := map[string]any{
		g.key("team_id", "TeamID"):                  100 + g.r.Intn(9900),
		g.key("team_name", "TeamName"):              teamNames[g.r.Intn(len(teamNames))],
		g.key("region", "Region"):                   "USCHS",
		g.key("matches", "Matches"):                 5 + g.r.Intn(10),
		g.key("ccwm", "CCWM"):                       g.r.Float64() * 50,
		g.key("opr", "OPR"):                         g.r.Float64() * 100,
		g.key("np_opr", "NpOPR"):                    g.r.Float64() * 80,
		g.key("dpr", "DPR"):                         g.r.Float64() * 60,
		g.key("np_dpr", "NpDPR"):                    g.r.Float64() * 50,
		g.key("np_avg", "NpAVG"):                    g.r.Float64() * 90,
		g.key("sort_order1", "SortOrder1"):          g.r.Float64() * 10,
		g.key("sort_order2", "SortOrder2"):          g.r.Float64() * 100,
		g.key("high_match_score", "HighMatchScore"): 100 + g.r.Intn(100),
		g.key("matches_played", "MatchesPlayed"):    5 + g.r.Intn(5),
	}
	if withEvent {
		m[g.key("event_code", "EventCode")] = eventCode
	}
	return m
}

func main() {
	var (
		addr     string
		seed     int64
		failRate float64
		latency  time.Duration
	)
	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 means time-based)")
	flag.Float64Var(&failRate, "fail-rate", 0, "fraction of requests answered with HTTP 500")
	flag.DurationVar(&latency, "latency", 0, "artificial response delay")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rand.New(rand.NewSource(seed))
	log.Printf("mockapi listening on %s (seed=%d)", addr, seed)

	http.HandleFunc("/v1/", func(w http.ResponseWriter, r *http.Request) {
		if latency > 0 {
			time.Sleep(latency)
		}
		if failRate > 0 && src.Float64() < failRate {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		g := &gen{r: src, snake: src.Intn(2) == 0}
		body, ok := route(g, r.URL.Path)
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.Printf("encode %s: %v", r.URL.Path, err)
		}
		log.Printf("%s %s", r.Method, r.URL.String())
	})

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}

// route matches the explorer's path shapes: /v1/{season}/<rest>.
func route(g *gen, path string) (any, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 3 || parts[0] != "v1" {
		return nil, false
	}
	rest := parts[2:]

	switch rest[0] {
	case "teams":
		teams := make([]any, 12)
		for i := range teams {
			teams[i] = g.team(100 + g.r.Intn(9900))
		}
		return teams, true
	case "team":
		if len(rest) != 2 {
			return nil, false
		}
		return g.teamDetails(rest[1]), true
	case "events":
		if len(rest) != 3 {
			return nil, false
		}
		return g.eventResource(rest[1], rest[2])
	case "team-rankings", "team-event-rankings":
		n := 20
		out := make([]any, n)
		for i := range out {
			out[i] = g.ranking(i, rest[0] == "team-event-rankings", "USNCCOQ")
		}
		return out, true
	case "regions":
		if len(rest) != 3 || rest[2] != "advancement" {
			return nil, false
		}
		return g.regionAdvancement(rest[1]), true
	case "advancement":
		return g.allAdvancement(), true
	}
	return nil, false
}

func (g *gen) teamDetails(teamID string) map[string]any {
	events := make([]any, 2)
	for i := range events {
		code := fmt.Sprintf("USCHS%02d", i+1)
		awards := make([]any, g.r.Intn(3))
		for j := range awards {
			awards[j] = awardNames[g.r.Intn(len(awardNames))]
		}
		events[i] = map[string]any{
			g.key("event_code", "EventCode"):         code,
			g.key("event_name", "EventName"):         code + " Qualifier",
			g.key("qual_rank", "QualRank"):           1 + g.r.Intn(20),
			g.key("total_record", "TotalRecord"):     g.record(),
			g.key("qual_record", "QualRecord"):       g.record(),
			g.key("playoff_record", "PlayoffRecord"): g.record(),
			g.key("advanced", "Advanced"):            g.r.Intn(2) == 0,
			g.key("awards", "Awards"):                awards,
		}
	}
	return map[string]any{
		g.key("team_id", "TeamID"):               teamID,
		g.key("name", "Name"):                    teamNames[g.r.Intn(len(teamNames))],
		g.key("city", "City"):                    cities[g.r.Intn(len(cities))],
		g.key("state_prov", "StateProv"):         "VA",
		g.key("country", "Country"):              "USA",
		g.key("region", "Region"):                "USCHS",
		g.key("rookie_year", "RookieYear"):       2005 + g.r.Intn(20),
		g.key("total_record", "TotalRecord"):     g.record(),
		g.key("qual_record", "QualRecord"):       g.record(),
		g.key("playoff_record", "PlayoffRecord"): g.record(),
		g.key("events", "Events"):                events,
	}
}

func (g *gen) eventResource(code, kind string) (any, bool) {
	ev := g.event(code)
	switch kind {
	case "teams":
		teams := make([]any, 10)
		for i := range teams {
			teams[i] = g.team(100 + g.r.Intn(9900))
		}
		ev[g.key("teams", "Teams")] = teams
		return map[string]any{g.key("event", "Event"): ev}, true
	case "rankings":
		rankings := make([]any, 10)
		for i := range rankings {
			item := g.ranking(i, false, code)
			item[g.key("team", "Team")] = g.team(100 + g.r.Intn(9900))
			item[g.key("sort_order3", "SortOrder3")] = g.r.Float64() * 60
			item[g.key("sort_order4", "SortOrder4")] = g.r.Float64() * 40
			item[g.key("wins", "Wins")] = g.r.Intn(10)
			item[g.key("losses", "Losses")] = g.r.Intn(10)
			item[g.key("ties", "Ties")] = g.r.Intn(3)
			rankings[i] = item
		}
		return map[string]any{
			g.key("event", "Event"):       ev,
			g.key("rankings", "Rankings"): rankings,
		}, true
	case "awards":
		awards := make([]any, 6)
		for i := range awards {
			awards[i] = map[string]any{
				g.key("name", "Name"): awardNames[i%len(awardNames)],
				g.key("team", "Team"): g.team(100 + g.r.Intn(9900)),
			}
		}
		ev[g.key("awards", "Awards")] = awards
		return map[string]any{g.key("event", "Event"): ev}, true
	case "advancement":
		advs := make([]any, 10)
		for i := range advs {
			advs[i] = g.advancement(i + 1)
		}
		return map[string]any{
			g.key("event", "Event"):                        ev,
			g.key("team_advancements", "TeamAdvancements"): advs,
		}, true
	case "matches":
		matches := make([]any, 30)
		for i := range matches {
			matches[i] = g.match(i + 1)
		}
		ev[g.key("matches", "Matches")] = matches
		return map[string]any{g.key("event", "Event"): ev}, true
	}
	return nil, false
}

func (g *gen) regionAdvancement(region string) map[string]any {
	items := make([]any, 8)
	for i := range items {
		awards := make([]any, g.r.Intn(2)+1)
		for j := range awards {
			awards[j] = map[string]any{g.key("name", "Name"): awardNames[g.r.Intn(len(awardNames))]}
		}
		others := make([]any, g.r.Intn(3))
		for j := range others {
			others[j] = map[string]any{g.key("event", "Event"): g.event(fmt.Sprintf("USCHS%02d", j+1))}
		}
		items[i] = map[string]any{
			g.key("team", "Team"):                                           g.team(100 + g.r.Intn(9900)),
			g.key("advancing_event", "AdvancingEvent"):                      g.event("USCHSCMP"),
			g.key("advancing_event_awards", "AdvancingEventAwards"):         awards,
			g.key("other_event_participations", "OtherEventParticipations"): others,
		}
	}
	return map[string]any{
		g.key("region_code", "RegionCode"):             region,
		g.key("team_advancements", "TeamAdvancements"): items,
	}
}

func (g *gen) allAdvancement() map[string]any {
	summaries := make([]any, 5)
	for i := range summaries {
		code := fmt.Sprintf("USCHS%02d", i+1)
		qualified := make([]any, 2+g.r.Intn(4))
		for j := range qualified {
			qualified[j] = map[string]any{g.key("team", "Team"): g.team(100 + g.r.Intn(9900))}
		}
		summaries[i] = map[string]any{
			g.key("event", "Event"):                    g.event(code),
			g.key("qualified_teams", "QualifiedTeams"): qualified,
		}
	}
	return map[string]any{
		g.key("region_code", "RegionCode"):         "USCHS",
		g.key("event_summaries", "EventSummaries"): summaries,
	}
}
