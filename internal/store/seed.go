package store

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"
)

// Seeded builds the full mock dataset from fixed seeds, so every process
// start produces the same records. Swap this for a repository-backed
// loader when real data arrives.
func Seeded() *Store {
	players := seedPlayers()
	return New(players, seedMatches(players), seedTeams(), seedRankings())
}

var playerNames = [][2]string{
	{"Emma", "Williams"}, {"James", "Smith"}, {"Sofia", "Johnson"}, {"Liam", "Davis"},
	{"Olivia", "Martinez"}, {"Noah", "Garcia"}, {"Ava", "Rodriguez"}, {"Ethan", "Wilson"},
	{"Mia", "Anderson"}, {"Mason", "Thomas"}, {"Charlotte", "Taylor"}, {"Lucas", "Moore"},
	{"Amelia", "Jackson"}, {"Oliver", "White"}, {"Harper", "Harris"}, {"Elijah", "Clark"},
	{"Evelyn", "Lewis"}, {"Alexander", "Robinson"}, {"Abigail", "Walker"}, {"Benjamin", "Hall"},
	{"Emily", "Allen"}, {"William", "Young"}, {"Elizabeth", "King"}, {"Henry", "Wright"},
	{"Sofia", "Lopez"}, {"Sebastian", "Hill"}, {"Avery", "Scott"}, {"Jack", "Green"},
	{"Ella", "Adams"}, {"Aiden", "Baker"}, {"Scarlett", "Nelson"}, {"Owen", "Carter"},
	{"Grace", "Mitchell"}, {"Samuel", "Perez"}, {"Chloe", "Roberts"}, {"Matthew", "Turner"},
	{"Victoria", "Phillips"}, {"Joseph", "Campbell"}, {"Riley", "Parker"}, {"David", "Evans"},
	{"Aria", "Edwards"}, {"John", "Collins"}, {"Lily", "Stewart"}, {"Luke", "Sanchez"},
	{"Zoey", "Morris"}, {"Daniel", "Rogers"}, {"Penelope", "Reed"}, {"Carter", "Cook"},
	{"Layla", "Morgan"}, {"Dylan", "Bell"}, {"Nora", "Murphy"}, {"Leo", "Bailey"},
}

func seedPlayers() []Player {
	sections := []string{"Southern", "Southern Cal", "Texas", "Florida", "Midwest", "Eastern", "Northern"}
	ageGroups := []string{"18+", "40+", "55+", "65+"}
	trends := []string{"up", "down", "stable"}

	rng := rand.New(rand.NewSource(42))
	players := make([]Player, 0, len(playerNames))
	for i, name := range playerNames {
		gender := "M"
		if i%2 == 0 {
			gender = "F"
		}
		players = append(players, Player{
			ID:          i + 1,
			FirstName:   name[0],
			LastName:    name[1],
			Gender:      gender,
			UstaSection: ptr(sections[rng.Intn(len(sections))]),
			NtrpRating:  ptr(round1(3.0 + rng.Float64()*4.5)),
			RatingTrend: ptr(trends[rng.Intn(len(trends))]),
			MatchCount:  ptr(5 + rng.Intn(115)),
			ActiveYear:  ptr(2024),
			AgeGroup:    ptr(ageGroups[rng.Intn(len(ageGroups))]),
		})
	}
	return players
}

func seedMatches(players []Player) map[int][]MatchSummary {
	results := []string{"W 6-4, 6-3", "L 3-6, 6-4, 6-2", "W 6-2, 6-1", "W 7-5, 6-4", "L 6-3, 6-2", "W 6-0, 6-1"}
	opponents := []string{"Taylor Brown", "Jordan Lee", "Casey Kim", "Morgan Davis", "Riley Clark", "Alex Johnson"}

	rng := rand.New(rand.NewSource(42))
	now := time.Now().UTC()
	matches := make(map[int][]MatchSummary, len(players))
	for _, p := range players {
		count := 3 + rng.Intn(3)
		history := make([]MatchSummary, 0, count)
		for i := 0; i < count; i++ {
			date := now.AddDate(0, 0, -(5 + rng.Intn(85)))
			history = append(history, MatchSummary{
				ID:           p.ID*10 + i,
				PlayerID:     p.ID,
				OpponentName: opponents[rng.Intn(len(opponents))],
				Result:       results[rng.Intn(len(results))],
				Date:         &date,
			})
		}
		sort.SliceStable(history, func(i, j int) bool {
			return history[i].Date.After(*history[j].Date)
		})
		matches[p.ID] = history
	}
	return matches
}

var teamNames = []string{
	"Riverside Racquet Club", "Metro Tennis Alliance", "Sunset Park Aces", "Downtown Dynamos",
	"Lakeside Legends", "Highland Hurricanes", "Valley View Vipers", "Central City Chargers",
	"Northside Nets", "West End Warriors", "Eastside Eagles", "South Bay Strikers",
}

func seedTeams() []Team {
	sections := []string{"Southern", "Southern Cal", "Texas", "Florida", "Midwest"}
	levels := []string{"3.0", "3.5", "4.0", "4.5", "5.0"}

	rng := rand.New(rand.NewSource(123))
	teams := make([]Team, 0, len(teamNames))
	for i, name := range teamNames {
		section := sections[rng.Intn(len(sections))]
		level := levels[rng.Intn(len(levels))]

		roster := make([]PlayerSummary, 0, 8)
		var sum float64
		for j := 1; j <= 8; j++ {
			pid := (i*4+j)%len(playerNames) + 1
			rating := round1(3.0 + rng.Float64()*2)
			sum += rating
			roster = append(roster, PlayerSummary{
				ID:         pid,
				FullName:   fmt.Sprintf("Player %d", pid),
				NtrpRating: ptr(rating),
			})
		}

		top := make([]PlayerSummary, len(roster))
		copy(top, roster)
		sort.SliceStable(top, func(a, b int) bool {
			return *top[a].NtrpRating > *top[b].NtrpRating
		})
		top = top[:3]

		teams = append(teams, Team{
			ID:            i + 1,
			Name:          name,
			Section:       ptr(section),
			LeagueLevel:   ptr(level),
			AverageRating: ptr(round1(sum / float64(len(roster)))),
			TopPlayers:    top,
			Roster:        roster,
		})
	}
	return teams
}

func seedRankings() []Ranking {
	sections := []string{"Southern", "Southern Cal", "Texas"}
	trends := []string{"up", "down", "stable"}
	adultGroups := []string{"18+", "40+", "55+"}
	juniorGroups := []string{"12U", "14U", "16U", "18U"}

	rng := rand.New(rand.NewSource(99))
	var rankings []Ranking
	for _, category := range []string{"Adult", "Junior"} {
		groups := adultGroups
		if category == "Junior" {
			groups = juniorGroups
		}
		for _, section := range sections {
			for _, gender := range []string{"M", "F"} {
				for rank := 1; rank <= 10; rank++ {
					pid := 1 + rng.Intn(len(playerNames))
					name := playerNames[pid-1]
					rankings = append(rankings, Ranking{
						Rank:       rank,
						PlayerID:   pid,
						PlayerName: name[0] + " " + name[1],
						Rating:     ptr(round1(4.0 + rng.Float64()*3)),
						Trend:      ptr(trends[rng.Intn(len(trends))]),
						Category:   category,
						Section:    ptr(section),
						AgeGroup:   ptr(groups[rng.Intn(len(groups))]),
						Gender:     ptr(gender),
					})
				}
			}
		}
	}
	return rankings
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func ptr[T any](v T) *T {
	return &v
}
