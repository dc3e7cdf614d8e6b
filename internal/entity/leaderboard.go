package entity

import "sort"

type TeamScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type Leaderboard struct {
	Teams []TeamScore `json:"teams"`
	Top   TeamScore   `json:"top"`
}

// RankTeams - orders teams by descending score and picks the top scorer.
//
// The order is an ascending stable sort reversed, so teams with equal
// scores come out in the reverse of their input order. The top team is the
// first one seen whose score beats the running maximum, which starts at 0.
func RankTeams(scores []TeamScore) *Leaderboard {
	teams := make([]TeamScore, len(scores))
	copy(teams, scores)

	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].Score < teams[j].Score
	})

	for i, j := 0, len(teams)-1; i < j; i, j = i+1, j-1 {
		teams[i], teams[j] = teams[j], teams[i]
	}

	var top TeamScore
	for _, team := range teams {
		if team.Score > top.Score {
			top = team
		}
	}

	return &Leaderboard{
		Teams: teams,
		Top:   top,
	}
}
