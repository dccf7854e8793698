package explorer

import "math"

// Rank is one step of the explorer ladder.
type Rank struct {
	Emoji     string `json:"emoji"`
	Title     string `json:"title"`
	MinPoints int    `json:"min_points"`
}

// Label is the display form, e.g. "🌱 Wanderer".
func (r Rank) Label() string {
	return r.Emoji + " " + r.Title
}

// Ranks is ordered from the highest threshold down; the last entry is the base rank.
var Ranks = []Rank{
	{Emoji: "🎖️", Title: "Master Explorer", MinPoints: 1000},
	{Emoji: "🌟", Title: "Seasoned Traveler", MinPoints: 500},
	{Emoji: "🧭", Title: "Adventurer", MinPoints: 250},
	{Emoji: "🌱", Title: "Wanderer", MinPoints: 100},
	{Emoji: "🌍", Title: "Novice Explorer", MinPoints: math.MinInt},
}

// Score is the derived explorer standing for a history.
type Score struct {
	Points            int
	LocationPoints    int
	AchievementPoints int
	Rank              Rank
}

// RankFor maps a point total to exactly one rank.
func RankFor(points int) Rank {
	for _, r := range Ranks {
		if points >= r.MinPoints {
			return r
		}
	}
	return Ranks[len(Ranks)-1]
}

// LocationPoints is round(rarity * 1.5), halves rounded up.
func LocationPoints(loc Location) int {
	return int(math.Floor(loc.Rarity*1.5 + 0.5))
}

// ComputeScore recomputes points and rank from scratch.
func ComputeScore(history []SearchResult) Score {
	var s Score
	for _, result := range history {
		for _, loc := range result.Locations {
			s.LocationPoints += LocationPoints(loc)
		}
	}
	for _, a := range Achievements {
		if a.Unlocked(history) {
			s.AchievementPoints += a.Points
		}
	}
	s.Points = s.LocationPoints + s.AchievementPoints
	s.Rank = RankFor(s.Points)
	return s
}
