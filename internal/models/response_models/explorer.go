package response_models

import (
	"time"

	"hiddengems/internal/explorer"
)

type LocationsResponse struct {
	Locations []explorer.Location `json:"locations"`
}

type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresIn int64     `json:"expires_in"`
	CreatedAt time.Time `json:"created_at"`
}

type SearchSummary struct {
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`
	Filter    *string   `json:"filter"`
	Count     int       `json:"count"`
}

type SelectedSearch struct {
	Query     string                  `json:"query"`
	Timestamp time.Time               `json:"timestamp"`
	Filter    *string                 `json:"filter"`
	Locations []explorer.Location     `json:"locations"`
	Groups    []explorer.CountryGroup `json:"groups"`
}

type HistoryResponse struct {
	Searches  []SearchSummary `json:"searches"`
	Countries []string        `json:"countries"`
	Selected  *SelectedSearch `json:"selected,omitempty"`
}

type AchievementResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Unlocked    bool   `json:"unlocked"`
}

type ProfileResponse struct {
	Points            int                   `json:"points"`
	LocationPoints    int                   `json:"location_points"`
	AchievementPoints int                   `json:"achievement_points"`
	Rank              string                `json:"rank"`
	Searches          int                   `json:"searches"`
	PlacesFound       int                   `json:"places_found"`
	Unlocked          []AchievementResponse `json:"unlocked"`
	Locked            []AchievementResponse `json:"locked"`
}

type IdeaResponse struct {
	Idea string `json:"idea"`
}

func ToAchievementResponses(achievements []explorer.Achievement, unlocked bool) []AchievementResponse {
	out := make([]AchievementResponse, 0, len(achievements))
	for _, a := range achievements {
		out = append(out, AchievementResponse{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Points:      a.Points,
			Unlocked:    unlocked,
		})
	}
	return out
}
