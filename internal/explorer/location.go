package explorer

import (
	"strings"
	"time"
)

// Location is one suggested point of interest returned by the location generator.
type Location struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Emoji       string  `json:"emoji"`
	Description string  `json:"description"`
	Rarity      float64 `json:"rarity"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// SearchResult is one query together with the locations generated for it.
type SearchResult struct {
	Query     string     `json:"query"`
	Timestamp time.Time  `json:"timestamp"`
	Filter    *string    `json:"filter"`
	Locations []Location `json:"locations"`
}

// LocationsPerSearch is the exact number of locations a search must yield.
const LocationsPerSearch = 4

// ComposeQuery narrows a query to a country when a filter is set.
func ComposeQuery(query string, filter string) string {
	query = strings.TrimSpace(query)
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return query
	}
	return query + " in " + filter
}

// NewSearchResult builds a result; an empty filter is stored as nil.
func NewSearchResult(query string, filter string, locations []Location, at time.Time) SearchResult {
	result := SearchResult{
		Query:     query,
		Timestamp: at,
		Locations: append([]Location(nil), locations...),
	}
	if f := strings.TrimSpace(filter); f != "" {
		result.Filter = &f
	}
	return result
}
