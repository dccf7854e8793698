package explorer

import (
	"sort"
	"time"
)

// Session is the explorer state owned by one client. Values are treated as
// immutable; updates go through AppendResult.
type Session struct {
	ID        string
	CreatedAt time.Time
	History   []SearchResult
}

// AppendResult returns a copy of s with result placed first in its history.
func AppendResult(s Session, result SearchResult) Session {
	history := make([]SearchResult, 0, len(s.History)+1)
	history = append(history, result)
	history = append(history, s.History...)
	s.History = history
	return s
}

// FindResult returns the most recent result for query.
func FindResult(history []SearchResult, query string) (SearchResult, bool) {
	for _, result := range history {
		if result.Query == query {
			return result, true
		}
	}
	return SearchResult{}, false
}

// FilterByCountry keeps locations in country; an empty country keeps all.
func FilterByCountry(locations []Location, country string) []Location {
	out := make([]Location, 0, len(locations))
	for _, loc := range locations {
		if country == "" || loc.Country == country {
			out = append(out, loc)
		}
	}
	return out
}

// CountryGroup is a run of locations sharing a country.
type CountryGroup struct {
	Country   string     `json:"country"`
	Locations []Location `json:"locations"`
}

// GroupByCountry groups locations, keeping countries in first-seen order.
func GroupByCountry(locations []Location) []CountryGroup {
	index := make(map[string]int)
	groups := make([]CountryGroup, 0)
	for _, loc := range locations {
		i, ok := index[loc.Country]
		if !ok {
			i = len(groups)
			index[loc.Country] = i
			groups = append(groups, CountryGroup{Country: loc.Country})
		}
		groups[i].Locations = append(groups[i].Locations, loc)
	}
	return groups
}

// UniqueCountries returns the sorted set of countries across history.
func UniqueCountries(history []SearchResult) []string {
	seen := make(map[string]struct{})
	countries := make([]string, 0)
	for _, result := range history {
		for _, loc := range result.Locations {
			if _, ok := seen[loc.Country]; ok {
				continue
			}
			seen[loc.Country] = struct{}{}
			countries = append(countries, loc.Country)
		}
	}
	sort.Strings(countries)
	return countries
}

// PlacesFound counts every location across history.
func PlacesFound(history []SearchResult) int {
	n := 0
	for _, result := range history {
		n += len(result.Locations)
	}
	return n
}
