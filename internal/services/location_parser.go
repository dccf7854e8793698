package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"hiddengems/internal/explorer"
	"hiddengems/pkg/utils"
)

var (
	textFields    = []string{"name", "country", "emoji", "description"}
	numericFields = []string{"rarity", "latitude", "longitude"}
)

// ParseLocations decodes a model response and validates every candidate.
// The response must be one JSON object holding exactly four locations.
func ParseLocations(content string) ([]explorer.Location, error) {
	var payload any
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, utils.NewLocationError(utils.ErrUpstreamFormat,
			fmt.Sprintf("Invalid response format: model output is not valid JSON: %v", err))
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, utils.NewLocationError(utils.ErrUpstreamFormat, "Invalid response format: missing locations array")
	}
	candidates, ok := obj["locations"].([]any)
	if !ok {
		return nil, utils.NewLocationError(utils.ErrUpstreamFormat, "Invalid response format: missing locations array")
	}
	if len(candidates) != explorer.LocationsPerSearch {
		return nil, utils.NewLocationError(utils.ErrUpstreamFormat,
			fmt.Sprintf("Invalid response format: exactly %d locations required, got %d", explorer.LocationsPerSearch, len(candidates)))
	}

	locations := make([]explorer.Location, 0, len(candidates))
	for i, raw := range candidates {
		candidate, ok := raw.(map[string]any)
		if !ok {
			return nil, utils.NewLocationError(utils.ErrFieldValidation,
				fmt.Sprintf("Location %d validation failed: location must be an object", i+1))
		}
		loc, err := validateLocation(candidate, i)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// coerceNumericFields replaces numeric strings with numbers in place.
// Strings that do not parse become NaN and fail the numeric check.
func coerceNumericFields(candidate map[string]any) {
	for _, field := range numericFields {
		s, ok := candidate[field].(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			n = math.NaN()
		}
		candidate[field] = n
	}
}

// validateLocation collects every problem with one candidate before failing.
func validateLocation(candidate map[string]any, index int) (explorer.Location, error) {
	coerceNumericFields(candidate)

	var problems []string
	text := make(map[string]string, len(textFields))
	for _, field := range textFields {
		switch v := candidate[field].(type) {
		case string:
			if strings.TrimSpace(v) == "" {
				problems = append(problems, field+" is required")
			}
			text[field] = v
		case nil:
			problems = append(problems, field+" is required")
		default:
			problems = append(problems, field+" must be a string")
		}
	}

	numbers := make(map[string]float64, len(numericFields))
	for _, field := range numericFields {
		n, ok := candidate[field].(float64)
		if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
			problems = append(problems, field+" must be a number")
			continue
		}
		numbers[field] = n
	}

	if len(problems) > 0 {
		return explorer.Location{}, utils.NewLocationError(utils.ErrFieldValidation,
			fmt.Sprintf("Location %d validation failed: %s", index+1, strings.Join(problems, ", ")))
	}

	return explorer.Location{
		Name:        text["name"],
		Country:     text["country"],
		Emoji:       text["emoji"],
		Description: text["description"],
		Rarity:      numbers["rarity"],
		Latitude:    numbers["latitude"],
		Longitude:   numbers["longitude"],
	}, nil
}
