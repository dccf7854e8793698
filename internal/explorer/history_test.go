package explorer_test

import (
	"reflect"
	"testing"
	"time"

	"hiddengems/internal/explorer"
)

func TestAppendResultPrependsWithoutAliasing(t *testing.T) {
	t.Parallel()

	original := explorer.Session{ID: "s1"}
	first := explorer.AppendResult(original, result("first", loc("A", 1)))
	second := explorer.AppendResult(first, result("second", loc("B", 1)))

	if len(original.History) != 0 {
		t.Fatalf("original session must not change, got %d entries", len(original.History))
	}
	if len(first.History) != 1 || first.History[0].Query != "first" {
		t.Fatalf("unexpected first history %+v", first.History)
	}
	if second.History[0].Query != "second" || second.History[1].Query != "first" {
		t.Fatalf("expected most recent first, got %q then %q", second.History[0].Query, second.History[1].Query)
	}
}

func TestFindResultReturnsMostRecentMatch(t *testing.T) {
	t.Parallel()

	history := []explorer.SearchResult{
		result("beaches", loc("Fiji", 1)),
		result("castles", loc("Wales", 1)),
		result("beaches", loc("Greece", 1)),
	}
	got, ok := explorer.FindResult(history, "beaches")
	if !ok || got.Locations[0].Country != "Fiji" {
		t.Fatalf("expected most recent beaches result, got %+v ok=%v", got, ok)
	}
	if _, ok := explorer.FindResult(history, "volcanoes"); ok {
		t.Fatalf("expected no match")
	}
}

func TestGroupByCountryKeepsFirstSeenOrder(t *testing.T) {
	t.Parallel()

	locs := []explorer.Location{loc("Peru", 1), loc("Chile", 2), loc("Peru", 3), loc("Bolivia", 4)}
	groups := explorer.GroupByCountry(locs)

	var countries []string
	for _, g := range groups {
		countries = append(countries, g.Country)
	}
	if !reflect.DeepEqual(countries, []string{"Peru", "Chile", "Bolivia"}) {
		t.Fatalf("unexpected group order %v", countries)
	}
	if len(groups[0].Locations) != 2 {
		t.Fatalf("expected two Peru locations, got %d", len(groups[0].Locations))
	}
}

func TestFilterAndUniqueCountries(t *testing.T) {
	t.Parallel()

	history := []explorer.SearchResult{
		result("a", loc("Peru", 1), loc("Chile", 2)),
		result("b", loc("Chile", 1), loc("Argentina", 2)),
	}
	if got := explorer.UniqueCountries(history); !reflect.DeepEqual(got, []string{"Argentina", "Chile", "Peru"}) {
		t.Fatalf("unexpected countries %v", got)
	}
	if got := explorer.FilterByCountry(history[0].Locations, "Chile"); len(got) != 1 || got[0].Country != "Chile" {
		t.Fatalf("unexpected filter result %+v", got)
	}
	if got := explorer.FilterByCountry(history[0].Locations, ""); len(got) != 2 {
		t.Fatalf("empty country must keep all, got %d", len(got))
	}
	if got := explorer.PlacesFound(history); got != 4 {
		t.Fatalf("expected 4 places, got %d", got)
	}
}

func TestComposeQueryAndFilter(t *testing.T) {
	t.Parallel()

	if got := explorer.ComposeQuery(" night markets ", ""); got != "night markets" {
		t.Fatalf("unexpected query %q", got)
	}
	if got := explorer.ComposeQuery("night markets", "Taiwan"); got != "night markets in Taiwan" {
		t.Fatalf("unexpected query %q", got)
	}

	r := explorer.NewSearchResult("q", "  ", nil, time.Now())
	if r.Filter != nil {
		t.Fatalf("blank filter must be nil, got %q", *r.Filter)
	}
	r = explorer.NewSearchResult("q", "Taiwan", nil, time.Now())
	if r.Filter == nil || *r.Filter != "Taiwan" {
		t.Fatalf("expected Taiwan filter, got %v", r.Filter)
	}
}
