package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"hiddengems/pkg/utils"
)

type stubCompletion struct {
	mu       sync.Mutex
	content  string
	err      error
	delay    time.Duration
	requests []utils.CompletionRequest
}

func (s *stubCompletion) Complete(ctx context.Context, req utils.CompletionRequest) (string, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.content, s.err
}

func (s *stubCompletion) Provider() string { return "stub" }

func (s *stubCompletion) Model() string { return "stub-model" }

func (s *stubCompletion) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

const fourLocations = `{"locations":[
 {"name":"Vatnajökull Ice Caves","country":"Iceland","emoji":"🧊","description":"Blue glacier caves","rarity":"72","latitude":"64.4","longitude":"-16.8"},
 {"name":"Son Doong","country":"Vietnam","emoji":"🕳️","description":"World's largest cave","rarity":91,"latitude":17.45,"longitude":106.28},
 {"name":"Waitomo Glowworm Caves","country":"New Zealand","emoji":"✨","description":"Glowworm grottos","rarity":35,"latitude":-38.26,"longitude":175.1},
 {"name":"Mammoth Cave","country":"United States","emoji":"🦣","description":"Longest known cave system","rarity":20,"latitude":37.18,"longitude":-86.1}
]}`

func newTestLocationService(client utils.CompletionClientInterface, timeout time.Duration) LocationServiceInterface {
	return NewLocationService(client, 0.7, timeout, zap.NewNop())
}

func TestGenerateLocationsSuccess(t *testing.T) {
	client := &stubCompletion{content: fourLocations}
	svc := newTestLocationService(client, time.Second)

	locs, err := svc.GenerateLocations(context.Background(), "ice caves")
	if err != nil {
		t.Fatalf("GenerateLocations() error = %v", err)
	}
	if len(locs) != 4 {
		t.Fatalf("expected 4 locations, got %d", len(locs))
	}
	if locs[0].Rarity != 72 || locs[0].Latitude != 64.4 {
		t.Fatalf("expected coerced numbers, got %+v", locs[0])
	}

	req := client.requests[0]
	if req.Temperature != 0.7 || !req.JSONOnly {
		t.Fatalf("unexpected request options %+v", req)
	}
	if req.User != "Find 4 fascinating locations for: ice caves" {
		t.Fatalf("unexpected user prompt %q", req.User)
	}
	if !strings.Contains(req.System, "90-100: true hidden gem") {
		t.Fatalf("system prompt must carry the rarity rubric")
	}
}

func TestGenerateLocationsMissingQueryNeverCallsUpstream(t *testing.T) {
	client := &stubCompletion{content: fourLocations}
	svc := newTestLocationService(client, time.Second)

	for _, q := range []string{"", "   \t"} {
		_, err := svc.GenerateLocations(context.Background(), q)
		if !errors.Is(err, utils.ErrMissingQuery) {
			t.Fatalf("expected ErrMissingQuery, got %v", err)
		}
	}
	if client.calls() != 0 {
		t.Fatalf("expected no upstream calls, got %d", client.calls())
	}
}

func TestGenerateLocationsUpstreamFailureIsTerminal(t *testing.T) {
	client := &stubCompletion{err: errors.New("429 rate limited")}
	svc := newTestLocationService(client, time.Second)

	_, err := svc.GenerateLocations(context.Background(), "castles")
	if !errors.Is(err, utils.ErrUpstreamCall) {
		t.Fatalf("expected ErrUpstreamCall, got %v", err)
	}
	if err.Error() != "429 rate limited" {
		t.Fatalf("expected upstream message as detail, got %q", err.Error())
	}
	if client.calls() != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", client.calls())
	}
}

func TestGenerateLocationsEmptyContent(t *testing.T) {
	svc := newTestLocationService(&stubCompletion{content: "  "}, time.Second)

	_, err := svc.GenerateLocations(context.Background(), "castles")
	if !errors.Is(err, utils.ErrUpstreamCall) {
		t.Fatalf("expected ErrUpstreamCall, got %v", err)
	}
}

func TestGenerateLocationsTimeout(t *testing.T) {
	client := &stubCompletion{content: fourLocations, delay: time.Second}
	svc := newTestLocationService(client, 20*time.Millisecond)

	_, err := svc.GenerateLocations(context.Background(), "castles")
	if !errors.Is(err, utils.ErrUpstreamCall) {
		t.Fatalf("expected ErrUpstreamCall, got %v", err)
	}
	if !strings.Contains(err.Error(), "did not respond within") {
		t.Fatalf("expected timeout detail, got %q", err.Error())
	}
}

func TestGenerateLocationsMalformedResponse(t *testing.T) {
	svc := newTestLocationService(&stubCompletion{content: "Sure! Here are some caves."}, time.Second)

	_, err := svc.GenerateLocations(context.Background(), "caves")
	if !errors.Is(err, utils.ErrUpstreamFormat) {
		t.Fatalf("expected ErrUpstreamFormat, got %v", err)
	}
	if utils.ErrorCode(err) != "upstream_format_error" {
		t.Fatalf("unexpected code %q", utils.ErrorCode(err))
	}
}
