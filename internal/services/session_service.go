package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"hiddengems/internal/explorer"
	"hiddengems/internal/models/response_models"
	mem "hiddengems/pkg/memcache"
	"hiddengems/pkg/metrics"
	"hiddengems/pkg/utils"
)

type HistoryQuery struct {
	Query   string
	Country string
}

type SessionServiceInterface interface {
	StartSession(ctx context.Context) (response_models.SessionResponse, error)
	Search(ctx context.Context, sessionID, query, filter string) (explorer.SearchResult, error)
	History(ctx context.Context, sessionID string, q HistoryQuery) (response_models.HistoryResponse, error)
	Profile(ctx context.Context, sessionID string) (response_models.ProfileResponse, error)
	Countries(ctx context.Context, sessionID string) ([]string, error)
}

type SessionService struct {
	store     mem.SessionStore
	tokens    *utils.SessionTokens
	locations LocationServiceInterface
	log       *zap.Logger
	now       func() time.Time
}

func NewSessionService(
	store mem.SessionStore,
	tokens *utils.SessionTokens,
	locations LocationServiceInterface,
	log *zap.Logger,
) SessionServiceInterface {
	return &SessionService{
		store:     store,
		tokens:    tokens,
		locations: locations,
		log:       log.Named("sessions"),
		now:       time.Now,
	}
}

func (s *SessionService) StartSession(ctx context.Context) (response_models.SessionResponse, error) {
	session := s.store.Create()
	metrics.ActiveSessions.Set(float64(s.store.Len()))

	token, err := s.tokens.CreateToken(session.ID)
	if err != nil {
		return response_models.SessionResponse{}, err
	}
	s.log.Info("session started", zap.String("session_id", session.ID))

	return response_models.SessionResponse{
		SessionID: session.ID,
		Token:     token,
		ExpiresIn: int64(s.tokens.TTL().Seconds()),
		CreatedAt: session.CreatedAt,
	}, nil
}

// Search runs one generation for the session and records it on success.
// A failed generation leaves the history untouched.
func (s *SessionService) Search(ctx context.Context, sessionID, query, filter string) (explorer.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return explorer.SearchResult{}, utils.NewLocationError(utils.ErrMissingQuery, "Query is required")
	}
	if !s.store.BeginSearch(sessionID) {
		if _, ok := s.store.Get(sessionID); !ok {
			return explorer.SearchResult{}, utils.ErrSessionNotFound
		}
		return explorer.SearchResult{}, utils.ErrSearchInProgress
	}
	defer s.store.EndSearch(sessionID)

	locations, err := s.locations.GenerateLocations(ctx, explorer.ComposeQuery(query, filter))
	if err != nil {
		return explorer.SearchResult{}, err
	}

	result := explorer.NewSearchResult(query, filter, locations, s.now())
	if _, ok := s.store.Update(sessionID, func(cur explorer.Session) explorer.Session {
		return explorer.AppendResult(cur, result)
	}); !ok {
		return explorer.SearchResult{}, utils.ErrSessionNotFound
	}
	return result, nil
}

func (s *SessionService) History(ctx context.Context, sessionID string, q HistoryQuery) (response_models.HistoryResponse, error) {
	session, ok := s.store.Get(sessionID)
	if !ok {
		return response_models.HistoryResponse{}, utils.ErrSessionNotFound
	}

	resp := response_models.HistoryResponse{
		Searches:  make([]response_models.SearchSummary, 0, len(session.History)),
		Countries: explorer.UniqueCountries(session.History),
	}
	for _, r := range session.History {
		resp.Searches = append(resp.Searches, response_models.SearchSummary{
			Query:     r.Query,
			Timestamp: r.Timestamp,
			Filter:    r.Filter,
			Count:     len(r.Locations),
		})
	}

	if q.Query == "" {
		return resp, nil
	}
	selected, ok := explorer.FindResult(session.History, q.Query)
	if !ok {
		return response_models.HistoryResponse{}, utils.ErrResultNotFound
	}
	displayed := explorer.FilterByCountry(selected.Locations, q.Country)
	resp.Selected = &response_models.SelectedSearch{
		Query:     selected.Query,
		Timestamp: selected.Timestamp,
		Filter:    selected.Filter,
		Locations: displayed,
		Groups:    explorer.GroupByCountry(displayed),
	}
	return resp, nil
}

func (s *SessionService) Profile(ctx context.Context, sessionID string) (response_models.ProfileResponse, error) {
	session, ok := s.store.Get(sessionID)
	if !ok {
		return response_models.ProfileResponse{}, utils.ErrSessionNotFound
	}

	score := explorer.ComputeScore(session.History)
	unlocked, locked := explorer.Evaluate(session.History)
	return response_models.ProfileResponse{
		Points:            score.Points,
		LocationPoints:    score.LocationPoints,
		AchievementPoints: score.AchievementPoints,
		Rank:              score.Rank.Label(),
		Searches:          len(session.History),
		PlacesFound:       explorer.PlacesFound(session.History),
		Unlocked:          response_models.ToAchievementResponses(unlocked, true),
		Locked:            response_models.ToAchievementResponses(locked, false),
	}, nil
}

func (s *SessionService) Countries(ctx context.Context, sessionID string) ([]string, error) {
	session, ok := s.store.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return explorer.UniqueCountries(session.History), nil
}
