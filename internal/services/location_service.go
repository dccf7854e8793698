package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"hiddengems/internal/explorer"
	"hiddengems/pkg/metrics"
	"hiddengems/pkg/utils"
)

type LocationServiceInterface interface {
	GenerateLocations(ctx context.Context, query string) ([]explorer.Location, error)
}

type LocationService struct {
	client      utils.CompletionClientInterface
	temperature float32
	timeout     time.Duration
	log         *zap.Logger
}

func NewLocationService(
	client utils.CompletionClientInterface,
	temperature float32,
	timeout time.Duration,
	log *zap.Logger,
) LocationServiceInterface {
	return &LocationService{
		client:      client,
		temperature: temperature,
		timeout:     timeout,
		log:         log.Named("locations"),
	}
}

// GenerateLocations makes exactly one upstream call and returns four validated
// locations or a *utils.LocationError. Nothing is retried.
func (s *LocationService) GenerateLocations(ctx context.Context, query string) ([]explorer.Location, error) {
	if strings.TrimSpace(query) == "" {
		return nil, utils.NewLocationError(utils.ErrMissingQuery, "Query is required")
	}

	provider, model := s.client.Provider(), s.client.Model()
	log := s.log.With(zap.String("provider", provider), zap.String("model", model))

	locations, err := s.generate(ctx, query, log)
	if err != nil {
		metrics.LocationRequestsTotal.WithLabelValues(provider, utils.ErrorCode(err)).Inc()
		return nil, err
	}
	metrics.LocationRequestsTotal.WithLabelValues(provider, "ok").Inc()
	return locations, nil
}

func (s *LocationService) generate(ctx context.Context, query string, log *zap.Logger) ([]explorer.Location, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	content, err := s.client.Complete(callCtx, utils.CompletionRequest{
		System:      locationSystemPrompt,
		User:        locationUserPrompt(query),
		Temperature: s.temperature,
		JSONOnly:    true,
	})
	elapsed := time.Since(start)
	metrics.UpstreamDuration.WithLabelValues(s.client.Provider(), s.client.Model()).Observe(elapsed.Seconds())

	if err != nil {
		log.Warn("upstream call failed", zap.Duration("elapsed", elapsed), zap.Error(err))
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return nil, utils.NewLocationError(utils.ErrUpstreamCall,
				fmt.Sprintf("Language model did not respond within %s", s.timeout))
		}
		return nil, utils.NewLocationError(utils.ErrUpstreamCall, err.Error())
	}
	if strings.TrimSpace(content) == "" {
		return nil, utils.NewLocationError(utils.ErrUpstreamCall, "No response from language model")
	}
	log.Debug("upstream response", zap.Duration("elapsed", elapsed), zap.String("content", content))

	locations, err := ParseLocations(content)
	if err != nil {
		log.Warn("rejected model response", zap.Error(err))
		return nil, err
	}

	for _, loc := range locations {
		if loc.Rarity < 1 || loc.Rarity > 100 {
			log.Warn("rarity outside 1-100", zap.String("location", loc.Name), zap.Float64("rarity", loc.Rarity))
		}
	}
	log.Info("locations generated", zap.Duration("elapsed", elapsed), zap.Int("count", len(locations)))
	return locations, nil
}
