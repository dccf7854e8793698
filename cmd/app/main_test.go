package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hiddengems/internal/api/controllers"
	"hiddengems/internal/config"
	"hiddengems/internal/explorer"
	"hiddengems/internal/services"
	mem "hiddengems/pkg/memcache"
	"hiddengems/pkg/utils"
)

type noLocations struct{}

func (noLocations) GenerateLocations(context.Context, string) ([]explorer.Location, error) {
	return nil, utils.NewLocationError(utils.ErrUpstreamCall, "offline")
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Env: "test", AllowedOrigins: []string{"*"}}
	tokens, err := utils.NewSessionTokens("router-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewSessionTokens() error = %v", err)
	}
	log := zap.NewNop()
	sessions := services.NewSessionService(mem.NewSessions(time.Hour), tokens, noLocations{}, log)

	return ProvideRouter(cfg, log, tokens,
		controllers.NewLocationController(noLocations{}, log),
		controllers.NewSessionController(sessions, log),
		controllers.NewIdeaController(services.NewIdeaService()))
}

func TestRoutes(t *testing.T) {
	r := testRouter(t)

	cases := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/ideas/random", "", http.StatusOK},
		{http.MethodPost, "/api/sessions", "", http.StatusCreated},
		{http.MethodPost, "/api/generate-locations", `{"query":"x"}`, http.StatusInternalServerError},
		{http.MethodGet, "/api/sessions/profile", "", http.StatusUnauthorized},
		{http.MethodOptions, "/api/generate-locations", "", http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
			if w.Header().Get("X-Trace-ID") == "" {
				t.Fatalf("expected X-Trace-ID header")
			}
		})
	}
}
