package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hiddengems/internal/models/request_models"
	"hiddengems/internal/services"
	"hiddengems/pkg/middleware"
	"hiddengems/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
	log            *zap.Logger
}

func NewSessionController(sessionService services.SessionServiceInterface, log *zap.Logger) *SessionController {
	return &SessionController{
		sessionService: sessionService,
		log:            log,
	}
}

// POST /api/sessions
func (s *SessionController) StartSessionHandler(c *gin.Context) {
	session, err := s.sessionService.StartSession(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, s.log, err)
		return
	}
	utils.RespondCreated(c, session, "Session started")
}

// POST /api/sessions/search
func (s *SessionController) SearchHandler(c *gin.Context) {
	var req request_models.SessionSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := s.sessionService.Search(c.Request.Context(), c.GetString(middleware.SessionIDKey), req.Query, req.Filter)
	if err != nil {
		utils.HandleServiceError(c, s.log, err)
		return
	}
	utils.RespondSuccess(c, result, "Search completed")
}

// GET /api/sessions/history?query=&country=
func (s *SessionController) HistoryHandler(c *gin.Context) {
	q := services.HistoryQuery{
		Query:   c.Query("query"),
		Country: c.Query("country"),
	}
	history, err := s.sessionService.History(c.Request.Context(), c.GetString(middleware.SessionIDKey), q)
	if err != nil {
		utils.HandleServiceError(c, s.log, err)
		return
	}
	utils.RespondSuccess(c, history, "History retrieved")
}

// GET /api/sessions/profile
func (s *SessionController) ProfileHandler(c *gin.Context) {
	profile, err := s.sessionService.Profile(c.Request.Context(), c.GetString(middleware.SessionIDKey))
	if err != nil {
		utils.HandleServiceError(c, s.log, err)
		return
	}
	utils.RespondSuccess(c, profile, "Profile retrieved")
}

// GET /api/sessions/countries
func (s *SessionController) CountriesHandler(c *gin.Context) {
	countries, err := s.sessionService.Countries(c.Request.Context(), c.GetString(middleware.SessionIDKey))
	if err != nil {
		utils.HandleServiceError(c, s.log, err)
		return
	}
	utils.RespondSuccess(c, countries, "Countries retrieved")
}
