package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hiddengems/internal/models/request_models"
	"hiddengems/internal/models/response_models"
	"hiddengems/internal/services"
	"hiddengems/pkg/utils"
)

type LocationController struct {
	locationService services.LocationServiceInterface
	log             *zap.Logger
}

func NewLocationController(locationService services.LocationServiceInterface, log *zap.Logger) *LocationController {
	return &LocationController{
		locationService: locationService,
		log:             log,
	}
}

// POST /api/generate-locations
func (l *LocationController) GenerateLocationsHandler(c *gin.Context) {
	var req request_models.GenerateLocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondGenerateError(c, l.log, utils.NewLocationError(utils.ErrMissingQuery, "Query is required"))
		return
	}

	locations, err := l.locationService.GenerateLocations(c.Request.Context(), req.Query)
	if err != nil {
		utils.RespondGenerateError(c, l.log, err)
		return
	}

	c.JSON(http.StatusOK, response_models.LocationsResponse{Locations: locations})
}
