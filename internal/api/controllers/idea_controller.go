package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hiddengems/internal/models/response_models"
	"hiddengems/internal/services"
	"hiddengems/pkg/utils"
)

type IdeaController struct {
	ideaService services.IdeaServiceInterface
}

func NewIdeaController(ideaService services.IdeaServiceInterface) *IdeaController {
	return &IdeaController{ideaService: ideaService}
}

// GET /api/ideas/random
func (i *IdeaController) RandomIdeaHandler(c *gin.Context) {
	utils.RespondSuccess(c, response_models.IdeaResponse{Idea: i.ideaService.RandomIdea()}, "")
}

// GET /health
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
