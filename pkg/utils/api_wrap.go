package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// GenerateErrorResponse is the body of a failed location generation.
type GenerateErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details"`
}

const generateFailedMessage = "Failed to generate locations"

func TraceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: TraceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: TraceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: TraceID(c),
	})
}

// RespondGenerateError writes any generator failure as a 500 carrying the detail verbatim.
func RespondGenerateError(c *gin.Context, log *zap.Logger, err error) {
	code := ErrorCode(err)
	log.Warn("location generation failed",
		zap.String("trace_id", TraceID(c)),
		zap.String("code", code),
		zap.Error(err))

	c.JSON(http.StatusInternalServerError, GenerateErrorResponse{
		Error:   generateFailedMessage,
		Code:    code,
		Details: err.Error(),
	})
}

func HandleServiceError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Session not found or expired")
	case errors.Is(err, ErrResultNotFound):
		RespondError(c, http.StatusNotFound, "No search with that query in history")
	case errors.Is(err, ErrSearchInProgress):
		RespondError(c, http.StatusConflict, "A search is already running for this session")
	case errors.Is(err, ErrMissingQuery), errors.Is(err, ErrUpstreamCall),
		errors.Is(err, ErrUpstreamFormat), errors.Is(err, ErrFieldValidation):
		RespondGenerateError(c, log, err)
	default:
		log.Error("unexpected service error", zap.String("trace_id", TraceID(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
