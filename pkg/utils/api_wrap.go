package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourmap/pkg/logging"
)

type APIResponse struct {
	Status  string              `json:"status"`
	Code    int                 `json:"code"`
	Message string              `json:"message,omitempty"`
	TraceID string              `json:"trace_id,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func RespondError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func RespondValidationError(c *gin.Context, verr *ValidationError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "validation failed",
		TraceID: c.GetString("trace_id"),
		Errors:  verr.Fields,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var verr *ValidationError
	logger := logging.GetFromContext(c.Request.Context())

	switch {
	case errors.As(err, &verr):
		RespondValidationError(c, verr)
	case errors.Is(err, ErrSpotNotFound):
		RespondError(c, http.StatusNotFound, "Spot not found")
	case errors.Is(err, ErrSpotImageNotFound):
		RespondError(c, http.StatusNotFound, "Spot image not found")
	case errors.Is(err, ErrRouteNotFound):
		RespondError(c, http.StatusNotFound, "Route not found")
	case errors.Is(err, ErrCategoryNotFound):
		RespondError(c, http.StatusNotFound, "Category not found")
	case errors.Is(err, ErrDatabaseError), errors.Is(err, ErrStorageError):
		logger.Error().Err(err).Msg("request failed")
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logger.Error().Err(err).Msg("unexpected error")
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
