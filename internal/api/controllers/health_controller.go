package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tourmap/internal/infra"
	"tourmap/pkg/logging"
	"tourmap/pkg/utils"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Healthz reports whether the database answers.
func (h *HealthController) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := infra.Ping(ctx, h.db); err != nil {
		logger := logging.GetFromContext(ctx)
		logger.Error().Err(err).Msg("health check failed")
		utils.RespondError(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
