package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"landscape-api/internal/models"
)

type StatsHandler struct {
	store QueryService
	log   *zap.Logger
}

func NewStatsHandler(store QueryService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{store: store, log: log}
}

// GetStats returns aggregate counts and location coverage for the store.
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.store.GetStats()
	if err != nil {
		h.log.Error("failed to fetch stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("internal server error"))
		return
	}

	c.JSON(http.StatusOK, models.NewSuccessResponse(stats))
}
