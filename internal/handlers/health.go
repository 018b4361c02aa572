package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"landscape-api/internal/models"
)

// HealthHandler reports liveness. No envelope; monitoring expects the bare
// status shape.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status: "ok",
	})
}
