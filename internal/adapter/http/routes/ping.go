package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// addPingRoutes exposes the liveness probe.
func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
