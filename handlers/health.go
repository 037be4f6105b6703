package handlers

import (
	"net/http"
	"time"

	"posada/utils"

	"github.com/gin-gonic/gin"
)

// HandleHealth reports liveness plus the latest dependency snapshot.
func HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    utils.Uptime().Seconds(),
		"services":  utils.GetHealthStatus(),
	})
}
