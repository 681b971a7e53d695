package handlers

import (
	"context"
	"github.com/gin-gonic/gin"
	"net/http"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers 200 while the database is reachable.
func HealthHandler(c *gin.Context, db Pinger) {
	if err := db.Ping(c); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
