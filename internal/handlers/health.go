package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h HandlerSet) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	if err := h.db.Ping(ctx); err != nil {
		dbStatus = "down"
	}
	redisStatus := "up"
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		redisStatus = "down"
	}

	status := http.StatusOK
	if dbStatus != "up" || redisStatus != "up" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"message": "ok",
		"data": gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		},
	})
}
