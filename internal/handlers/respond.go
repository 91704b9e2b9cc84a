package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success bodies are {message, data}; error bodies are {message, error}
// where error is a stable short code. Raw database or library error
// text never reaches the client.

func respondData(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{"message": message, "data": data})
}

func respondError(c *gin.Context, status int, message string, code string) {
	c.JSON(status, gin.H{"message": message, "error": code})
}

func (h HandlerSet) respondInternal(c *gin.Context, message string, err error) {
	h.log.Error().Err(err).
		Str("path", c.Request.URL.Path).
		Msg(message)
	respondError(c, http.StatusInternalServerError, message, "internal_error")
}
