package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/banking_ledger/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondWithError maps err to a status code and writes the JSON error body.
// Server side failures are logged and answered with fallback so internals stay hidden.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallback})
		return
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondWithBindError answers a malformed or invalid request body.
func respondWithBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
