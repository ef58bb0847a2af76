package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"poultryfarm/backend/internal/forecast"
	"poultryfarm/backend/internal/repository/mongodb"
	"poultryfarm/backend/internal/service/batches"
	"poultryfarm/backend/internal/service/chat"
	"poultryfarm/backend/internal/service/personnel"
	"poultryfarm/backend/internal/service/users"
)

// respondError maps service errors onto HTTP statuses: missing records
// are 404, rejected payloads 400, everything else 500.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, mongodb.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, batches.ErrValidation),
		errors.Is(err, users.ErrValidation),
		errors.Is(err, chat.ErrValidation),
		errors.Is(err, personnel.ErrValidation),
		errors.Is(err, forecast.ErrInvalidPopulation),
		errors.Is(err, forecast.ErrInvalidStartWeight):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
