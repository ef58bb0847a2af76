package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	service "poultryfarm/backend/internal/service/weather"
)

// WeatherHandler serves the farm-site weather endpoint.
type WeatherHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// NewWeatherHandler constructs the HTTP handler adapter.
func NewWeatherHandler(svc *service.Service, logger *zap.Logger) *WeatherHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeatherHandler{svc: svc, logger: logger}
}

// Current returns the latest temperature reading. Weather is advisory
// dashboard data, so an upstream failure degrades to a placeholder
// response rather than an error.
func (h *WeatherHandler) Current(c *gin.Context) {
	reading, err := h.svc.Current(c.Request.Context())
	if err != nil {
		h.logger.Warn("weather lookup failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"temperature": "N/A", "weatherCode": nil, "unit": ""})
		return
	}
	c.JSON(http.StatusOK, reading)
}
