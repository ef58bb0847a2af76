package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	service "poultryfarm/backend/internal/service/forecasting"
)

// defaultForecastHorizonMonths applies when the caller omits the
// months query parameter.
const defaultForecastHorizonMonths = 3

// ForecastHandler serves the forecasting endpoints.
type ForecastHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// NewForecastHandler constructs the HTTP handler adapter.
func NewForecastHandler(svc *service.Service, logger *zap.Logger) *ForecastHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ForecastHandler{svc: svc, logger: logger}
}

// FeedForecast returns the 30-day feed plan and weight projection for a
// batch.
func (h *ForecastHandler) FeedForecast(c *gin.Context) {
	result, err := h.svc.FeedForecast(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// InventoryForecast returns the simulated depletion schedule for the
// batch's medication/vitamin purchases.
func (h *ForecastHandler) InventoryForecast(c *gin.Context) {
	events, err := h.svc.InventoryForecast(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"forecast": events})
}

// VitaminTrends returns per-item usage trends across completed batches.
func (h *ForecastHandler) VitaminTrends(c *gin.Context) {
	summaries, err := h.svc.VitaminTrends(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trends": summaries})
}

// MonthlyVitamins projects vitamin/medication spend for the requested
// horizon (default three months).
func (h *ForecastHandler) MonthlyVitamins(c *gin.Context) {
	horizon := defaultForecastHorizonMonths
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be a positive integer"})
			return
		}
		horizon = parsed
	}

	result, err := h.svc.MonthlyVitaminForecast(c.Request.Context(), horizon)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
