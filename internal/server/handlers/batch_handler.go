package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"poultryfarm/backend/internal/domain/models"
	service "poultryfarm/backend/internal/service/batches"
)

// BatchHandler serves the batch lifecycle endpoints.
type BatchHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// NewBatchHandler constructs the HTTP handler adapter.
func NewBatchHandler(svc *service.Service, logger *zap.Logger) *BatchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchHandler{svc: svc, logger: logger}
}

type createBatchRequest struct {
	BatchName            string  `json:"batchName" binding:"required"`
	DateCreated          string  `json:"dateCreated" binding:"required"`
	ExpectedCompleteDate string  `json:"expectedCompleteDate" binding:"required"`
	StartingPopulation   int     `json:"startingPopulation"`
	AverageChickWeight   float64 `json:"averageChickWeight"`
	VitaminBudget        float64 `json:"vitaminBudget"`
}

// Create registers a new batch in active status.
func (h *BatchHandler) Create(c *gin.Context) {
	var req createBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid batch payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.svc.CreateBatch(c.Request.Context(), models.Batch{
		BatchName:            req.BatchName,
		DateCreated:          req.DateCreated,
		ExpectedCompleteDate: req.ExpectedCompleteDate,
		StartingPopulation:   req.StartingPopulation,
		AverageChickWeight:   req.AverageChickWeight,
		VitaminBudget:        req.VitaminBudget,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "id": id})
}

// List returns all batches with their ledgers.
func (h *BatchHandler) List(c *gin.Context) {
	batches, err := h.svc.ListBatches(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, batches)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves a batch through its lifecycle.
func (h *BatchHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// Delete removes a batch and everything under it.
func (h *BatchHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteBatch(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
