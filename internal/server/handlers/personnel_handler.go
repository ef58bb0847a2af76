package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"poultryfarm/backend/internal/domain/models"
	service "poultryfarm/backend/internal/service/personnel"
)

// PersonnelHandler serves the personnel-record endpoints.
type PersonnelHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// NewPersonnelHandler constructs the HTTP handler adapter.
func NewPersonnelHandler(svc *service.Service, logger *zap.Logger) *PersonnelHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PersonnelHandler{svc: svc, logger: logger}
}

type personnelRequest struct {
	FullName      string  `json:"fullName" binding:"required"`
	Position      string  `json:"position"`
	ContactNumber string  `json:"contactNumber"`
	Address       string  `json:"address"`
	DailyRate     float64 `json:"dailyRate"`
	DateHired     string  `json:"dateHired"`
}

func (r personnelRequest) toRecord() models.PersonnelRecord {
	return models.PersonnelRecord{
		FullName:      r.FullName,
		Position:      r.Position,
		ContactNumber: r.ContactNumber,
		Address:       r.Address,
		DailyRate:     r.DailyRate,
		DateHired:     r.DateHired,
	}
}

// Create stores a new personnel record.
func (h *PersonnelHandler) Create(c *gin.Context) {
	var req personnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.svc.Create(c.Request.Context(), req.toRecord())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "id": id})
}

// List returns all personnel records.
func (h *PersonnelHandler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// Update replaces a personnel record.
func (h *PersonnelHandler) Update(c *gin.Context) {
	var req personnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), c.Param("id"), req.toRecord()); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// Delete removes a personnel record.
func (h *PersonnelHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
