package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"poultryfarm/backend/internal/domain/models"
	service "poultryfarm/backend/internal/service/batches"
)

// LedgerHandler serves the expense and sales ledger endpoints nested
// under a batch.
type LedgerHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// NewLedgerHandler constructs the HTTP handler adapter.
func NewLedgerHandler(svc *service.Service, logger *zap.Logger) *LedgerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerHandler{svc: svc, logger: logger}
}

type expenseRequest struct {
	Category      string  `json:"category" binding:"required"`
	FeedType      string  `json:"feedType"`
	ItemName      string  `json:"itemName" binding:"required"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Quantity      float64 `json:"quantity"`
	PurchaseCount float64 `json:"purchaseCount"`
	Unit          string  `json:"unit"`
	Date          string  `json:"date" binding:"required"`
}

func (r expenseRequest) toRecord() models.ExpenseRecord {
	return models.ExpenseRecord{
		Category:      r.Category,
		FeedType:      r.FeedType,
		ItemName:      r.ItemName,
		Description:   r.Description,
		Amount:        r.Amount,
		Quantity:      r.Quantity,
		PurchaseCount: r.PurchaseCount,
		Unit:          r.Unit,
		Date:          r.Date,
	}
}

// AddExpense appends an expense to the batch ledger.
func (h *LedgerHandler) AddExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid expense payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.svc.AddExpense(c.Request.Context(), c.Param("id"), req.toRecord())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "id": id})
}

// ListExpenses returns the batch's expense ledger.
func (h *LedgerHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.svc.ListExpenses(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// UpdateExpense replaces an expense record.
func (h *LedgerHandler) UpdateExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.UpdateExpense(c.Request.Context(), c.Param("id"), c.Param("expenseID"), req.toRecord()); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

type recategorizeRequest struct {
	Category string `json:"category" binding:"required"`
	FeedType string `json:"feedType" binding:"required"`
}

// RecategorizeExpense updates an expense's category and feed type only.
func (h *LedgerHandler) RecategorizeExpense(c *gin.Context) {
	var req recategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.RecategorizeExpense(c.Request.Context(), c.Param("id"), c.Param("expenseID"), req.Category, req.FeedType); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// DeleteExpense removes an expense record.
func (h *LedgerHandler) DeleteExpense(c *gin.Context) {
	if err := h.svc.DeleteExpense(c.Request.Context(), c.Param("id"), c.Param("expenseID")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

type saleRequest struct {
	BuyerName       string  `json:"buyerName" binding:"required"`
	Address         string  `json:"address"`
	Quantity        int     `json:"quantity"`
	PricePerChicken float64 `json:"pricePerChicken"`
	DateOfPurchase  string  `json:"dateOfPurchase" binding:"required"`
}

func (r saleRequest) toRecord() models.SalesRecord {
	return models.SalesRecord{
		BuyerName:       r.BuyerName,
		Address:         r.Address,
		Quantity:        r.Quantity,
		PricePerChicken: r.PricePerChicken,
		DateOfPurchase:  r.DateOfPurchase,
	}
}

// AddSale appends a sale; the total is computed server-side.
func (h *LedgerHandler) AddSale(c *gin.Context) {
	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid sale payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.svc.AddSale(c.Request.Context(), c.Param("id"), req.toRecord())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "id": id})
}

// ListSales returns the batch's sales ledger.
func (h *LedgerHandler) ListSales(c *gin.Context) {
	sales, err := h.svc.ListSales(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

// UpdateSale replaces a sale record, recomputing the total.
func (h *LedgerHandler) UpdateSale(c *gin.Context) {
	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.UpdateSale(c.Request.Context(), c.Param("id"), c.Param("saleID"), req.toRecord()); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// DeleteSale removes a sale record.
func (h *LedgerHandler) DeleteSale(c *gin.Context) {
	if err := h.svc.DeleteSale(c.Request.Context(), c.Param("id"), c.Param("saleID")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
