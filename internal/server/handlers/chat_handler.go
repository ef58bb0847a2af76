package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	service "poultryfarm/backend/internal/service/chat"
)

// ChatHandler serves the admin messaging endpoints.
type ChatHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// NewChatHandler constructs the HTTP handler adapter.
func NewChatHandler(svc *service.Service, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{svc: svc, logger: logger}
}

type sendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// Send appends an admin message to the recipient's thread.
func (h *ChatHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.svc.SendAdminMessage(c.Request.Context(), c.Param("uid"), req.Text)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "id": id})
}

// List returns the user's thread in chronological order.
func (h *ChatHandler) List(c *gin.Context) {
	messages, err := h.svc.ListThread(c.Request.Context(), c.Param("uid"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

type editMessageRequest struct {
	NewText string `json:"newText" binding:"required"`
}

// Edit rewrites a message and flags it as edited.
func (h *ChatHandler) Edit(c *gin.Context) {
	var req editMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.EditMessage(c.Request.Context(), c.Param("uid"), c.Param("messageID"), req.NewText); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// Delete removes a message from the thread.
func (h *ChatHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteMessage(c.Request.Context(), c.Param("uid"), c.Param("messageID")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
