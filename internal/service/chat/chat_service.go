package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"poultryfarm/backend/internal/domain/models"
	"poultryfarm/backend/internal/repository/mongodb"
)

// ErrValidation indicates a malformed message payload.
var ErrValidation = errors.New("invalid payload")

// adminSender marks messages authored from the admin console.
const adminSender = "admin"

// Service manages per-user admin chat threads.
type Service struct {
	repo   mongodb.ChatStore
	logger *zap.Logger
	now    func() time.Time
}

// NewService constructs a chat service.
func NewService(repo mongodb.ChatStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// SendAdminMessage appends an admin message to the recipient's thread.
func (s *Service) SendAdminMessage(ctx context.Context, recipientUID, text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("%w: text is required", ErrValidation)
	}

	return s.repo.PushMessage(ctx, recipientUID, models.ChatMessage{
		Text:      text,
		Sender:    adminSender,
		Timestamp: s.now().UnixMilli(),
	})
}

// ListThread returns a user's thread in chronological order.
func (s *Service) ListThread(ctx context.Context, uid string) ([]models.ChatMessage, error) {
	return s.repo.ListMessages(ctx, uid)
}

// EditMessage rewrites a message's text and marks it edited.
func (s *Service) EditMessage(ctx context.Context, uid, messageID, newText string) error {
	if newText == "" {
		return fmt.Errorf("%w: newText is required", ErrValidation)
	}
	return s.repo.UpdateMessageText(ctx, uid, messageID, newText)
}

// DeleteMessage removes a message from a thread.
func (s *Service) DeleteMessage(ctx context.Context, uid, messageID string) error {
	return s.repo.DeleteMessage(ctx, uid, messageID)
}
