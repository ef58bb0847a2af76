package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"poultryfarm/backend/internal/domain/models"
	"poultryfarm/backend/internal/repository/mongodb"
	"poultryfarm/backend/pkg/clients/identity"
)

// ErrValidation indicates a malformed user payload.
var ErrValidation = errors.New("invalid payload")

// emailDomain turns a farm username into the email the identity service
// keys accounts by.
const emailDomain = "@poultry.com"

// Service pairs identity-service account operations with stored profiles.
type Service struct {
	identity identity.Client
	repo     mongodb.UserStore
	logger   *zap.Logger
	now      func() time.Time
}

// NewService constructs a user service.
func NewService(identityClient identity.Client, repo mongodb.UserStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{identity: identityClient, repo: repo, logger: logger, now: time.Now}
}

// CreateUser provisions an account in the identity service and stores
// the matching profile.
func (s *Service) CreateUser(ctx context.Context, firstName, lastName, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	account, err := s.identity.CreateAccount(ctx, identity.CreateAccountRequest{
		Email:       username + emailDomain,
		Password:    password,
		DisplayName: username,
	})
	if err != nil {
		return "", fmt.Errorf("provision account: %w", err)
	}

	profile := models.UserProfile{
		UID:         account.UID,
		FirstName:   firstName,
		LastName:    lastName,
		FullName:    firstName + " " + lastName,
		Username:    username,
		Role:        "user",
		Status:      "offline",
		DateCreated: s.now().UnixMilli(),
	}

	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return "", err
	}

	s.logger.Info("user created", zap.String("uid", account.UID), zap.String("username", username))
	return account.UID, nil
}

// ListUsers returns all stored profiles.
func (s *Service) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	return s.repo.ListProfiles(ctx)
}

// DeleteUser removes the account and its profile/chat data.
func (s *Service) DeleteUser(ctx context.Context, uid string) error {
	if err := s.identity.DeleteAccount(ctx, uid); err != nil {
		return fmt.Errorf("deprovision account: %w", err)
	}
	return s.repo.DeleteProfile(ctx, uid)
}
