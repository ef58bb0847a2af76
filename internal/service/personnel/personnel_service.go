package personnel

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"poultryfarm/backend/internal/domain/models"
	"poultryfarm/backend/internal/repository/mongodb"
)

// ErrValidation indicates a malformed personnel payload.
var ErrValidation = errors.New("invalid payload")

// Service manages farm personnel records.
type Service struct {
	repo   mongodb.PersonnelStore
	logger *zap.Logger
}

// NewService constructs a personnel service.
func NewService(repo mongodb.PersonnelStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Create validates and stores a personnel record.
func (s *Service) Create(ctx context.Context, record models.PersonnelRecord) (string, error) {
	if record.FullName == "" {
		return "", fmt.Errorf("%w: fullName is required", ErrValidation)
	}
	if record.DailyRate < 0 {
		return "", fmt.Errorf("%w: dailyRate must not be negative", ErrValidation)
	}
	return s.repo.CreatePersonnel(ctx, record)
}

// List returns all personnel records.
func (s *Service) List(ctx context.Context) ([]models.PersonnelRecord, error) {
	return s.repo.ListPersonnel(ctx)
}

// Update replaces a personnel record.
func (s *Service) Update(ctx context.Context, id string, record models.PersonnelRecord) error {
	if record.FullName == "" {
		return fmt.Errorf("%w: fullName is required", ErrValidation)
	}
	return s.repo.UpdatePersonnel(ctx, id, record)
}

// Delete removes a personnel record.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeletePersonnel(ctx, id)
}
