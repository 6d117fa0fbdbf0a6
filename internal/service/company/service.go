// Package company serves tenant lookups.
package company

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/projecthub-backend/internal/domain"
	"github.com/heartmarshall/projecthub-backend/pkg/ctxutil"
)

// companyRepo defines the company repository interface needed by company service.
type companyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
}

// Service implements company read operations.
type Service struct {
	log       *slog.Logger
	companies companyRepo
}

// NewService creates a new company service instance.
func NewService(logger *slog.Logger, companies companyRepo) *Service {
	return &Service{
		log:       logger.With("service", "company"),
		companies: companies,
	}
}

// GetByID returns the company with the given id. The join code is blanked
// unless the caller is a member of that company.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("company.GetByID: %w", err)
	}

	if !isMember(ctx, c.ID) {
		view := *c
		view.JoinCode = ""
		return &view, nil
	}
	return c, nil
}

func isMember(ctx context.Context, companyID uuid.UUID) bool {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	return ok && identity.CompanyID != nil && *identity.CompanyID == companyID
}
