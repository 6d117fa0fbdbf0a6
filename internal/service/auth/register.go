package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/projecthub-backend/internal/auth"
	"github.com/heartmarshall/projecthub-backend/internal/domain"
)

// maxJoinCodeAttempts bounds retries after a join code collision.
const maxJoinCodeAttempts = 3

// RegisterCompany creates a company and its ADMIN user, then starts a session.
// Returns ErrDuplicateCompany if the company name or domain is taken and
// ErrDuplicateUser if the email is taken.
func (s *Service) RegisterCompany(ctx context.Context, input RegisterCompanyInput) (*AuthResult, error) {
	input.normalize()

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := s.hasher.Hash(input.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("auth.RegisterCompany hash password: %w", err)
	}

	// Step 3: Create company + admin in one transaction.
	// A join code collision aborts the transaction, so the whole attempt
	// is retried with a fresh code.
	var user *domain.User
	for attempt := 1; ; attempt++ {
		user, err = s.createCompanyWithAdmin(ctx, input, hash)
		if !errors.Is(err, domain.ErrJoinCodeTaken) || attempt == maxJoinCodeAttempts {
			break
		}
		s.log.WarnContext(ctx, "join code collision, retrying", slog.Int("attempt", attempt))
	}
	if err != nil {
		return nil, fmt.Errorf("auth.RegisterCompany: %w", err)
	}

	// Step 4: Issue tokens
	result, err := s.startSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.RegisterCompany: %w", err)
	}

	s.log.InfoContext(ctx, "company registered",
		slog.String("user_id", user.ID.String()),
		slog.String("company_id", user.CompanyID.String()))

	return result, nil
}

// RegisterWithJoinCode creates a MEMBER user in the company owning the join
// code, then starts a session. Returns ErrInvalidJoinCode if no company
// matches and ErrDuplicateUser if the email is taken.
func (s *Service) RegisterWithJoinCode(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.normalize()

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve company
	company, err := s.companies.GetByJoinCode(ctx, input.JoinCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidJoinCode
		}
		return nil, fmt.Errorf("auth.RegisterWithJoinCode get company: %w", err)
	}

	// Step 3: Hash password
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.RegisterWithJoinCode hash password: %w", err)
	}

	// Step 4: Create user
	if err := s.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, fmt.Errorf("auth.RegisterWithJoinCode: %w", err)
	}
	user, err := s.createUser(ctx, input.Name, input.Email, hash, domain.UserRoleMember, company.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Company removed between lookup and insert.
			return nil, domain.ErrInvalidJoinCode
		}
		return nil, fmt.Errorf("auth.RegisterWithJoinCode: %w", err)
	}

	// Step 5: Issue tokens
	result, err := s.startSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.RegisterWithJoinCode: %w", err)
	}

	s.log.InfoContext(ctx, "user joined company",
		slog.String("user_id", user.ID.String()),
		slog.String("company_id", company.ID.String()))

	return result, nil
}

// createCompanyWithAdmin runs one registration attempt with a fresh join code.
// The pre-checks give precise errors; unique constraints catch races.
func (s *Service) createCompanyWithAdmin(ctx context.Context, input RegisterCompanyInput, hash string) (*domain.User, error) {
	joinCode, err := auth.GenerateJoinCode()
	if err != nil {
		return nil, fmt.Errorf("join code: %w", err)
	}

	var user *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ensureDomainFree(txCtx, input.Domain); err != nil {
			return err
		}
		if err := s.ensureEmailFree(txCtx, input.AdminEmail); err != nil {
			return err
		}

		company, err := s.companies.Create(txCtx, &domain.Company{
			ID:        uuid.New(),
			Name:      input.CompanyName,
			Domain:    input.Domain,
			JoinCode:  joinCode,
			CreatedAt: s.now(),
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrJoinCodeTaken):
				return domain.ErrJoinCodeTaken
			case errors.Is(err, domain.ErrAlreadyExists):
				return domain.ErrDuplicateCompany
			}
			return fmt.Errorf("create company: %w", err)
		}

		user, err = s.createUser(txCtx, input.AdminName, input.AdminEmail, hash, domain.UserRoleAdmin, company.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) ensureDomainFree(ctx context.Context, domainName string) error {
	_, err := s.companies.GetByDomain(ctx, domainName)
	switch {
	case err == nil:
		return domain.ErrDuplicateCompany
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("check domain: %w", err)
	}
}

func (s *Service) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.ErrDuplicateUser
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("check email: %w", err)
	}
}

// createUser inserts the user. A unique violation from a concurrent
// registration with the same email maps to ErrDuplicateUser.
func (s *Service) createUser(ctx context.Context, name, email, hash string, role domain.UserRole, companyID uuid.UUID) (*domain.User, error) {
	now := s.now()
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		CompanyID:    &companyID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
