package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/projecthub-backend/internal/domain"
)

// Login authenticates a user with email + password and starts a new session,
// replacing any refresh token the user held. Returns ErrInvalidCredentials
// both when the email is unknown and when the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.TrimSpace(input.Email)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Check login throttle. A limiter outage does not block logins.
	if err := s.limiter.Check(ctx, input.Email); err != nil {
		if errors.Is(err, domain.ErrTooManyLoginAttempts) {
			s.log.WarnContext(ctx, "login throttled")
			return nil, err
		}
		s.log.WarnContext(ctx, "login limiter unavailable", slog.String("error", err.Error()))
	}

	// Step 3: Find user by email
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.burnPasswordCheck(ctx, input.Password)
			s.recordLoginFailure(ctx, input.Email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	// Step 4: Verify password
	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		s.recordLoginFailure(ctx, input.Email)
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, input.Email); err != nil {
		s.log.WarnContext(ctx, "login limiter reset failed", slog.String("error", err.Error()))
	}

	// Step 5: Issue tokens
	result, err := s.startSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return result, nil
}

func (s *Service) recordLoginFailure(ctx context.Context, email string) {
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.log.WarnContext(ctx, "login limiter record failed", slog.String("error", err.Error()))
	}
}
