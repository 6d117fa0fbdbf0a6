package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/projecthub-backend/internal/domain"
)

// Refresh exchanges a refresh token for a new access/refresh pair.
// The presented token is consumed: it never works again, even if a later
// step of this request fails.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Look the token up
	token, err := s.tokens.FindByToken(ctx, input.RefreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "unknown refresh token presented")
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("auth.Refresh find token: %w", err)
	}

	// Step 3: Check expiry; an expired token is deleted here.
	if _, err := s.tokens.VerifyExpiration(ctx, token); err != nil {
		if errors.Is(err, domain.ErrRefreshTokenExpired) {
			return nil, domain.ErrRefreshTokenExpired
		}
		return nil, fmt.Errorf("auth.Refresh verify expiration: %w", err)
	}

	// Step 4: Get user
	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	// Step 5: Rotate. Keyed on the exact consumed hash, so a concurrent or
	// retried refresh with the same token loses with ErrInvalidRefreshToken.
	fresh, err := s.tokens.Rotate(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRefreshToken) {
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("auth.Refresh rotate: %w", err)
	}

	// Step 6: Issue access token
	access, err := s.issueAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}

	return &AuthResult{
		AccessToken:  access,
		RefreshToken: fresh.Token,
		User:         user,
	}, nil
}
