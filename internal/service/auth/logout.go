package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/projecthub-backend/internal/domain"
	"github.com/heartmarshall/projecthub-backend/pkg/ctxutil"
)

// Logout ends every session of the user owning the presented refresh token.
// It always succeeds: unknown tokens and store failures are only logged.
func (s *Service) Logout(ctx context.Context, input LogoutInput) {
	if input.RefreshToken == "" {
		return
	}

	token, err := s.tokens.FindByToken(ctx, input.RefreshToken)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "logout: find token failed", slog.String("error", err.Error()))
		}
		return
	}

	if err := s.tokens.DeleteByUserID(ctx, token.UserID); err != nil {
		s.log.ErrorContext(ctx, "logout: delete tokens failed",
			slog.String("user_id", token.UserID.String()),
			slog.String("error", err.Error()))
		return
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", token.UserID.String()))
}

// ValidateToken verifies an access token and returns the identity it carries.
// Any verification failure wraps domain.ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (ctxutil.Identity, error) {
	claims, err := s.codec.Verify(token)
	if err != nil {
		return ctxutil.Identity{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	return ctxutil.Identity{
		Email:     claims.Subject,
		CompanyID: claims.CompanyID,
		Role:      claims.Role,
	}, nil
}
