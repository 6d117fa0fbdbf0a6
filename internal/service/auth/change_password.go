package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/projecthub-backend/internal/domain"
	"github.com/heartmarshall/projecthub-backend/pkg/ctxutil"
)

// ChangePassword replaces the authenticated user's password.
// Returns ErrInvalidOldPassword when the current password does not verify.
// Refresh tokens are left untouched.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return err
	}

	// Step 2: Load user
	user, err := s.users.GetByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidOldPassword
		}
		return fmt.Errorf("auth.ChangePassword get user: %w", err)
	}

	// Step 3: Verify old password
	if !s.hasher.Verify(input.OldPassword, user.PasswordHash) {
		return domain.ErrInvalidOldPassword
	}

	// Step 4: Store new hash
	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash, s.now()); err != nil {
		return fmt.Errorf("auth.ChangePassword: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.String("user_id", user.ID.String()))
	return nil
}
