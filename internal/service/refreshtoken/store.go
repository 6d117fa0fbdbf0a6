// Package refreshtoken keeps at most one live refresh token per user.
package refreshtoken

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/projecthub-backend/internal/auth"
	"github.com/heartmarshall/projecthub-backend/internal/domain"
)

// userRepo is the user directory the store locks against.
type userRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// tokenRepo persists refresh tokens by hash.
type tokenRepo interface {
	Insert(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	DeleteByHash(ctx context.Context, tokenHash string) (int64, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// txManager runs fn inside a single database transaction.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store issues, looks up, expires and deletes refresh tokens.
//
// Every write that installs a token runs in one transaction that first locks
// the owning user row, so concurrent calls for the same user are serialized
// and never leave two tokens behind.
type Store struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenRepo
	tx     txManager
	ttl    time.Duration
	now    func() time.Time
}

// NewStore creates a Store issuing tokens that live for ttl.
func NewStore(logger *slog.Logger, users userRepo, tokens tokenRepo, tx txManager, ttl time.Duration) *Store {
	return &Store{
		log:    logger.With("service", "refreshtoken"),
		users:  users,
		tokens: tokens,
		tx:     tx,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Create replaces any token the user holds with a fresh one.
// Fails with domain.ErrUserNotFound if the user does not exist.
func (s *Store) Create(ctx context.Context, userID uuid.UUID) (*domain.RefreshToken, error) {
	var created *domain.RefreshToken

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetByIDForUpdate(ctx, userID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("lock user: %w", err)
		}

		if _, err := s.tokens.DeleteByUserID(ctx, userID); err != nil {
			return fmt.Errorf("delete previous token: %w", err)
		}

		t, err := s.insertNew(ctx, userID)
		if err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("refreshtoken.Create: %w", err)
	}

	return created, nil
}

// FindByToken looks up a token by its raw value. Returns domain.ErrNotFound
// when no token matches. Expired tokens are returned as-is.
func (s *Store) FindByToken(ctx context.Context, raw string) (*domain.RefreshToken, error) {
	t, err := s.tokens.GetByHash(ctx, auth.HashToken(raw))
	if err != nil {
		return nil, fmt.Errorf("refreshtoken.FindByToken: %w", err)
	}
	return t, nil
}

// VerifyExpiration returns t unchanged while it is live. Once expired, the
// token is deleted and domain.ErrRefreshTokenExpired is returned.
func (s *Store) VerifyExpiration(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error) {
	if !t.IsExpired(s.now()) {
		return t, nil
	}

	if _, err := s.tokens.DeleteByHash(ctx, t.TokenHash); err != nil {
		return nil, fmt.Errorf("refreshtoken.VerifyExpiration delete: %w", err)
	}

	s.log.WarnContext(ctx, "expired refresh token removed",
		slog.String("user_id", t.UserID.String()))

	return nil, domain.ErrRefreshTokenExpired
}

// Rotate consumes t and installs a new token for the same user.
// The consumed token is deleted by its exact hash; if it is already gone
// (a concurrent rotation or a retry) domain.ErrInvalidRefreshToken is
// returned and nothing is inserted.
func (s *Store) Rotate(ctx context.Context, consumed *domain.RefreshToken) (*domain.RefreshToken, error) {
	var created *domain.RefreshToken

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetByIDForUpdate(ctx, consumed.UserID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrInvalidRefreshToken
			}
			return fmt.Errorf("lock user: %w", err)
		}

		n, err := s.tokens.DeleteByHash(ctx, consumed.TokenHash)
		if err != nil {
			return fmt.Errorf("delete consumed token: %w", err)
		}
		if n == 0 {
			return domain.ErrInvalidRefreshToken
		}

		if _, err := s.tokens.DeleteByUserID(ctx, consumed.UserID); err != nil {
			return fmt.Errorf("delete other tokens: %w", err)
		}

		t, err := s.insertNew(ctx, consumed.UserID)
		if err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("refreshtoken.Rotate: %w", err)
	}

	return created, nil
}

// DeleteByUserID removes the user's token. Absence is not an error.
func (s *Store) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.tokens.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("refreshtoken.DeleteByUserID: %w", err)
	}
	return nil
}

// DeleteExpired purges every expired token and returns how many were removed.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	n, err := s.tokens.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("refreshtoken.DeleteExpired: %w", err)
	}
	return n, nil
}

func (s *Store) insertNew(ctx context.Context, userID uuid.UUID) (*domain.RefreshToken, error) {
	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	now := s.now()
	t, err := s.tokens.Insert(ctx, &domain.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     raw,
		TokenHash: hash,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("insert token: %w", err)
	}
	t.Token = raw
	return t, nil
}
