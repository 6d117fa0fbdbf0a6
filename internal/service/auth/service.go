// Package auth implements registration, login, token refresh, logout and
// password change on top of the credential, access-token and refresh-token
// primitives.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/projecthub-backend/internal/auth"
	"github.com/heartmarshall/projecthub-backend/internal/config"
	"github.com/heartmarshall/projecthub-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, updatedAt time.Time) error
}

// companyRepo defines the company repository interface needed by auth service.
type companyRepo interface {
	GetByDomain(ctx context.Context, domainName string) (*domain.Company, error)
	GetByJoinCode(ctx context.Context, code string) (*domain.Company, error)
	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
}

// tokenStore defines the refresh token store needed by auth service.
type tokenStore interface {
	Create(ctx context.Context, userID uuid.UUID) (*domain.RefreshToken, error)
	FindByToken(ctx context.Context, raw string) (*domain.RefreshToken, error)
	VerifyExpiration(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error)
	Rotate(ctx context.Context, consumed *domain.RefreshToken) (*domain.RefreshToken, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// passwordHasher hashes and verifies passwords.
type passwordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// tokenCodec signs and verifies access tokens.
type tokenCodec interface {
	Issue(subject string, claims auth.Claims, ttl time.Duration) (string, error)
	Verify(token string) (*auth.Claims, error)
}

// loginLimiter throttles repeated failed logins per email.
type loginLimiter interface {
	Check(ctx context.Context, email string) error
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	companies companyRepo
	tokens    tokenStore
	tx        txManager
	hasher    passwordHasher
	codec     tokenCodec
	limiter   loginLimiter
	cfg       config.AuthConfig
	now       func() time.Time

	// dummyHash is compared against when the email is unknown, so both
	// login failures cost one hash comparison.
	dummyOnce sync.Once
	dummyHash string
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	companies companyRepo,
	tokens tokenStore,
	tx txManager,
	hasher passwordHasher,
	codec tokenCodec,
	limiter loginLimiter,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		companies: companies,
		tokens:    tokens,
		tx:        tx,
		hasher:    hasher,
		codec:     codec,
		limiter:   limiter,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *Service) burnPasswordCheck(ctx context.Context, plain string) {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("projecthub-unknown-user")
		if err != nil {
			s.log.WarnContext(ctx, "dummy password hash failed", slog.String("error", err.Error()))
			return
		}
		s.dummyHash = hash
	})
	if s.dummyHash != "" {
		s.hasher.Verify(plain, s.dummyHash)
	}
}

// issueAccessToken signs an access token for user. The tenant claim is set
// only when the user belongs to a company.
func (s *Service) issueAccessToken(user *domain.User) (string, error) {
	claims := auth.Claims{Role: user.Role.String()}
	if user.HasCompany() {
		claims.CompanyID = user.CompanyID
	}

	token, err := s.codec.Issue(user.Email, claims, s.cfg.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}
	return token, nil
}

// startSession creates a fresh refresh token for user, superseding any
// previous one, and pairs it with a new access token.
func (s *Service) startSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	refresh, err := s.tokens.Create(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("create refresh token: %w", err)
	}

	access, err := s.issueAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		AccessToken:  access,
		RefreshToken: refresh.Token,
		User:         user,
	}, nil
}
