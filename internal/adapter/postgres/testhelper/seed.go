package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/projecthub-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCompany creates a company with a unique name, domain and join code.
func SeedCompany(t *testing.T, pool *pgxpool.Pool) domain.Company {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	company := domain.Company{
		ID:        uuid.New(),
		Name:      "Company " + suffix,
		Domain:    "c-" + suffix + ".example.com",
		JoinCode:  strings.ToUpper(suffix),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO companies (id, name, domain, join_code, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		company.ID, company.Name, company.Domain, company.JoinCode, company.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompany: %v", err)
	}

	return company
}

// SeedUser creates a MEMBER user without a company.
// The password hash is a placeholder and does not verify against any password.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, nil, domain.UserRoleMember)
}

// SeedCompanyUser creates a user attached to the given company.
func SeedCompanyUser(t *testing.T, pool *pgxpool.Pool, companyID uuid.UUID, role domain.UserRole) domain.User {
	t.Helper()
	return seedUser(t, pool, &companyID, role)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, companyID *uuid.UUID, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "not-a-bcrypt-hash",
		Role:         role,
		CompanyID:    companyID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, company_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.Name, user.PasswordHash, string(user.Role), user.CompanyID, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedRefreshToken inserts a refresh token for the user with the given hash and expiry.
func SeedRefreshToken(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, hash string, expiresAt time.Time) domain.RefreshToken {
	t.Helper()

	tok := domain.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: expiresAt.UTC().Truncate(time.Microsecond),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		tok.ID, tok.UserID, tok.TokenHash, tok.ExpiresAt, tok.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRefreshToken: %v", err)
	}

	return tok
}
