// Package token implements the RefreshToken repository using PostgreSQL.
// Only the SHA-256 hash of a token is stored.
package token

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/projecthub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/projecthub-backend/internal/domain"
)

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const tokenColumns = `id, user_id, token_hash, expires_at, created_at`

const insertSQL = `
INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + tokenColumns

const getByHashSQL = `
SELECT ` + tokenColumns + `
FROM refresh_tokens
WHERE token_hash = $1`

const deleteByHashSQL = `DELETE FROM refresh_tokens WHERE token_hash = $1`

const deleteByUserIDSQL = `DELETE FROM refresh_tokens WHERE user_id = $1`

const deleteExpiredSQL = `DELETE FROM refresh_tokens WHERE expires_at <= $1`

const countByUserIDSQL = `SELECT count(*) FROM refresh_tokens WHERE user_id = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Insert stores a new refresh token. A second token for the same user or a
// repeated hash yields domain.ErrAlreadyExists; an unknown user yields
// domain.ErrNotFound.
func (r *Repo) Insert(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, insertSQL,
		t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.CreatedAt,
	)

	saved, err := scanToken(row)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", t.UserID)
	}
	saved.Token = t.Token
	return saved, nil
}

// GetByHash returns the token with exactly this hash, expired or not.
// Returns domain.ErrNotFound when absent.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByHashSQL, tokenHash)

	t, err := scanToken(row)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return t, nil
}

// DeleteByHash removes the token with exactly this hash and reports how many
// rows were removed (0 or 1).
func (r *Repo) DeleteByHash(ctx context.Context, tokenHash string) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteByHashSQL, tokenHash)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}

// DeleteByUserID removes every token held by the user. Idempotent.
func (r *Repo) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteByUserIDSQL, userID)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", userID)
	}
	return tag.RowsAffected(), nil
}

// DeleteExpired removes all tokens whose expiry is at or before now.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteExpiredSQL, now)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}

// CountByUserID returns how many tokens the user currently holds.
func (r *Repo) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countByUserIDSQL, userID).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", userID)
	}
	return n, nil
}

func scanToken(row pgx.Row) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	if err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
