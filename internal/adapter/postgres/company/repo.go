// Package company implements the Company repository using PostgreSQL.
// Queries are built with squirrel.
package company

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/projecthub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/projecthub-backend/internal/domain"
)

const (
	table              = "companies"
	joinCodeConstraint = "companies_join_code_key"
)

var columns = []string{"id", "name", "domain", "join_code", "created_at"}

// builder produces PostgreSQL ($n) placeholders.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides company persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new company repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a company by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByDomain returns the company registered under the given domain.
func (r *Repo) GetByDomain(ctx context.Context, domainName string) (*domain.Company, error) {
	return r.getOne(ctx, squirrel.Eq{"domain": domainName}, uuid.Nil)
}

// GetByJoinCode returns the company owning the given join code.
func (r *Repo) GetByJoinCode(ctx context.Context, code string) (*domain.Company, error) {
	return r.getOne(ctx, squirrel.Eq{"join_code": code}, uuid.Nil)
}

// Create inserts a company. A name, domain or join code collision yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	query := builder.
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.Name, c.Domain, c.JoinCode, c.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert company: %w", err)
	}

	created, err := scanCompany(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == joinCodeConstraint {
			return nil, fmt.Errorf("company %s: %w", c.ID, domain.ErrJoinCodeTaken)
		}
		return nil, postgres.MapError(err, "company", c.ID)
	}
	return created, nil
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Eq, id uuid.UUID) (*domain.Company, error) {
	sql, args, err := builder.Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select company: %w", err)
	}

	c, err := scanCompany(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "company", id)
	}
	return c, nil
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	if err := row.Scan(&c.ID, &c.Name, &c.Domain, &c.JoinCode, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
