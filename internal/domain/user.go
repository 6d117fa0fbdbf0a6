package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is the role of a user inside their company.
type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleMember UserRole = "MEMBER"
)

func (r UserRole) String() string { return string(r) }

// IsValid reports whether r is a known role.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleMember:
		return true
	}
	return false
}

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	CompanyID    *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCompany reports whether the user belongs to a tenant.
func (u *User) HasCompany() bool {
	return u.CompanyID != nil && *u.CompanyID != uuid.Nil
}

// RefreshToken is the single long-lived credential a user may hold.
// Only TokenHash is persisted; Token carries the raw value right after issuance.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired returns true once now has reached the expiry instant.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
