package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/projecthub-backend/internal/auth"
	"github.com/heartmarshall/projecthub-backend/internal/domain"
)

const (
	minNameLen      = 2
	maxNameLen      = 100
	maxEmailLen     = 254
	maxDomainLen    = 253
	minPasswordLen  = 8
	maxJoinCodeLen  = 32
	maxRefreshToken = 512
)

// validate checks email and hostname formats.
var validate = validator.New()

// RegisterCompanyInput creates a company together with its first (ADMIN) user.
type RegisterCompanyInput struct {
	CompanyName   string
	Domain        string
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

func (i *RegisterCompanyInput) normalize() {
	i.CompanyName = strings.TrimSpace(i.CompanyName)
	i.Domain = strings.ToLower(strings.TrimSpace(i.Domain))
	i.AdminName = strings.TrimSpace(i.AdminName)
	i.AdminEmail = strings.TrimSpace(i.AdminEmail)
}

// Validate validates the register-company input.
func (i RegisterCompanyInput) Validate() error {
	var errs []domain.FieldError

	errs = checkName(errs, "companyName", i.CompanyName)
	if i.Domain == "" {
		errs = append(errs, domain.FieldError{Field: "domain", Message: "required"})
	} else if len(i.Domain) > maxDomainLen || validate.Var(i.Domain, "fqdn") != nil {
		errs = append(errs, domain.FieldError{Field: "domain", Message: "invalid domain"})
	}
	errs = checkName(errs, "admin.name", i.AdminName)
	errs = checkEmail(errs, "admin.email", i.AdminEmail)
	errs = checkPassword(errs, "admin.password", i.AdminPassword)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RegisterInput registers a MEMBER into an existing company by its join code.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	JoinCode string
}

func (i *RegisterInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.TrimSpace(i.Email)
	i.JoinCode = strings.ToUpper(strings.TrimSpace(i.JoinCode))
}

// Validate validates the register-by-join-code input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = checkName(errs, "name", i.Name)
	errs = checkEmail(errs, "email", i.Email)
	errs = checkPassword(errs, "password", i.Password)
	if i.JoinCode == "" {
		errs = append(errs, domain.FieldError{Field: "joinCode", Message: "required"})
	} else if len(i.JoinCode) > maxJoinCodeLen {
		errs = append(errs, domain.FieldError{Field: "joinCode", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds credentials for login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input. Only presence is checked so that a
// malformed email still reports invalid credentials.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate rejects tokens that cannot match any stored one. Both cases are
// reported as ErrInvalidRefreshToken, like an unknown token.
func (i RefreshInput) Validate() error {
	if i.RefreshToken == "" || len(i.RefreshToken) > maxRefreshToken {
		return domain.ErrInvalidRefreshToken
	}
	return nil
}

// LogoutInput holds the refresh token being signed out.
type LogoutInput struct {
	RefreshToken string
}

// ChangePasswordInput holds the current and the desired password.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// Validate validates the change-password input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.OldPassword == "" {
		errs = append(errs, domain.FieldError{Field: "oldPassword", Message: "required"})
	}
	errs = checkPassword(errs, "newPassword", i.NewPassword)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Field checks
// ---------------------------------------------------------------------------

func checkName(errs []domain.FieldError, field, v string) []domain.FieldError {
	n := utf8.RuneCountInString(v)
	switch {
	case n == 0:
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case n < minNameLen:
		return append(errs, domain.FieldError{Field: field, Message: "too short"})
	case n > maxNameLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func checkEmail(errs []domain.FieldError, field, v string) []domain.FieldError {
	switch {
	case v == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case len(v) > maxEmailLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	case validate.Var(v, "email") != nil:
		return append(errs, domain.FieldError{Field: field, Message: "invalid email"})
	}
	return errs
}

// checkPassword bounds the length in bytes; bcrypt ignores anything past 72.
func checkPassword(errs []domain.FieldError, field, v string) []domain.FieldError {
	switch {
	case v == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case len(v) < minPasswordLen:
		return append(errs, domain.FieldError{Field: field, Message: "too short"})
	case len(v) > auth.MaxPasswordBytes:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
