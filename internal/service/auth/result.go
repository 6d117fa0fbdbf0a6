package auth

import "github.com/heartmarshall/projecthub-backend/internal/domain"

// AuthResult is returned by every token-issuing operation.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	User         *domain.User
}
