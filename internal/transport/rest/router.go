package rest

import (
	"net/http"

	"github.com/heartmarshall/projecthub-backend/internal/transport/middleware"
)

// RouterDeps bundles what NewRouter mounts.
type RouterDeps struct {
	Auth    *AuthHandler
	Company *CompanyHandler
	Health  *HealthHandler

	// Global wraps every route. AuthLimit wraps the public auth routes only.
	Global    []middleware.Middleware
	AuthLimit middleware.Middleware
}

// NewRouter wires the HTTP surface.
func NewRouter(d RouterDeps) http.Handler {
	public := func(h http.HandlerFunc) http.Handler { return middleware.Chain(d.AuthLimit)(h) }
	protected := func(h http.HandlerFunc) http.Handler { return middleware.RequireAuth(h) }

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	mux.Handle("POST /api/auth/register/company", public(d.Auth.RegisterCompany))
	mux.Handle("POST /api/auth/register", public(d.Auth.Register))
	mux.Handle("POST /api/auth/login", public(d.Auth.Login))
	mux.Handle("POST /api/auth/refresh", public(d.Auth.Refresh))
	mux.Handle("POST /api/auth/logout", http.HandlerFunc(d.Auth.Logout))
	mux.Handle("POST /api/auth/change-password", protected(d.Auth.ChangePassword))

	mux.Handle("GET /api/company/{id}", protected(d.Company.Get))

	return middleware.Chain(d.Global...)(mux)
}
