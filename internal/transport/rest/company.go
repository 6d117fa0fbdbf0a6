package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/projecthub-backend/internal/domain"
)

type companyService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
}

// CompanyHandler serves company REST endpoints.
type CompanyHandler struct {
	svc companyService
	log *slog.Logger
}

// NewCompanyHandler creates a CompanyHandler.
func NewCompanyHandler(svc companyService, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{svc: svc, log: logger.With("handler", "company")}
}

type companyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain"`
	JoinCode  string    `json:"joinCode,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Get handles GET /api/company/{id}. A malformed id cannot name a company,
// so it answers 404 like an unknown one.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "company not found")
		return
	}

	company, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, companyResponse{
		ID:        company.ID.String(),
		Name:      company.Name,
		Domain:    company.Domain,
		JoinCode:  company.JoinCode,
		CreatedAt: company.CreatedAt,
	})
}
