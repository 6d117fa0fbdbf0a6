package domain

import (
	"time"

	"github.com/google/uuid"
)

// Company is a tenant. Users join it either by creating it or with its join code.
type Company struct {
	ID        uuid.UUID
	Name      string
	Domain    string
	JoinCode  string
	CreatedAt time.Time
}
