// Package history stores completed parse results so authenticated
// users can fetch them again later.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("parse result not found")

// Record is one saved parse. Result holds the full resume schema JSON
// as returned to the client.
type Record struct {
	ID           uuid.UUID       `json:"id"`
	OwnerID      *uuid.UUID      `json:"ownerId,omitempty"`
	Filename     string          `json:"filename"`
	FileType     string          `json:"fileType"`
	SizeBytes    int64           `json:"sizeBytes"`
	Model        string          `json:"model"`
	Result       json.RawMessage `json:"result,omitempty"`
	Warnings     []string        `json:"warnings"`
	InputTokens  int             `json:"inputTokens"`
	OutputTokens int             `json:"outputTokens"`
	TotalCost    float64         `json:"totalCost"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Repository abstracts parse-result persistence.
type Repository interface {
	Save(ctx context.Context, rec Record) error
	Get(ctx context.Context, id uuid.UUID) (Record, error)
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Record, error)
	ListAll(ctx context.Context, limit, offset int) ([]Record, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
