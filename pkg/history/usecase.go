package history

import (
	"context"

	"github.com/google/uuid"
)

// Viewer scopes history access: admins see every record, everyone else
// only their own.
type Viewer struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// UseCase describes parse-history behavior.
type UseCase interface {
	Save(ctx context.Context, rec Record) error
	Get(ctx context.Context, v Viewer, id uuid.UUID) (Record, error)
	List(ctx context.Context, v Viewer, limit, offset int) ([]Record, error)
	Delete(ctx context.Context, v Viewer, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, rec Record) error {
	return s.repo.Save(ctx, rec)
}

func (s *service) Get(ctx context.Context, v Viewer, id uuid.UUID) (Record, error) {
	if v.IsAdmin {
		return s.repo.Get(ctx, id)
	}
	return s.repo.GetForOwner(ctx, v.UserID, id)
}

func (s *service) List(ctx context.Context, v Viewer, limit, offset int) ([]Record, error) {
	if v.IsAdmin {
		return s.repo.ListAll(ctx, limit, offset)
	}
	return s.repo.ListByOwner(ctx, v.UserID, limit, offset)
}

func (s *service) Delete(ctx context.Context, v Viewer, id uuid.UUID) error {
	if v.IsAdmin {
		return s.repo.Delete(ctx, id)
	}
	return s.repo.DeleteForOwner(ctx, v.UserID, id)
}
