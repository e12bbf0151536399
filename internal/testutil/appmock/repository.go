package appmock

import (
	"context"

	domain "gramsetu-backend/internal/domain/application"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only fill in the function fields a test needs.
type Repo struct {
	CreateFn             func(ctx context.Context, a *domain.Application) error
	GetByApplicationIDFn func(ctx context.Context, applicationID string) (*domain.Application, error)
	ListFn               func(ctx context.Context, ownerID string) ([]domain.Application, error)
	SaveFn               func(ctx context.Context, a *domain.Application) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context, ownerID string) ([]domain.Application, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
