package gormdb

import (
	"context"
	"errors"

	appDomain "gramsetu-backend/internal/domain/application"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	return &out, nil
}

// GetByApplicationIDForUpdate locks the row for the current transaction.
// SQLite has no FOR UPDATE and serializes writers on its own, so the
// clause is only added on dialects that support it.
func (r *ApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	q := r.db.WithContext(ctx)
	if r.db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out appDomain.Application
	res := q.Where("application_id = ?", applicationID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	return &out, nil
}

func (r *ApplicationRepository) List(ctx context.Context, ownerID string) ([]appDomain.Application, error) {
	var out []appDomain.Application
	q := r.db.WithContext(ctx).Order("id ASC")
	if ownerID != "" {
		q = q.Where("owner_id = ?", ownerID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// translate keeps gorm sentinels from leaking past the repository.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return appDomain.ErrNotFound
	}
	return err
}
