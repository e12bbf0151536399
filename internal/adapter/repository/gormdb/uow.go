package gormdb

import (
	"context"

	"gramsetu-backend/internal/domain/application"
	"gramsetu-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Applications: &ApplicationRepository{db: tx},
			Repayments:   &RepaymentRepository{db: tx},
		}
		return fn(r)
	})
}

func (u *GormUoW) WithinApplicationTx(ctx context.Context, applicationID string, fn func(r uow.Repos, a *application.Application) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		apps := &ApplicationRepository{db: tx}
		repos := uow.Repos{
			Applications: apps,
			Repayments:   &RepaymentRepository{db: tx},
		}
		// lock the application row up-front to prevent races
		a, err := apps.GetByApplicationIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
		return fn(repos, a)
	})
}
