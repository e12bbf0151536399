package uow

import (
	"context"

	"gramsetu-backend/internal/domain/application"
	"gramsetu-backend/internal/domain/repayment"
)

type Repos struct {
	Applications application.Repository
	Repayments   repayment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.Application) error) error
}
