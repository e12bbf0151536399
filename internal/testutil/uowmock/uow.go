package uowmock

import (
	"context"
	"errors"

	"gramsetu-backend/internal/domain/application"
	"gramsetu-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn            func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinApplicationTxFn func(ctx context.Context, applicationID string, fn func(r uow.Repos, a *application.Application) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough wires the mock straight to a fixed Repos set: WithinTx runs
// the body immediately and WithinApplicationTx looks the application up
// via the supplied repos first.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
		WithinApplicationTxFn: func(ctx context.Context, applicationID string, fn func(r uow.Repos, a *application.Application) error) error {
			a, err := repos.Applications.GetByApplicationID(ctx, applicationID)
			if err != nil {
				return err
			}
			return fn(repos, a)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinApplicationTx(ctx context.Context, applicationID string, fn func(r uow.Repos, a *application.Application) error) error {
	if m.WithinApplicationTxFn != nil {
		return m.WithinApplicationTxFn(ctx, applicationID, fn)
	}
	return errUnimplemented
}
