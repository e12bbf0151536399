package repaymock

import (
	"context"

	domain "gramsetu-backend/internal/domain/repayment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateScheduleFn             func(ctx context.Context, s *domain.Schedule) error
	GetScheduleByApplicationIDFn func(ctx context.Context, applicationID string) (*domain.Schedule, error)
	SaveScheduleFn               func(ctx context.Context, s *domain.Schedule) error
	CreatePaymentFn              func(ctx context.Context, p *domain.Payment) error
	ListPaymentsFn               func(ctx context.Context, applicationID string) ([]domain.Payment, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) CreateSchedule(ctx context.Context, s *domain.Schedule) error {
	if m.CreateScheduleFn != nil {
		return m.CreateScheduleFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetScheduleByApplicationID(ctx context.Context, applicationID string) (*domain.Schedule, error) {
	if m.GetScheduleByApplicationIDFn != nil {
		return m.GetScheduleByApplicationIDFn(ctx, applicationID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) SaveSchedule(ctx context.Context, s *domain.Schedule) error {
	if m.SaveScheduleFn != nil {
		return m.SaveScheduleFn(ctx, s)
	}
	return nil
}

func (m *Repo) CreatePayment(ctx context.Context, p *domain.Payment) error {
	if m.CreatePaymentFn != nil {
		return m.CreatePaymentFn(ctx, p)
	}
	return nil
}

func (m *Repo) ListPayments(ctx context.Context, applicationID string) ([]domain.Payment, error) {
	if m.ListPaymentsFn != nil {
		return m.ListPaymentsFn(ctx, applicationID)
	}
	return nil, nil
}
