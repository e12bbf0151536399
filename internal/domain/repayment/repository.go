package repayment

import "context"

type Repository interface {
	CreateSchedule(ctx context.Context, s *Schedule) error
	GetScheduleByApplicationID(ctx context.Context, applicationID string) (*Schedule, error)
	SaveSchedule(ctx context.Context, s *Schedule) error

	CreatePayment(ctx context.Context, p *Payment) error
	ListPayments(ctx context.Context, applicationID string) ([]Payment, error)
}
