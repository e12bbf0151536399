package gormdb

import (
	"context"
	"errors"

	repayDomain "gramsetu-backend/internal/domain/repayment"

	"gorm.io/gorm"
)

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository {
	return &RepaymentRepository{db: db}
}

func (r *RepaymentRepository) CreateSchedule(ctx context.Context, s *repayDomain.Schedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *RepaymentRepository) SaveSchedule(ctx context.Context, s *repayDomain.Schedule) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *RepaymentRepository) GetScheduleByApplicationID(ctx context.Context, applicationID string) (*repayDomain.Schedule, error) {
	var out repayDomain.Schedule
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, repayDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

func (r *RepaymentRepository) CreatePayment(ctx context.Context, p *repayDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *RepaymentRepository) ListPayments(ctx context.Context, applicationID string) ([]repayDomain.Payment, error) {
	var out []repayDomain.Payment
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
