package application

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	domain "gramsetu-backend/internal/domain/application"
	"gramsetu-backend/internal/domain/repayment"
	"gramsetu-backend/internal/domain/uow"
	"gramsetu-backend/internal/usecase/score"
	"gramsetu-backend/pkg/emi"
	"gramsetu-backend/pkg/id"

	"github.com/shopspring/decimal"
)

type Usecase struct {
	repo   domain.Repository
	uow    uow.UnitOfWork
	scores *score.Generator
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork, g *score.Generator) *Usecase {
	return &Usecase{repo: r, uow: tx, scores: g}
}

// Create fills omitted fields with catalog defaults, snapshots the owner's
// credit score and appends the record with status pending. A caller cannot
// choose the initial status.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ApplicationDTO, error) {
	if in.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner_id is required", domain.ErrValidation)
	}
	if in.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if in.TermMonths < 0 {
		return nil, fmt.Errorf("%w: term_months must be positive", domain.ErrValidation)
	}
	if in.InterestRate < 0 {
		return nil, fmt.Errorf("%w: interest_rate must not be negative", domain.ErrValidation)
	}
	if in.Purpose != "" && !knownPurpose(in.Purpose) {
		return nil, fmt.Errorf("%w: unknown purpose %q", domain.ErrValidation, in.Purpose)
	}

	if in.Amount == 0 {
		in.Amount = DefaultAmount
	}
	if in.Purpose == "" {
		in.Purpose = DefaultPurpose
	}
	if in.TermMonths == 0 {
		in.TermMonths = DefaultTermMonths
	}
	if in.InterestRate == 0 {
		in.InterestRate = DefaultInterestRate
	}
	if in.MonthlyIncome == 0 {
		in.MonthlyIncome = DefaultMonthlyIncome
	}
	if in.EmploymentType == "" {
		in.EmploymentType = DefaultEmploymentType
	}
	if len(in.Documents) == 0 {
		in.Documents = DefaultDocuments
	}

	docs, err := json.Marshal(in.Documents)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a := &domain.Application{
		ApplicationID:   id.NewID32(),
		OwnerID:         in.OwnerID,
		OwnerName:       in.OwnerName,
		Amount:          in.Amount,
		Purpose:         in.Purpose,
		TermMonths:      in.TermMonths,
		InterestRate:    in.InterestRate,
		Status:          domain.StatusPending,
		CreditScore:     u.scores.For(in.OwnerID).Score,
		MonthlyIncome:   in.MonthlyIncome,
		EmploymentType:  in.EmploymentType,
		AppliedDate:     now.Truncate(24 * time.Hour),
		Documents:       string(docs),
		StatusUpdatedAt: now,
	}

	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

// List returns applications in creation order, all of them or just one
// owner's.
func (u *Usecase) List(ctx context.Context, ownerID string) ([]ApplicationDTO, error) {
	records, err := u.repo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationDTO, 0, len(records))
	for i := range records {
		out = append(out, *toDTO(&records[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	a, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

// UpdateStatus moves an application along the lifecycle. Disbursement
// also creates the repayment schedule, in the same transaction as the
// status write.
func (u *Usecase) UpdateStatus(ctx context.Context, applicationID string, newStatus domain.Status) (*ApplicationDTO, error) {
	if !domain.ValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, newStatus)
	}

	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		if !domain.CanTransition(a.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, a.Status, newStatus)
		}

		a.Status = newStatus
		a.StatusUpdatedAt = time.Now().UTC()
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		if newStatus == domain.StatusDisbursed {
			if err := r.Repayments.CreateSchedule(ctx, buildSchedule(a)); err != nil {
				return err
			}
		}

		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func buildSchedule(a *domain.Application) *repayment.Schedule {
	now := time.Now().UTC()
	return &repayment.Schedule{
		ApplicationID: a.ApplicationID,
		OwnerID:       a.OwnerID,
		Principal:     decimal.NewFromInt(a.Amount),
		InterestRate:  a.InterestRate,
		TermMonths:    a.TermMonths,
		EMIAmount:     emi.Monthly(a.Amount, a.InterestRate, a.TermMonths),
		Outstanding:   decimal.NewFromInt(a.Amount),
		NextDueDate:   now.AddDate(0, 0, 30),
		Status:        repayment.StatusActive,
		DisbursedAt:   now,
	}
}

func toDTO(a *domain.Application) *ApplicationDTO {
	var docs []string
	_ = json.Unmarshal([]byte(a.Documents), &docs)
	return &ApplicationDTO{
		ApplicationID:  a.ApplicationID,
		OwnerID:        a.OwnerID,
		OwnerName:      a.OwnerName,
		Amount:         a.Amount,
		Purpose:        a.Purpose,
		TermMonths:     a.TermMonths,
		InterestRate:   a.InterestRate,
		Status:         string(a.Status),
		CreditScore:    a.CreditScore,
		MonthlyIncome:  a.MonthlyIncome,
		EmploymentType: a.EmploymentType,
		AppliedDate:    a.AppliedDate.Format("2006-01-02"),
		Documents:      docs,
		CreatedAt:      a.CreatedAt,
	}
}
