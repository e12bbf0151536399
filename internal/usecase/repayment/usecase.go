package repayment

import (
	"context"
	"time"

	domain "gramsetu-backend/internal/domain/repayment"
	"gramsetu-backend/pkg/emi"
	"gramsetu-backend/pkg/id"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type PaymentDTO struct {
	PaymentID          string `json:"payment_id"`
	ApplicationID      string `json:"application_id"`
	PaidAt             string `json:"paid_at"`
	Amount             string `json:"amount"`
	PrincipalComponent string `json:"principal_component"`
	InterestComponent  string `json:"interest_component"`
	RemainingBalance   string `json:"remaining_balance"`
	ScheduleStatus     string `json:"schedule_status"`
	NextDueDate        string `json:"next_due_date,omitempty"`
}

type ScheduleDTO struct {
	ApplicationID string       `json:"application_id"`
	OwnerID       string       `json:"owner_id"`
	Principal     string       `json:"principal"`
	InterestRate  float64      `json:"interest_rate"`
	TermMonths    int          `json:"term_months"`
	EMIAmount     string       `json:"emi_amount"`
	Outstanding   string       `json:"outstanding_balance"`
	NextDueDate   string       `json:"next_due_date"`
	Status        string       `json:"status"`
	Payments      []PaymentDTO `json:"payments"`
}

// PayEMI records one installment: the EMI is split into interest on the
// current outstanding balance and a principal component that reduces it.
// The schedule closes out when the balance reaches zero.
func (u *Usecase) PayEMI(ctx context.Context, applicationID string) (*PaymentDTO, error) {
	s, err := u.repo.GetScheduleByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if s.Status != domain.StatusActive {
		return nil, domain.ErrNotActive
	}

	now := time.Now().UTC()
	installment := s.EMIAmount
	// final installment only covers what is left
	rate := emi.MonthlyRate(s.InterestRate)
	principal, interest := emi.Split(installment, s.Outstanding, rate)
	if principal.GreaterThan(s.Outstanding) {
		principal = s.Outstanding
		installment = principal.Add(interest)
	}

	after := s.Outstanding.Sub(principal)
	p := &domain.Payment{
		PaymentID:          id.NewShortID("PAY"),
		ApplicationID:      applicationID,
		PaidAt:             now,
		Amount:             installment,
		PrincipalComponent: principal,
		InterestComponent:  interest,
		OutstandingAfter:   after,
	}
	if err := u.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	s.Outstanding = after
	if !after.IsPositive() {
		s.Status = domain.StatusCompleted
		s.CompletedAt = &now
	} else {
		s.NextDueDate = now.AddDate(0, 0, 30)
	}
	if err := u.repo.SaveSchedule(ctx, s); err != nil {
		return nil, err
	}

	dto := &PaymentDTO{
		PaymentID:          p.PaymentID,
		ApplicationID:      applicationID,
		PaidAt:             now.Format(time.RFC3339),
		Amount:             installment.StringFixed(2),
		PrincipalComponent: principal.StringFixed(2),
		InterestComponent:  interest.StringFixed(2),
		RemainingBalance:   after.StringFixed(2),
		ScheduleStatus:     string(s.Status),
	}
	if s.Status == domain.StatusActive {
		dto.NextDueDate = s.NextDueDate.Format("2006-01-02")
	}
	return dto, nil
}

func (u *Usecase) Schedule(ctx context.Context, applicationID string) (*ScheduleDTO, error) {
	s, err := u.repo.GetScheduleByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	payments, err := u.repo.ListPayments(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	out := &ScheduleDTO{
		ApplicationID: s.ApplicationID,
		OwnerID:       s.OwnerID,
		Principal:     s.Principal.StringFixed(2),
		InterestRate:  s.InterestRate,
		TermMonths:    s.TermMonths,
		EMIAmount:     s.EMIAmount.StringFixed(2),
		Outstanding:   s.Outstanding.StringFixed(2),
		NextDueDate:   s.NextDueDate.Format("2006-01-02"),
		Status:        string(s.Status),
		Payments:      make([]PaymentDTO, 0, len(payments)),
	}
	for i := range payments {
		p := &payments[i]
		out.Payments = append(out.Payments, PaymentDTO{
			PaymentID:          p.PaymentID,
			ApplicationID:      p.ApplicationID,
			PaidAt:             p.PaidAt.Format(time.RFC3339),
			Amount:             p.Amount.StringFixed(2),
			PrincipalComponent: p.PrincipalComponent.StringFixed(2),
			InterestComponent:  p.InterestComponent.StringFixed(2),
			RemainingBalance:   p.OutstandingAfter.StringFixed(2),
		})
	}
	return out, nil
}
