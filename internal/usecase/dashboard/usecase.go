package dashboard

import (
	"context"
	"fmt"

	"gramsetu-backend/internal/domain/application"
	"gramsetu-backend/internal/domain/user"
)

// Stats is the read-only projection behind the dashboard tiles.
type Stats struct {
	TotalAmount         int64   `json:"total_amount"`
	ActiveLoans         int     `json:"active_loans"`
	PendingApplications int     `json:"pending_applications"`
	DefaultRate         float64 `json:"default_rate"`
}

type Usecase struct {
	repo application.Repository
	// defaultRate comes from repayment history tracked outside this
	// system; it cannot be derived from the application records alone.
	defaultRate float64
}

func NewUsecase(r application.Repository, defaultRatePct float64) *Usecase {
	return &Usecase{repo: r, defaultRate: defaultRatePct}
}

// Stats aggregates over the records visible to the caller: lenders see
// the whole book, borrowers only their own applications.
func (u *Usecase) Stats(ctx context.Context, role user.Role, ownerID string) (*Stats, error) {
	if !user.ValidRole(role) {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	scope := ""
	if role == user.RoleBorrower {
		if ownerID == "" {
			return nil, fmt.Errorf("owner id required for borrower stats")
		}
		scope = ownerID
	}

	records, err := u.repo.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	out := &Stats{DefaultRate: u.defaultRate}
	for i := range records {
		switch records[i].Status {
		case application.StatusApproved:
			out.TotalAmount += records[i].Amount
		case application.StatusDisbursed:
			out.TotalAmount += records[i].Amount
			out.ActiveLoans++
		case application.StatusPending:
			out.PendingApplications++
		}
	}
	return out, nil
}
