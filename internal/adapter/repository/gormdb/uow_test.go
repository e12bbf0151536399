package gormdb

import (
	"context"
	"errors"
	"testing"
	"time"

	appDomain "gramsetu-backend/internal/domain/application"
	repayDomain "gramsetu-backend/internal/domain/repayment"
	"gramsetu-backend/internal/domain/uow"
	"gramsetu-backend/pkg/id"

	"github.com/shopspring/decimal"
)

func TestWithinApplicationTx_CommitsStatusAndSchedule(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	a := makeApplication(id.NewID32())
	a.Status = appDomain.StatusApproved
	if err := NewApplicationRepository(db).Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	u := NewGormUoW(db)
	err := u.WithinApplicationTx(ctx, a.ApplicationID, func(r uow.Repos, locked *appDomain.Application) error {
		locked.Status = appDomain.StatusDisbursed
		locked.StatusUpdatedAt = time.Now().UTC()
		if err := r.Applications.Save(ctx, locked); err != nil {
			return err
		}
		return r.Repayments.CreateSchedule(ctx, &repayDomain.Schedule{
			ApplicationID: locked.ApplicationID,
			OwnerID:       locked.OwnerID,
			Principal:     decimal.NewFromInt(locked.Amount),
			InterestRate:  locked.InterestRate,
			TermMonths:    locked.TermMonths,
			EMIAmount:     decimal.RequireFromString("6100.00"),
			Outstanding:   decimal.NewFromInt(locked.Amount),
			NextDueDate:   time.Now().UTC().AddDate(0, 0, 30),
			Status:        repayDomain.StatusActive,
			DisbursedAt:   time.Now().UTC(),
		})
	})
	if err != nil {
		t.Fatalf("WithinApplicationTx: %v", err)
	}

	got, err := NewApplicationRepository(db).GetByApplicationID(ctx, a.ApplicationID)
	if err != nil {
		t.Fatalf("GetByApplicationID: %v", err)
	}
	if got.Status != appDomain.StatusDisbursed {
		t.Fatalf("status = %s", got.Status)
	}
	if _, err := NewRepaymentRepository(db).GetScheduleByApplicationID(ctx, a.ApplicationID); err != nil {
		t.Fatalf("schedule missing after commit: %v", err)
	}
}

func TestWithinApplicationTx_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	a := makeApplication(id.NewID32())
	if err := NewApplicationRepository(db).Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	boom := errors.New("boom")
	u := NewGormUoW(db)
	err := u.WithinApplicationTx(ctx, a.ApplicationID, func(r uow.Repos, locked *appDomain.Application) error {
		locked.Status = appDomain.StatusApproved
		if err := r.Applications.Save(ctx, locked); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}

	got, err := NewApplicationRepository(db).GetByApplicationID(ctx, a.ApplicationID)
	if err != nil {
		t.Fatalf("GetByApplicationID: %v", err)
	}
	if got.Status != appDomain.StatusPending {
		t.Fatalf("status after rollback = %s, want pending", got.Status)
	}
}

func TestWithinApplicationTx_UnknownApplication(t *testing.T) {
	u := NewGormUoW(openTestDB(t))
	err := u.WithinApplicationTx(context.Background(), id.NewID32(), func(r uow.Repos, a *appDomain.Application) error {
		t.Fatal("body must not run for unknown application")
		return nil
	})
	if !errors.Is(err, appDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
