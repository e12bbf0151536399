package gormdb

import (
	"context"
	"errors"
	"testing"
	"time"

	appDomain "gramsetu-backend/internal/domain/application"
	repayDomain "gramsetu-backend/internal/domain/repayment"
	userDomain "gramsetu-backend/internal/domain/user"
	"gramsetu-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&appDomain.Application{},
		&userDomain.User{},
		&repayDomain.Schedule{},
		&repayDomain.Payment{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeApplication(ownerID string) *appDomain.Application {
	return &appDomain.Application{
		ApplicationID:   id.NewID32(),
		OwnerID:         ownerID,
		OwnerName:       "Test Borrower",
		Amount:          100000,
		Purpose:         "Agricultural Development",
		TermMonths:      18,
		InterestRate:    7.5,
		Status:          appDomain.StatusPending,
		CreditScore:     720,
		MonthlyIncome:   30000,
		EmploymentType:  "Farmer",
		AppliedDate:     time.Now().UTC().Truncate(24 * time.Hour),
		Documents:       `["aadhar_card.pdf"]`,
		StatusUpdatedAt: time.Now().UTC(),
	}
}

func TestApplicationCreateAndGet(t *testing.T) {
	repo := NewApplicationRepository(openTestDB(t))
	ctx := context.Background()

	a := makeApplication(id.NewID32())
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByApplicationID(ctx, a.ApplicationID)
	if err != nil {
		t.Fatalf("GetByApplicationID: %v", err)
	}
	if got.OwnerID != a.OwnerID || got.Status != appDomain.StatusPending {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
}

func TestApplicationGet_NotFound(t *testing.T) {
	repo := NewApplicationRepository(openTestDB(t))
	if _, err := repo.GetByApplicationID(context.Background(), id.NewID32()); !errors.Is(err, appDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestApplicationList_OwnerFilterAndOrder(t *testing.T) {
	repo := NewApplicationRepository(openTestDB(t))
	ctx := context.Background()

	owner := id.NewID32()
	other := id.NewID32()
	first := makeApplication(owner)
	second := makeApplication(other)
	third := makeApplication(owner)
	for _, a := range []*appDomain.Application{first, second, third} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d", len(all))
	}

	mine, err := repo.List(ctx, owner)
	if err != nil {
		t.Fatalf("List owner: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("len(mine) = %d", len(mine))
	}
	// creation order preserved
	if mine[0].ApplicationID != first.ApplicationID || mine[1].ApplicationID != third.ApplicationID {
		t.Fatalf("order broken: %s, %s", mine[0].ApplicationID, mine[1].ApplicationID)
	}
}

func TestApplicationSave_UpdatesStatus(t *testing.T) {
	repo := NewApplicationRepository(openTestDB(t))
	ctx := context.Background()

	a := makeApplication(id.NewID32())
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	a.Status = appDomain.StatusApproved
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByApplicationID(ctx, a.ApplicationID)
	if err != nil {
		t.Fatalf("GetByApplicationID: %v", err)
	}
	if got.Status != appDomain.StatusApproved {
		t.Fatalf("status = %s", got.Status)
	}
}

func TestGetByApplicationIDForUpdate_SQLiteSkipsLock(t *testing.T) {
	repo := NewApplicationRepository(openTestDB(t))
	ctx := context.Background()

	a := makeApplication(id.NewID32())
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByApplicationIDForUpdate(ctx, a.ApplicationID)
	if err != nil {
		t.Fatalf("GetByApplicationIDForUpdate: %v", err)
	}
	if got.ApplicationID != a.ApplicationID {
		t.Fatalf("wrong row: %+v", got)
	}
}
