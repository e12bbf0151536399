package gormdb

import (
	"context"
	"errors"
	"testing"

	userDomain "gramsetu-backend/internal/domain/user"
	"gramsetu-backend/pkg/id"
)

func TestUserRoundtrip(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	u := &userDomain.User{
		UserID:       id.NewID32(),
		Identifier:   "9876543210",
		DisplayName:  "Lakshmi Devi",
		Email:        "lakshmi.devi@gramsetu.in",
		Role:         userDomain.RoleBorrower,
		PasswordHash: "x",
	}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	byID, err := repo.GetByUserID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if byID.Identifier != u.Identifier {
		t.Fatalf("identifier = %q", byID.Identifier)
	}

	byIdent, err := repo.GetByIdentifier(ctx, "9876543210")
	if err != nil {
		t.Fatalf("GetByIdentifier: %v", err)
	}
	if byIdent.UserID != u.UserID {
		t.Fatalf("user id = %q", byIdent.UserID)
	}
}

func TestUser_NotFound(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	if _, err := repo.GetByUserID(context.Background(), id.NewID32()); !errors.Is(err, userDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByIdentifier(context.Background(), "nobody"); !errors.Is(err, userDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
