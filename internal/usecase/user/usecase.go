package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "gramsetu-backend/internal/domain/user"
	"gramsetu-backend/pkg/id"

	"golang.org/x/crypto/bcrypt"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterInput struct {
	Identifier  string `json:"identifier"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Password    string `json:"password"`
}

type ProfileDTO struct {
	UserID      string    `json:"user_id"`
	Identifier  string    `json:"identifier"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// deriveEmail builds a placeholder address from the display name, the
// way the registration form pre-fills it for users without one.
func deriveEmail(displayName, identifier string) string {
	slug := strings.ToLower(strings.TrimSpace(displayName))
	slug = strings.ReplaceAll(slug, " ", ".")
	if slug == "" {
		slug = strings.ToLower(identifier)
	}
	return slug + "@gramsetu.in"
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*ProfileDTO, error) {
	in.Identifier = strings.TrimSpace(in.Identifier)
	if in.Identifier == "" || in.Password == "" {
		return nil, errors.New("identifier and password are required")
	}
	role := domain.Role(in.Role)
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("role must be %q or %q", domain.RoleLender, domain.RoleBorrower)
	}

	if _, err := u.repo.GetByIdentifier(ctx, in.Identifier); err == nil {
		return nil, domain.ErrIdentifierTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	email := in.Email
	if email == "" {
		email = deriveEmail(in.DisplayName, in.Identifier)
	}

	rec := &domain.User{
		UserID:       id.NewID32(),
		Identifier:   in.Identifier,
		DisplayName:  in.DisplayName,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := u.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return toProfile(rec), nil
}

func (u *Usecase) Login(ctx context.Context, identifier, password string) (*ProfileDTO, error) {
	rec, err := u.repo.GetByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return toProfile(rec), nil
}

func (u *Usecase) Get(ctx context.Context, userID string) (*ProfileDTO, error) {
	rec, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfile(rec), nil
}

func toProfile(rec *domain.User) *ProfileDTO {
	return &ProfileDTO{
		UserID:      rec.UserID,
		Identifier:  rec.Identifier,
		DisplayName: rec.DisplayName,
		Email:       rec.Email,
		Role:        string(rec.Role),
		CreatedAt:   rec.CreatedAt,
	}
}
