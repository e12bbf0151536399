package gormdb

import (
	"context"
	"errors"

	userDomain "gramsetu-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("identifier = ?", identifier).First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}
