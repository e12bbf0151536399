package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleLender   Role = "lender"
	RoleBorrower Role = "borrower"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrIdentifierTaken    = errors.New("identifier already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func ValidRole(r Role) bool { return r == RoleLender || r == RoleBorrower }

type User struct {
	ID           uint64         `gorm:"primaryKey;column:id" json:"-"`
	UserID       string         `gorm:"size:32;uniqueIndex:ux_users_user_id_active" json:"user_id"`
	Identifier   string         `gorm:"size:64;uniqueIndex:ux_users_identifier_active" json:"identifier"`
	DisplayName  string         `gorm:"size:128" json:"display_name"`
	Email        string         `gorm:"size:128" json:"email"`
	Role         Role           `gorm:"size:16" json:"role"`
	PasswordHash string         `gorm:"size:128" json:"-"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
