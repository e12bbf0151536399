package application

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusDisbursed Status = "disbursed"
)

var (
	ErrNotFound          = errors.New("loan application not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrValidation        = errors.New("invalid loan application")
)

// transitions is the full lifecycle: pending -> approved|rejected,
// approved -> disbursed. rejected and disbursed are terminal.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusDisbursed},
}

// ValidStatus reports whether s names a known status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusDisbursed:
		return true
	}
	return false
}

// CanTransition reports whether from -> to is allowed by the lifecycle.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Application struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID   string         `gorm:"size:32;uniqueIndex:ux_applications_app_id_active" json:"application_id"`
	OwnerID         string         `gorm:"size:32;index:idx_applications_owner_active" json:"owner_id"`
	OwnerName       string         `gorm:"size:128" json:"owner_name"`
	Amount          int64          `json:"amount"`
	Purpose         string         `gorm:"size:64" json:"purpose"`
	TermMonths      int            `json:"term_months"`
	InterestRate    float64        `gorm:"type:decimal(6,3)" json:"interest_rate"`
	Status          Status         `gorm:"size:16;default:'pending'" json:"status"`
	CreditScore     int            `json:"credit_score"`
	MonthlyIncome   int64          `json:"monthly_income"`
	EmploymentType  string         `gorm:"size:64" json:"employment_type"`
	AppliedDate     time.Time      `gorm:"type:date" json:"applied_date"`
	Documents       string         `gorm:"type:text" json:"-"` // JSON-encoded list of document names
	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Application) TableName() string { return "loan_applications" }
