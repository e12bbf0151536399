package repayment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ScheduleStatus string

const (
	StatusActive    ScheduleStatus = "active"
	StatusCompleted ScheduleStatus = "completed"
)

var (
	ErrNotFound  = errors.New("repayment schedule not found")
	ErrNotActive = errors.New("repayment schedule is not active")
)

// Schedule tracks the EMI obligation created when a loan is disbursed.
type Schedule struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string          `gorm:"size:32;uniqueIndex:ux_schedules_app_active" json:"application_id"`
	OwnerID       string          `gorm:"size:32;index" json:"owner_id"`
	Principal     decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal"`
	InterestRate  float64         `gorm:"type:decimal(6,3)" json:"interest_rate"`
	TermMonths    int             `json:"term_months"`
	EMIAmount     decimal.Decimal `gorm:"type:decimal(18,2)" json:"emi_amount"`
	Outstanding   decimal.Decimal `gorm:"type:decimal(18,2)" json:"outstanding_balance"`
	NextDueDate   time.Time       `json:"next_due_date"`
	Status        ScheduleStatus  `gorm:"size:16;default:'active'" json:"status"`
	DisbursedAt   time.Time       `json:"disbursed_at"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Schedule) TableName() string { return "repayment_schedules" }

// Payment is one recorded installment against a schedule.
type Payment struct {
	ID                 uint64          `gorm:"primaryKey;column:id" json:"-"`
	PaymentID          string          `gorm:"size:16;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	ApplicationID      string          `gorm:"size:32;index" json:"application_id"`
	PaidAt             time.Time       `json:"paid_at"`
	Amount             decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	PrincipalComponent decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal_component"`
	InterestComponent  decimal.Decimal `gorm:"type:decimal(18,2)" json:"interest_component"`
	OutstandingAfter   decimal.Decimal `gorm:"type:decimal(18,2)" json:"outstanding_after"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "repayment_payments" }
