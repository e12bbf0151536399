package application

import (
	"time"
)

// Defaults applied to omitted fields on submission.
const (
	DefaultAmount         = 100000
	DefaultPurpose        = "Agricultural Development"
	DefaultTermMonths     = 18
	DefaultInterestRate   = 7.5
	DefaultMonthlyIncome  = 30000
	DefaultEmploymentType = "Farmer"
)

var DefaultDocuments = []string{"aadhar_card.pdf"}

// PurposeCatalog is the fixed set of loan purposes offered to borrowers.
var PurposeCatalog = []string{
	"Agricultural Development",
	"Livestock Purchase",
	"Equipment Purchase",
	"Seed & Fertilizer",
	"Dairy Farming",
	"Small Business Expansion",
	"Handicraft Business",
	"Housing Improvement",
}

func knownPurpose(p string) bool {
	for _, known := range PurposeCatalog {
		if p == known {
			return true
		}
	}
	return false
}

type CreateInput struct {
	OwnerID        string   `json:"owner_id"`
	OwnerName      string   `json:"owner_name"`
	Amount         int64    `json:"amount"`
	Purpose        string   `json:"purpose"`
	TermMonths     int      `json:"term_months"`
	InterestRate   float64  `json:"interest_rate"`
	MonthlyIncome  int64    `json:"monthly_income"`
	EmploymentType string   `json:"employment_type"`
	Documents      []string `json:"documents"`
}

type ApplicationDTO struct {
	ApplicationID  string    `json:"application_id"`
	OwnerID        string    `json:"owner_id"`
	OwnerName      string    `json:"owner_name"`
	Amount         int64     `json:"amount"`
	Purpose        string    `json:"purpose"`
	TermMonths     int       `json:"term_months"`
	InterestRate   float64   `json:"interest_rate"`
	Status         string    `json:"status"`
	CreditScore    int       `json:"credit_score"`
	MonthlyIncome  int64     `json:"monthly_income"`
	EmploymentType string    `json:"employment_type"`
	AppliedDate    string    `json:"applied_date"`
	Documents      []string  `json:"documents"`
	CreatedAt      time.Time `json:"created_at"`
}
