package http

import (
	"regexp"

	appUC "gramsetu-backend/internal/usecase/application"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// user/application id = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return reHex32.MatchString(fl.Field().String())
	})
	// loan purpose must come from the fixed catalog
	_ = v.RegisterValidation("purpose", func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		for _, known := range appUC.PurposeCatalog {
			if val == known {
				return true
			}
		}
		return false
	})
	// role is lender or borrower
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		return val == "lender" || val == "borrower"
	})
	// loan status names
	_ = v.RegisterValidation("loanstatus", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "pending", "approved", "rejected", "disbursed":
			return true
		}
		return false
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "hex32":
			out = append(out, FieldError{Field: field, Message: "must be 32-char lowercase hex"})
		case "purpose":
			out = append(out, FieldError{Field: field, Message: "must be a catalog loan purpose"})
		case "role":
			out = append(out, FieldError{Field: field, Message: "must be lender or borrower"})
		case "loanstatus":
			out = append(out, FieldError{Field: field, Message: "must be pending, approved, rejected or disbursed"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
