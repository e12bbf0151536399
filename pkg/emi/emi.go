// Package emi implements equated-monthly-installment math on decimals.
package emi

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// MonthlyRate converts an annual percentage rate to a monthly fraction,
// e.g. 12.0 -> 0.01.
func MonthlyRate(annualRatePct float64) decimal.Decimal {
	return decimal.NewFromFloat(annualRatePct).Div(hundred).Div(twelve)
}

// Monthly returns the EMI for a principal repaid over termMonths at the
// given annual rate: P*r*(1+r)^n / ((1+r)^n - 1), rounded to 2 places.
// A zero rate degrades to flat principal/termMonths.
func Monthly(principal int64, annualRatePct float64, termMonths int) decimal.Decimal {
	p := decimal.NewFromInt(principal)
	n := decimal.NewFromInt(int64(termMonths))
	r := MonthlyRate(annualRatePct)
	if r.IsZero() {
		return p.Div(n).Round(2)
	}
	growth := decimal.NewFromInt(1).Add(r).Pow(n)
	return p.Mul(r).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1))).Round(2)
}

// Split divides one installment against the current outstanding balance
// into its interest and principal components, both rounded to 2 places.
func Split(installment, outstanding decimal.Decimal, monthlyRate decimal.Decimal) (principal, interest decimal.Decimal) {
	interest = outstanding.Mul(monthlyRate).Round(2)
	principal = installment.Sub(interest).Round(2)
	return principal, interest
}
