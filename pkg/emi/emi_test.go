package emi

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMonthly_StandardLoan(t *testing.T) {
	// 100000 @ 12% annual over 12 months -> 8884.88
	got := Monthly(100000, 12.0, 12)
	want := decimal.RequireFromString("8884.88")
	if !got.Equal(want) {
		t.Fatalf("Monthly = %s, want %s", got, want)
	}
}

func TestMonthly_ZeroRateIsFlat(t *testing.T) {
	got := Monthly(120000, 0, 12)
	want := decimal.NewFromInt(10000)
	if !got.Equal(want) {
		t.Fatalf("Monthly = %s, want %s", got, want)
	}
}

func TestSplit_ComponentsSumToInstallment(t *testing.T) {
	installment := Monthly(100000, 12.0, 12)
	outstanding := decimal.NewFromInt(100000)
	r := MonthlyRate(12.0)

	principal, interest := Split(installment, outstanding, r)
	if !principal.Add(interest).Equal(installment) {
		t.Fatalf("principal %s + interest %s != installment %s", principal, interest, installment)
	}
	// first month's interest on 100000 @ 1% monthly
	if !interest.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("interest = %s, want 1000", interest)
	}
}

func TestMonthly_AmortizesToZero(t *testing.T) {
	const principal = 100000
	installment := Monthly(principal, 12.0, 12)
	r := MonthlyRate(12.0)

	outstanding := decimal.NewFromInt(principal)
	for i := 0; i < 12; i++ {
		p, _ := Split(installment, outstanding, r)
		outstanding = outstanding.Sub(p)
	}
	// rounding each month leaves at most a few paise of drift
	if outstanding.Abs().GreaterThan(decimal.NewFromFloat(0.10)) {
		t.Fatalf("outstanding after full term = %s, want ~0", outstanding)
	}
}
