package score

type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
)

// CreditScore is a derived view, recomputed per request; it is never
// persisted except as a point-in-time snapshot on a loan application.
type CreditScore struct {
	UserID string  `json:"user_id"`
	Score  int     `json:"score"`
	Grade  Grade   `json:"grade"`
	Factor Factors `json:"factors"`
}

// Factors are independent percentages. They are not normalized to sum
// to 100 and individual values may exceed 100.
type Factors struct {
	PaymentHistory    int `json:"payment_history"`
	CreditUtilization int `json:"credit_utilization"`
	CreditHistory     int `json:"credit_history"`
	CreditMix         int `json:"credit_mix"`
	NewCredit         int `json:"new_credit"`
}

// GradeFor buckets a numeric score, first match wins.
func GradeFor(s int) Grade {
	switch {
	case s >= 800:
		return GradeA
	case s >= 750:
		return GradeB
	case s >= 700:
		return GradeC
	case s >= 650:
		return GradeD
	}
	return GradeE
}
