// Package score derives a stable pseudo-random credit profile from an
// opaque user identifier. The mapping is deterministic within a process
// but carries no meaning beyond the demo: it is a hash fold, not an
// underwriting model.
package score

import (
	domain "gramsetu-backend/internal/domain/score"
)

// fallbackID stands in for an empty identifier so the fold always has input.
const fallbackID = "guest"

type Generator struct{}

func NewGenerator() *Generator { return &Generator{} }

// hashFold folds the identifier's code points into a 32-bit signed
// accumulator: acc = acc*31 - acc + ch, wrapping at each step.
func hashFold(userID string) int32 {
	var acc int32
	for _, ch := range userID {
		acc = (acc << 5) - acc + int32(ch)
	}
	return acc
}

// abs32 widens before negating so math.MinInt32 stays positive.
func abs32(v int32) int64 {
	n := int64(v)
	if n < 0 {
		n = -n
	}
	return n
}

// factor computes base + |acc*k| mod span, with the product wrapped to
// 32 bits before taking the absolute value.
func factor(acc int32, k int32, base, span int64) int {
	return int(base + abs32(acc*k)%span)
}

// For returns the credit profile for userID. The same identifier yields
// the same profile; distinct identifiers may collide.
func (g *Generator) For(userID string) domain.CreditScore {
	if userID == "" {
		userID = fallbackID
	}
	acc := hashFold(userID)
	s := int(650 + abs32(acc)%200)
	return domain.CreditScore{
		UserID: userID,
		Score:  s,
		Grade:  domain.GradeFor(s),
		Factor: domain.Factors{
			PaymentHistory:    factor(acc, 2, 70, 30),
			CreditUtilization: factor(acc, 3, 50, 50),
			CreditHistory:     factor(acc, 5, 60, 40),
			CreditMix:         factor(acc, 7, 40, 60),
			NewCredit:         factor(acc, 11, 55, 45),
		},
	}
}
