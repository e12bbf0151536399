package http

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestGetStats_RequiresValidRole(t *testing.T) {
	e := newTestServer(t)

	rec, _ := doJSON(t, e, http.MethodGet, "/dashboard", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing role: code = %d", rec.Code)
	}
	rec, _ = doJSON(t, e, http.MethodGet, "/dashboard?role=admin", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown role: code = %d", rec.Code)
	}
	rec, _ = doJSON(t, e, http.MethodGet, "/dashboard?role=borrower", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("borrower without owner_id: code = %d", rec.Code)
	}
}

func TestGetStats_LenderAggregation(t *testing.T) {
	e := newTestServer(t)

	seed := []struct {
		amount int64
		status []string
	}{
		{200000, []string{"approved", "disbursed"}},
		{150000, []string{"approved"}},
		{90000, nil},
	}
	for _, s := range seed {
		body := fmt.Sprintf(`{"owner_id": %q, "amount": %d, "term_months": 12, "interest_rate": 12}`, testOwnerID, s.amount)
		rec, payload := doJSON(t, e, http.MethodPost, "/loans", body)
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed: code = %d", rec.Code)
		}
		loanID := payload["application_id"].(string)
		for _, status := range s.status {
			rec, _ = doJSON(t, e, http.MethodPatch, "/loans/"+loanID+"/status", fmt.Sprintf(`{"status": %q}`, status))
			if rec.Code != http.StatusOK {
				t.Fatalf("seed %s: code = %d", status, rec.Code)
			}
		}
	}

	rec, payload := doJSON(t, e, http.MethodGet, "/dashboard?role=lender", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d body = %s", rec.Code, rec.Body.String())
	}
	if payload["total_amount"] != float64(350000) {
		t.Errorf("total_amount = %v", payload["total_amount"])
	}
	if payload["active_loans"] != float64(1) {
		t.Errorf("active_loans = %v", payload["active_loans"])
	}
	if payload["pending_applications"] != float64(1) {
		t.Errorf("pending_applications = %v", payload["pending_applications"])
	}

	rec, payload = doJSON(t, e, http.MethodGet, "/dashboard?role=borrower&owner_id="+strings.Repeat("c3", 16), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("borrower: code = %d", rec.Code)
	}
	if payload["total_amount"] != float64(0) {
		t.Errorf("other borrower total_amount = %v", payload["total_amount"])
	}
}

func TestGetCreditScore_Deterministic(t *testing.T) {
	e := newTestServer(t)

	rec, first := doJSON(t, e, http.MethodGet, "/credit-score/farmer_ramesh", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	score, _ := first["score"].(float64)
	if score < 650 || score > 849 {
		t.Fatalf("score = %v, want [650, 849]", score)
	}
	if first["grade"] == "" {
		t.Error("grade missing")
	}

	_, second := doJSON(t, e, http.MethodGet, "/credit-score/farmer_ramesh", "")
	if second["score"] != first["score"] {
		t.Errorf("score changed between calls: %v vs %v", first["score"], second["score"])
	}
}
