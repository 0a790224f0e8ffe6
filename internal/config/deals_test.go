package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/mrmeatball22/deal-analyzer/pkg/validation"
)

func TestAnalyzeDealsPropagatesInvalidInput(t *testing.T) {
	conf := Configuration{Deals: []Deal{{
		Name:               "Broken",
		PurchasePrice:      -1,
		CurrentRents:       []float64{1500},
		DownPaymentPercent: 25,
		InterestRate:       6,
		LoanTermYears:      30,
	}}}

	_, err := conf.AnalyzeDeals(nil)
	if err == nil {
		t.Fatal("expected error for negative purchase price")
	}

	var invalid *validation.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Errorf("expected wrapped *validation.InvalidInputError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "Broken") {
		t.Errorf("expected deal name in error, got %q", err.Error())
	}
}

func TestAnalyzeDealsOrderAndNames(t *testing.T) {
	conf := Configuration{Deals: []Deal{
		{Name: "First", PurchasePrice: 100000, DownPaymentPercent: 20, CurrentRents: []float64{1000}, InterestRate: 6, LoanTermYears: 30},
		{Name: "Second", PurchasePrice: 200000, DownPaymentPercent: 20, CurrentRents: []float64{2000}, InterestRate: 6, LoanTermYears: 30},
	}}

	results, err := conf.AnalyzeDeals(nil)
	if err != nil {
		t.Fatalf("AnalyzeDeals() returned error: %v", err)
	}
	if len(results) != 2 || results[0].Name != "First" || results[1].Name != "Second" {
		t.Errorf("results out of order: %+v", results)
	}
}
