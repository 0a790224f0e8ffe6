package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestNonNegative(t *testing.T) {
	if err := NonNegative("capexTotal", 0); err != nil {
		t.Errorf("NonNegative(0) returned error: %v", err)
	}
	if err := NonNegative("capexTotal", 100); err != nil {
		t.Errorf("NonNegative(100) returned error: %v", err)
	}

	err := NonNegative("capexTotal", -1)
	if err == nil {
		t.Fatal("NonNegative(-1) expected error")
	}
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidInputError, got %T", err)
	}
	if invalid.Field != "capexTotal" {
		t.Errorf("Field = %q, expected capexTotal", invalid.Field)
	}
}

func TestFraction(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{name: "Zero", value: 0, wantErr: false},
		{name: "One", value: 1, wantErr: false},
		{name: "Middle", value: 0.25, wantErr: false},
		{name: "Negative", value: -0.01, wantErr: true},
		{name: "Above one", value: 1.01, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Fraction("vacancyRate", tt.value)
			if tt.wantErr && err == nil {
				t.Errorf("Fraction(%v) expected error", tt.value)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Fraction(%v) returned error: %v", tt.value, err)
			}
		})
	}
}

func TestPositiveInt(t *testing.T) {
	if err := PositiveInt("loanTermYears", 30); err != nil {
		t.Errorf("PositiveInt(30) returned error: %v", err)
	}
	if err := PositiveInt("loanTermYears", 0); err == nil {
		t.Error("PositiveInt(0) expected error")
	}
	if err := PositiveInt("loanTermYears", -5); err == nil {
		t.Error("PositiveInt(-5) expected error")
	}
}

func TestInvalidInputErrorMessage(t *testing.T) {
	err := &InvalidInputError{Field: "marketRents", Reason: "must have one entry per unit"}
	if !strings.Contains(err.Error(), "invalid input: marketRents") {
		t.Errorf("Error() = %q, expected field in message", err.Error())
	}
}

func TestValidateOutputFormat(t *testing.T) {
	if err := ValidateOutputFormat("pretty"); err != nil {
		t.Errorf("ValidateOutputFormat(pretty) returned error: %v", err)
	}
	if err := ValidateOutputFormat("csv"); err != nil {
		t.Errorf("ValidateOutputFormat(csv) returned error: %v", err)
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Error("ValidateOutputFormat(xml) expected error")
	}
}

func TestDealWarnings(t *testing.T) {
	tests := []struct {
		name     string
		check    DealCheck
		expected int
	}{
		{
			name: "Clean deal",
			check: DealCheck{
				Name:                "Fourplex",
				Units:               4,
				DownPaymentPercent:  25,
				ExpenseRatioPercent: 30,
				VacancyRatePercent:  3,
				InterestRatePercent: 6,
				HasMarketRents:      true,
			},
			expected: 0,
		},
		{
			name:     "Everything wrong",
			check:    DealCheck{Name: "Lemon", ExpenseRatioPercent: 80, VacancyRatePercent: 30, InterestRatePercent: 20, UseMarketRents: true},
			expected: 6,
		},
		{
			name: "High vacancy only",
			check: DealCheck{
				Name:                "Sleepy",
				Units:               2,
				DownPaymentPercent:  20,
				ExpenseRatioPercent: 35,
				VacancyRatePercent:  25,
				InterestRatePercent: 7,
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := DealWarnings(tt.check)
			if len(warnings) != tt.expected {
				t.Errorf("DealWarnings() returned %d warnings, expected %d: %v", len(warnings), tt.expected, warnings)
			}
		})
	}
}
