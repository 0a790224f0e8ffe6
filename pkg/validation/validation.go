// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/mrmeatball22/deal-analyzer/pkg/constants"
)

// InvalidInputError indicates a deal input that violates a precondition the
// analyzer cannot safely default to zero.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// NonNegative checks that a value is not negative.
func NonNegative(field string, value float64) error {
	if value < 0 {
		return &InvalidInputError{Field: field, Reason: fmt.Sprintf("must not be negative, got %g", value)}
	}
	return nil
}

// Fraction checks that a value lies in [0, 1].
func Fraction(field string, value float64) error {
	if value < 0 || value > 1 {
		return &InvalidInputError{Field: field, Reason: fmt.Sprintf("must be between 0 and 1, got %g", value)}
	}
	return nil
}

// PositiveInt checks that a value is a positive integer.
func PositiveInt(field string, value int) error {
	if value <= 0 {
		return &InvalidInputError{Field: field, Reason: fmt.Sprintf("must be positive, got %d", value)}
	}
	return nil
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// DealCheck carries the fields inspected for configuration warnings. Values
// are percentages as written in config files.
type DealCheck struct {
	Name                string
	Units               int
	DownPaymentPercent  float64
	ExpenseRatioPercent float64
	VacancyRatePercent  float64
	InterestRatePercent float64
	HasMarketRents      bool
	UseMarketRents      bool
}

// DealWarnings performs advisory checks on a configured deal and returns
// human-readable warnings. These do not block analysis.
func DealWarnings(check DealCheck) []string {
	var warnings []string

	if check.Units == 0 {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' has no units configured - per-unit metrics will be zero", check.Name))
	}

	if check.DownPaymentPercent == 0 {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' has zero down payment - cash-on-cash and ROI may be zero", check.Name))
	}

	if check.ExpenseRatioPercent > 60 {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' has an expense ratio above 60%% (%.1f%%)", check.Name, check.ExpenseRatioPercent))
	}

	if check.VacancyRatePercent > 20 {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' has a vacancy rate above 20%% (%.1f%%)", check.Name, check.VacancyRatePercent))
	}

	if check.InterestRatePercent > 15 {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' has an interest rate above 15%% (%.2f%%)", check.Name, check.InterestRatePercent))
	}

	if check.UseMarketRents && !check.HasMarketRents {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' selects market rents but none are configured - current rents will be used", check.Name))
	}

	return warnings
}
