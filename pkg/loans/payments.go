// Package loans provides common loan payment calculations.
package loans

import (
	"math"

	"github.com/mrmeatball22/deal-analyzer/pkg/constants"
)

// MonthlyPayment calculates the fixed monthly principal-and-interest payment
// for an amortizing loan using the standard annuity formula. The rate is the
// annual nominal rate as a fraction (0.06 for 6%).
func MonthlyPayment(loanAmount, annualRate float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	if annualRate == 0 {
		// Zero interest amortizes straight-line.
		return loanAmount / float64(termMonths)
	}

	monthlyRate := annualRate / constants.MonthsPerYear
	power := math.Pow(1.00+monthlyRate, float64(termMonths))
	return loanAmount * monthlyRate * power / (power - 1.00)
}

// InterestOnlyPayment calculates the monthly payment for an interest-only
// loan, which carries no principal component.
func InterestOnlyPayment(loanAmount, annualRate float64) float64 {
	return loanAmount * annualRate / constants.MonthsPerYear
}

// AnnualDebtService converts a monthly payment into its annual total.
func AnnualDebtService(monthlyPayment float64) float64 {
	return monthlyPayment * constants.MonthsPerYear
}

// FirstYearPrincipalPaydown approximates the principal retired during the
// first year of an amortizing loan as the annual payment total less a full
// year of interest on the opening balance. Interest-only loans retire no
// principal.
func FirstYearPrincipalPaydown(annualDebtService, loanAmount, annualRate float64, interestOnly bool) float64 {
	if interestOnly {
		return 0
	}
	return annualDebtService - loanAmount*annualRate
}
