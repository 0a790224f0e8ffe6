// Package config defines conversion utilities for configuration objects.
package config

import (
	"github.com/mrmeatball22/deal-analyzer/internal/analysis"
	"github.com/mrmeatball22/deal-analyzer/pkg/constants"
)

// ToDealInputs converts a configured Deal into the analyzer's input record.
// Percentages become fractions and missing market rents fall back to the
// current rents so both slices always have one entry per unit.
func (deal *Deal) ToDealInputs() analysis.DealInputs {
	marketRents := deal.MarketRents
	if len(marketRents) == 0 {
		marketRents = append([]float64(nil), deal.CurrentRents...)
	}

	return analysis.DealInputs{
		PurchasePrice:  deal.PurchasePrice,
		DownPaymentPct: deal.DownPaymentPercent / constants.PercentageMultiplier,

		CurrentRents:   append([]float64(nil), deal.CurrentRents...),
		MarketRents:    marketRents,
		UseMarketRents: deal.UseMarketRents,

		InterestRate:  deal.InterestRate / constants.PercentageMultiplier,
		LoanTermYears: deal.LoanTermYears,
		InterestOnly:  deal.InterestOnly,

		ImpoundsEnabled: deal.Impounds,
		TaxRate:         deal.TaxRatePercent / constants.PercentageMultiplier,
		InsuranceAnnual: deal.InsuranceAnnual,

		ExpenseRatio:    deal.ExpenseRatioPercent / constants.PercentageMultiplier,
		VacancyRate:     deal.VacancyRatePercent / constants.PercentageMultiplier,
		MgmtFeeOverride: deal.ManagementFeeOverride,

		RenovationCostPerUnit: deal.RenovationCostPerUnit,
		CapexTotal:            deal.CapexTotal,

		RentGrowthEnabled:     deal.RentGrowth.Enabled,
		AnnualRentIncreasePct: deal.RentGrowth.AnnualIncreasePercent / constants.PercentageMultiplier,

		DSCRIncludesImpounds: deal.DSCRIncludesImpounds,
	}
}
