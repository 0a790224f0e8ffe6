// Package analysis implements the deal-analysis core: a pure transformation
// from a set of multifamily deal inputs to the standard investment metrics
// (NOI, DSCR, cap rate, cash-on-cash, total ROI, breakeven rent) plus an
// optional multi-year rent-growth projection.
package analysis

import (
	"math"

	"github.com/mrmeatball22/deal-analyzer/pkg/constants"
	"github.com/mrmeatball22/deal-analyzer/pkg/loans"
	"github.com/mrmeatball22/deal-analyzer/pkg/mathutil"
	"github.com/mrmeatball22/deal-analyzer/pkg/validation"
	"go.uber.org/zap"
)

// DealInputs holds all parameters for a single deal analysis. Rates are
// fractions (0.06 means 6%) and rents are monthly per-unit amounts.
type DealInputs struct {
	PurchasePrice  float64
	DownPaymentPct float64

	CurrentRents   []float64
	MarketRents    []float64
	UseMarketRents bool

	InterestRate  float64 // annual nominal rate
	LoanTermYears int
	InterestOnly  bool

	ImpoundsEnabled bool
	TaxRate         float64 // annual, fraction of purchase price
	InsuranceAnnual float64

	ExpenseRatio    float64
	VacancyRate     float64
	MgmtFeeOverride bool

	RenovationCostPerUnit float64
	CapexTotal            float64

	RentGrowthEnabled     bool
	AnnualRentIncreasePct float64

	// DSCRIncludesImpounds selects the legacy DSCR denominator of
	// P&I plus impounds. The default computes DSCR against P&I only.
	DSCRIncludesImpounds bool
}

// YearProjection holds the projected performance for one future year under
// the configured annual rent increase.
type YearProjection struct {
	Year      int
	GrossRent float64
	NOI       float64
	CashFlow  float64
	DSCR      float64
}

// DealMetrics holds every derived metric for an analyzed deal. All fields
// are computed once per Analyze call; nothing is carried between calls.
type DealMetrics struct {
	UnitCount int

	GrossRentAnnual      float64
	VacancyLoss          float64
	GrossOperatingIncome float64
	OperatingExpenses    float64

	LoanAmount          float64
	MonthlyDebtService  float64
	MonthlyImpounds     float64
	MonthlyTotalPayment float64
	AnnualDebtService   float64
	AnnualTotalPayment  float64

	NOI                  float64
	DSCR                 float64
	AnnualCashFlow       float64
	CapRate              float64
	CashOnCashReturn     float64
	TotalROI             float64
	BreakevenRentPerUnit float64
	CashInvested         float64
	PrincipalPaydown     float64

	Projections []YearProjection
}

// Result pairs a deal name with its computed metrics.
type Result struct {
	Name    string
	Metrics DealMetrics
}

// Validate checks the preconditions that cannot be defaulted to zero.
// Degenerate-but-meaningful inputs (zero price, zero units, zero rate) pass;
// they are handled as defined edge cases by Analyze.
func (in *DealInputs) Validate() error {
	if in.PurchasePrice < 0 {
		return &validation.InvalidInputError{Field: "purchasePrice", Reason: "must not be negative"}
	}
	if len(in.CurrentRents) != len(in.MarketRents) {
		return &validation.InvalidInputError{Field: "marketRents", Reason: "must have one entry per unit"}
	}
	for _, rent := range in.CurrentRents {
		if rent < 0 {
			return &validation.InvalidInputError{Field: "currentRents", Reason: "must not contain negative rents"}
		}
	}
	for _, rent := range in.MarketRents {
		if rent < 0 {
			return &validation.InvalidInputError{Field: "marketRents", Reason: "must not contain negative rents"}
		}
	}
	if err := validation.Fraction("downPaymentPercent", in.DownPaymentPct); err != nil {
		return err
	}
	if err := validation.Fraction("expenseRatio", in.ExpenseRatio); err != nil {
		return err
	}
	if err := validation.Fraction("vacancyRate", in.VacancyRate); err != nil {
		return err
	}
	if err := validation.NonNegative("interestRate", in.InterestRate); err != nil {
		return err
	}
	if err := validation.PositiveInt("loanTermYears", in.LoanTermYears); err != nil {
		return err
	}
	if err := validation.NonNegative("taxRate", in.TaxRate); err != nil {
		return err
	}
	if err := validation.NonNegative("insuranceAnnual", in.InsuranceAnnual); err != nil {
		return err
	}
	if err := validation.NonNegative("renovationCostPerUnit", in.RenovationCostPerUnit); err != nil {
		return err
	}
	if err := validation.NonNegative("capexTotal", in.CapexTotal); err != nil {
		return err
	}
	if err := validation.NonNegative("annualRentIncreasePercent", in.AnnualRentIncreasePct); err != nil {
		return err
	}
	return nil
}

// appliedRents returns the rent set selected for income.
func (in *DealInputs) appliedRents() []float64 {
	if in.UseMarketRents {
		return in.MarketRents
	}
	return in.CurrentRents
}

// Analyze computes all metrics for a deal. It is stateless and re-entrant;
// concurrent calls with independent inputs never interact.
func Analyze(logger *zap.Logger, inputs DealInputs) (*DealMetrics, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := inputs.Validate(); err != nil {
		return nil, err
	}

	metrics := &DealMetrics{
		UnitCount: len(inputs.CurrentRents),
	}

	// Income.
	rentTotal := sumRents(inputs.appliedRents())
	metrics.GrossRentAnnual = rentTotal * constants.MonthsPerYear
	metrics.VacancyLoss = metrics.GrossRentAnnual * inputs.VacancyRate
	metrics.GrossOperatingIncome = metrics.GrossRentAnnual - metrics.VacancyLoss

	// Expenses.
	metrics.OperatingExpenses = operatingExpenses(metrics.GrossOperatingIncome, inputs)

	// Debt service.
	metrics.LoanAmount = inputs.PurchasePrice * (1 - inputs.DownPaymentPct)
	if inputs.InterestOnly {
		metrics.MonthlyDebtService = loans.InterestOnlyPayment(metrics.LoanAmount, inputs.InterestRate)
	} else {
		metrics.MonthlyDebtService = loans.MonthlyPayment(metrics.LoanAmount, inputs.InterestRate,
			inputs.LoanTermYears*constants.MonthsPerYear)
	}
	metrics.AnnualDebtService = loans.AnnualDebtService(metrics.MonthlyDebtService)

	// Impounds are part of the cash-flow-facing payment only.
	if inputs.ImpoundsEnabled {
		annualTaxes := inputs.PurchasePrice * inputs.TaxRate
		metrics.MonthlyImpounds = (annualTaxes + inputs.InsuranceAnnual) / constants.MonthsPerYear
	}
	metrics.MonthlyTotalPayment = metrics.MonthlyDebtService + metrics.MonthlyImpounds
	metrics.AnnualTotalPayment = metrics.MonthlyTotalPayment * constants.MonthsPerYear

	dscrDenominator := metrics.AnnualDebtService
	if inputs.DSCRIncludesImpounds {
		dscrDenominator = metrics.AnnualTotalPayment
	}

	// Core metrics.
	metrics.NOI = metrics.GrossOperatingIncome - metrics.OperatingExpenses
	metrics.DSCR = mathutil.SafeRatio(metrics.NOI, dscrDenominator)
	metrics.CashInvested = inputs.PurchasePrice*inputs.DownPaymentPct +
		inputs.RenovationCostPerUnit*float64(metrics.UnitCount) + inputs.CapexTotal
	metrics.AnnualCashFlow = metrics.NOI - metrics.AnnualTotalPayment
	metrics.PrincipalPaydown = loans.FirstYearPrincipalPaydown(metrics.AnnualDebtService,
		metrics.LoanAmount, inputs.InterestRate, inputs.InterestOnly)
	metrics.CapRate = mathutil.SafeRatio(metrics.NOI, inputs.PurchasePrice)
	metrics.CashOnCashReturn = mathutil.SafeRatio(metrics.AnnualCashFlow, metrics.CashInvested)
	metrics.TotalROI = mathutil.SafeRatio(metrics.AnnualCashFlow+metrics.PrincipalPaydown, metrics.CashInvested)
	if metrics.UnitCount > 0 {
		metrics.BreakevenRentPerUnit = (metrics.AnnualTotalPayment + metrics.OperatingExpenses) /
			(float64(metrics.UnitCount) * constants.MonthsPerYear)
	}

	// Rent-growth projection. Only gross rent compounds; the expense ratio
	// and debt service stay fixed at year-0 values.
	if inputs.RentGrowthEnabled {
		metrics.Projections = make([]YearProjection, 0, constants.ProjectionYears)
		for year := 1; year <= constants.ProjectionYears; year++ {
			futureRentTotal := rentTotal * math.Pow(1+inputs.AnnualRentIncreasePct, float64(year))
			futureGrossAnnual := futureRentTotal * constants.MonthsPerYear
			futureIncome := futureGrossAnnual * (1 - inputs.VacancyRate)
			futureNOI := futureIncome - operatingExpenses(futureIncome, inputs)
			metrics.Projections = append(metrics.Projections, YearProjection{
				Year:      year,
				GrossRent: futureRentTotal,
				NOI:       futureNOI,
				CashFlow:  futureNOI - metrics.AnnualTotalPayment,
				DSCR:      mathutil.SafeRatio(futureNOI, dscrDenominator),
			})
		}
	}

	logger.Debug("deal analyzed",
		zap.String("op", "analysis.Analyze"),
		zap.Int("units", metrics.UnitCount),
		zap.Float64("noi", metrics.NOI),
		zap.Float64("dscr", metrics.DSCR),
	)

	return metrics, nil
}

// operatingExpenses applies the expense ratio and the optional fixed
// management-fee surcharge to gross operating income.
func operatingExpenses(grossOperatingIncome float64, inputs DealInputs) float64 {
	expenses := grossOperatingIncome * inputs.ExpenseRatio
	if inputs.MgmtFeeOverride {
		expenses += grossOperatingIncome * constants.ManagementFeeRate
	}
	return expenses
}

func sumRents(rents []float64) float64 {
	total := 0.0
	for _, rent := range rents {
		total += rent
	}
	return total
}
