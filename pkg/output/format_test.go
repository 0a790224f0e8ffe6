package output

import (
	"strings"
	"testing"

	"github.com/mrmeatball22/deal-analyzer/internal/analysis"
)

func sampleResults() []analysis.Result {
	return []analysis.Result{
		{
			Name: "Fourplex",
			Metrics: analysis.DealMetrics{
				UnitCount:            4,
				GrossRentAnnual:      72000,
				GrossOperatingIncome: 69840,
				OperatingExpenses:    20952,
				NOI:                  48888,
				DSCR:                 1.0861,
				AnnualCashFlow:       -1200.50,
				CapRate:              0.0489,
				CashOnCashReturn:     -0.0041,
				TotalROI:             0.0261,
				BreakevenRentPerUnit: 1525.25,
				MonthlyTotalPayment:  4496.63,
				CashInvested:         290000,
				PrincipalPaydown:     8959.57,
				Projections: []analysis.YearProjection{
					{Year: 1, GrossRent: 6180, NOI: 50354.64, CashFlow: 265.08, DSCR: 1.12},
					{Year: 2, GrossRent: 6365.40, NOI: 51865.28, CashFlow: 1775.72, DSCR: 1.15},
				},
			},
		},
		{
			Name: "Duplex",
			Metrics: analysis.DealMetrics{
				UnitCount:       2,
				GrossRentAnnual: 30000,
				NOI:             19500,
				DSCR:            0.89,
			},
		},
	}
}

func TestCsvString(t *testing.T) {
	csv := CsvString(sampleResults())

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	// Header, two deal rows, projection header, two projection rows.
	if len(lines) != 6 {
		t.Fatalf("expected 6 CSV lines, got %d:\n%s", len(lines), csv)
	}

	if !strings.HasPrefix(lines[0], `"deal","units"`) {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"Fourplex","4"`) {
		t.Errorf("first data row missing deal name and units: %s", lines[1])
	}
	if !strings.Contains(lines[2], `"Duplex","2"`) {
		t.Errorf("second data row missing deal name and units: %s", lines[2])
	}
	if !strings.Contains(lines[3], `"year"`) {
		t.Errorf("expected projection header, got: %s", lines[3])
	}
	if !strings.Contains(lines[4], `"Fourplex","1"`) {
		t.Errorf("first projection row missing deal and year: %s", lines[4])
	}
}

func TestCsvStringNoProjections(t *testing.T) {
	results := sampleResults()[1:]
	csv := CsvString(results)

	if strings.Contains(csv, `"year"`) {
		t.Error("expected no projection section when no deal has projections")
	}
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 CSV lines, got %d", len(lines))
	}
}

func TestCsvStringEmpty(t *testing.T) {
	csv := CsvString(nil)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header only for empty results, got %d lines", len(lines))
	}
}
