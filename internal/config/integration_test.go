package config

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

// TestExampleConfiguration runs the full load -> validate -> analyze pipeline
// against the shipped example configuration.
func TestExampleConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join("..", "..", "config.yaml.example"))
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	if len(conf.Deals) != 2 {
		t.Fatalf("expected 2 example deals, got %d", len(conf.Deals))
	}

	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("expected no warnings for example config, got %v", warnings)
	}

	results, err := conf.AnalyzeDeals(zap.NewNop())
	if err != nil {
		t.Fatalf("AnalyzeDeals failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	fourplex := results[0].Metrics
	if fourplex.UnitCount != 4 {
		t.Errorf("fourplex UnitCount = %d, expected 4", fourplex.UnitCount)
	}
	if fourplex.GrossRentAnnual != 72000 {
		t.Errorf("fourplex GrossRentAnnual = %.2f, expected 72000", fourplex.GrossRentAnnual)
	}
	if len(fourplex.Projections) != 10 {
		t.Errorf("fourplex projections = %d, expected 10", len(fourplex.Projections))
	}
	if fourplex.DSCR <= 0 {
		t.Errorf("fourplex DSCR = %.4f, expected positive", fourplex.DSCR)
	}

	duplex := results[1].Metrics
	if duplex.PrincipalPaydown != 0 {
		t.Errorf("interest-only duplex PrincipalPaydown = %.2f, expected 0", duplex.PrincipalPaydown)
	}
	if duplex.MonthlyImpounds != 0 {
		t.Errorf("duplex MonthlyImpounds = %.2f, expected 0 with impounds disabled", duplex.MonthlyImpounds)
	}
	if len(duplex.Projections) != 0 {
		t.Errorf("duplex projections = %d, expected none", len(duplex.Projections))
	}
}
