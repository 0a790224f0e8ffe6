// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/mrmeatball22/deal-analyzer/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for deal-analyzer.
type Configuration struct {
	Deals   []Deal
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Deal holds the configured parameters for one property under evaluation.
// Rates are written as percentages in config files (6.0 means 6%) and rents
// are monthly per-unit amounts.
type Deal struct {
	Name string

	PurchasePrice      float64
	DownPaymentPercent float64

	CurrentRents   []float64
	MarketRents    []float64
	UseMarketRents bool

	InterestRate  float64 // annual percentage
	LoanTermYears int
	InterestOnly  bool

	Impounds        bool
	TaxRatePercent  float64
	InsuranceAnnual float64

	ExpenseRatioPercent   float64
	VacancyRatePercent    float64
	ManagementFeeOverride bool

	RenovationCostPerUnit float64
	CapexTotal            float64

	RentGrowth RentGrowth

	DSCRIncludesImpounds bool `mapstructure:"dscrIncludesImpounds" yaml:"dscrIncludesImpounds,omitempty"`
}

// RentGrowth holds the optional multi-year rent projection settings.
type RentGrowth struct {
	Enabled               bool
	AnnualIncreasePercent float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads YAML-formatted configuration from an
// arbitrary reader, e.g. an uploaded file.
func LoadConfigurationFromReader(reader io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(reader); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard input errors surface later from the analyzer.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Deals) == 0 {
		warnings = append(warnings, "Configuration contains no deals")
	}

	for _, deal := range c.Deals {
		warnings = append(warnings, validation.DealWarnings(validation.DealCheck{
			Name:                deal.Name,
			Units:               len(deal.CurrentRents),
			DownPaymentPercent:  deal.DownPaymentPercent,
			ExpenseRatioPercent: deal.ExpenseRatioPercent,
			VacancyRatePercent:  deal.VacancyRatePercent,
			InterestRatePercent: deal.InterestRate,
			HasMarketRents:      len(deal.MarketRents) > 0,
			UseMarketRents:      deal.UseMarketRents,
		})...)
	}

	return warnings
}
