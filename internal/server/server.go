package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mrmeatball22/deal-analyzer/internal/analysis"
	"github.com/mrmeatball22/deal-analyzer/internal/config"
	"github.com/mrmeatball22/deal-analyzer/pkg/constants"
	"github.com/mrmeatball22/deal-analyzer/pkg/format"
	"github.com/mrmeatball22/deal-analyzer/pkg/output"
	"github.com/mrmeatball22/deal-analyzer/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the deal-analysis API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Single-deal analysis from a JSON request body
	mux.HandleFunc("/api/analyze", h.handleAnalyze)

	// Multi-deal analysis from an uploaded YAML config
	mux.HandleFunc("/api/analyze/upload", h.handleAnalyzeUpload)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

// dealRequest mirrors the configuration file's deal shape: rates come in as
// percentages and rents as monthly per-unit amounts.
type dealRequest struct {
	Name                  string     `json:"name,omitempty"`
	PurchasePrice         float64    `json:"purchasePrice"`
	DownPaymentPercent    float64    `json:"downPaymentPercent"`
	CurrentRents          []float64  `json:"currentRents"`
	MarketRents           []float64  `json:"marketRents,omitempty"`
	UseMarketRents        bool       `json:"useMarketRents,omitempty"`
	InterestRate          float64    `json:"interestRate"`
	LoanTermYears         int        `json:"loanTermYears"`
	InterestOnly          bool       `json:"interestOnly,omitempty"`
	Impounds              bool       `json:"impounds,omitempty"`
	TaxRatePercent        float64    `json:"taxRatePercent,omitempty"`
	InsuranceAnnual       float64    `json:"insuranceAnnual,omitempty"`
	ExpenseRatioPercent   float64    `json:"expenseRatioPercent"`
	VacancyRatePercent    float64    `json:"vacancyRatePercent,omitempty"`
	ManagementFeeOverride bool       `json:"managementFeeOverride,omitempty"`
	RenovationCostPerUnit float64    `json:"renovationCostPerUnit,omitempty"`
	CapexTotal            float64    `json:"capexTotal,omitempty"`
	RentGrowth            rentGrowth `json:"rentGrowth,omitempty"`
	DSCRIncludesImpounds  bool       `json:"dscrIncludesImpounds,omitempty"`
}

type rentGrowth struct {
	Enabled               bool    `json:"enabled,omitempty"`
	AnnualIncreasePercent float64 `json:"annualIncreasePercent,omitempty"`
}

type yearProjection struct {
	Year      int     `json:"year"`
	GrossRent float64 `json:"grossRent"`
	NOI       float64 `json:"noi"`
	CashFlow  float64 `json:"cashFlow"`
	DSCR      float64 `json:"dscr"`
}

type dealMetrics struct {
	UnitCount            int              `json:"unitCount"`
	GrossRentAnnual      float64          `json:"grossRentAnnual"`
	GrossOperatingIncome float64          `json:"grossOperatingIncome"`
	OperatingExpenses    float64          `json:"operatingExpenses"`
	LoanAmount           float64          `json:"loanAmount"`
	MonthlyDebtService   float64          `json:"monthlyDebtService"`
	MonthlyImpounds      float64          `json:"monthlyImpounds"`
	MonthlyTotalPayment  float64          `json:"monthlyTotalPayment"`
	AnnualDebtService    float64          `json:"annualDebtService"`
	NOI                  float64          `json:"noi"`
	DSCR                 float64          `json:"dscr"`
	AnnualCashFlow       float64          `json:"annualCashFlow"`
	CapRate              float64          `json:"capRate"`
	CashOnCashReturn     float64          `json:"cashOnCashReturn"`
	TotalROI             float64          `json:"totalRoi"`
	BreakevenRentPerUnit float64          `json:"breakevenRentPerUnit"`
	CashInvested         float64          `json:"cashInvested"`
	PrincipalPaydown     float64          `json:"principalPaydown"`
	Projections          []yearProjection `json:"projections,omitempty"`
}

type analyzeResponse struct {
	Deal      string            `json:"deal,omitempty"`
	Metrics   dealMetrics       `json:"metrics"`
	Formatted map[string]string `json:"formatted,omitempty"`
	Warnings  []string          `json:"warnings,omitempty"`
	Duration  string            `json:"duration"`
}

type uploadResponse struct {
	Deals    []analyzeResponse `json:"deals"`
	CSV      string            `json:"csv"`
	Warnings []string          `json:"warnings,omitempty"`
	Duration string            `json:"duration"`
}

func (h *handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	var request dealRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleAnalyze")
		return
	}

	deal := request.toDeal()
	warnings := (&config.Configuration{Deals: []config.Deal{deal}}).ValidateConfiguration()

	metrics, err := analysis.Analyze(h.logger, deal.ToDealInputs())
	if err != nil {
		var invalid *validation.InvalidInputError
		if errors.As(err, &invalid) {
			h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleAnalyze")
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleAnalyze")
		return
	}

	elapsed := time.Since(start)

	h.logger.Info("deal analyzed",
		zap.String("op", "server.handleAnalyze"),
		zap.String("deal", deal.Name),
		zap.Int("units", metrics.UnitCount),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, buildAnalyzeResponse(deal.Name, metrics, warnings, elapsed))
}

func (h *handler) handleAnalyzeUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), "server.handleAnalyzeUpload")
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), "server.handleAnalyzeUpload")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing configuration file", "server.handleAnalyzeUpload")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.handleAnalyzeUpload"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), "server.handleAnalyzeUpload")
		return
	}

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleAnalyzeUpload")
		return
	}

	warnings := cfg.ValidateConfiguration()

	results, err := cfg.AnalyzeDeals(h.logger)
	if err != nil {
		var invalid *validation.InvalidInputError
		if errors.As(err, &invalid) {
			h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleAnalyzeUpload")
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleAnalyzeUpload")
		return
	}

	elapsed := time.Since(start)

	response := uploadResponse{
		Deals:    make([]analyzeResponse, 0, len(results)),
		CSV:      output.CsvString(results),
		Warnings: warnings,
		Duration: elapsed.String(),
	}
	for _, result := range results {
		metrics := result.Metrics
		response.Deals = append(response.Deals, buildAnalyzeResponse(result.Name, &metrics, nil, elapsed))
	}

	h.logger.Info("configuration analyzed",
		zap.String("op", "server.handleAnalyzeUpload"),
		zap.Int("deals", len(results)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (r *dealRequest) toDeal() config.Deal {
	return config.Deal{
		Name:                  r.Name,
		PurchasePrice:         r.PurchasePrice,
		DownPaymentPercent:    r.DownPaymentPercent,
		CurrentRents:          r.CurrentRents,
		MarketRents:           r.MarketRents,
		UseMarketRents:        r.UseMarketRents,
		InterestRate:          r.InterestRate,
		LoanTermYears:         r.LoanTermYears,
		InterestOnly:          r.InterestOnly,
		Impounds:              r.Impounds,
		TaxRatePercent:        r.TaxRatePercent,
		InsuranceAnnual:       r.InsuranceAnnual,
		ExpenseRatioPercent:   r.ExpenseRatioPercent,
		VacancyRatePercent:    r.VacancyRatePercent,
		ManagementFeeOverride: r.ManagementFeeOverride,
		RenovationCostPerUnit: r.RenovationCostPerUnit,
		CapexTotal:            r.CapexTotal,
		RentGrowth: config.RentGrowth{
			Enabled:               r.RentGrowth.Enabled,
			AnnualIncreasePercent: r.RentGrowth.AnnualIncreasePercent,
		},
		DSCRIncludesImpounds: r.DSCRIncludesImpounds,
	}
}

func buildAnalyzeResponse(name string, metrics *analysis.DealMetrics, warnings []string, elapsed time.Duration) analyzeResponse {
	payload := dealMetrics{
		UnitCount:            metrics.UnitCount,
		GrossRentAnnual:      metrics.GrossRentAnnual,
		GrossOperatingIncome: metrics.GrossOperatingIncome,
		OperatingExpenses:    metrics.OperatingExpenses,
		LoanAmount:           metrics.LoanAmount,
		MonthlyDebtService:   metrics.MonthlyDebtService,
		MonthlyImpounds:      metrics.MonthlyImpounds,
		MonthlyTotalPayment:  metrics.MonthlyTotalPayment,
		AnnualDebtService:    metrics.AnnualDebtService,
		NOI:                  metrics.NOI,
		DSCR:                 metrics.DSCR,
		AnnualCashFlow:       metrics.AnnualCashFlow,
		CapRate:              metrics.CapRate,
		CashOnCashReturn:     metrics.CashOnCashReturn,
		TotalROI:             metrics.TotalROI,
		BreakevenRentPerUnit: metrics.BreakevenRentPerUnit,
		CashInvested:         metrics.CashInvested,
		PrincipalPaydown:     metrics.PrincipalPaydown,
	}

	for _, projection := range metrics.Projections {
		payload.Projections = append(payload.Projections, yearProjection{
			Year:      projection.Year,
			GrossRent: projection.GrossRent,
			NOI:       projection.NOI,
			CashFlow:  projection.CashFlow,
			DSCR:      projection.DSCR,
		})
	}

	return analyzeResponse{
		Deal:    name,
		Metrics: payload,
		Formatted: map[string]string{
			"noi":                  format.Currency(metrics.NOI),
			"dscr":                 format.Ratio(metrics.DSCR),
			"annualCashFlow":       format.Currency(metrics.AnnualCashFlow),
			"capRate":              format.Percent(metrics.CapRate),
			"cashOnCashReturn":     format.Percent(metrics.CashOnCashReturn),
			"totalRoi":             format.Percent(metrics.TotalROI),
			"breakevenRentPerUnit": format.Currency(metrics.BreakevenRentPerUnit),
			"monthlyTotalPayment":  format.Currency(metrics.MonthlyTotalPayment),
			"cashInvested":         format.Currency(metrics.CashInvested),
			"principalPaydown":     format.Currency(metrics.PrincipalPaydown),
		},
		Warnings: warnings,
		Duration: elapsed.String(),
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("analysis request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
