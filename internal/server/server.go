// Package server implements the HTTP JSON API over the calculator core.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/iwvelando/real-return/internal/config"
	"github.com/iwvelando/real-return/internal/reference"
	"github.com/iwvelando/real-return/pkg/constants"
	"github.com/iwvelando/real-return/pkg/format"
	"github.com/iwvelando/real-return/pkg/output"
	"github.com/iwvelando/real-return/pkg/parse"
	"github.com/iwvelando/real-return/pkg/returns"
)

type handler struct {
	logger         *zap.Logger
	conf           *config.Configuration
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the calculator API.
func NewHandler(logger *zap.Logger, conf *config.Configuration, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if conf == nil {
		conf = config.Default()
	}
	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, conf: conf, maxRequestSize: maxRequestSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Calculator API endpoint (JSON or form-encoded)
	mux.HandleFunc("/api/calculate", h.handleCalculate)

	// Worked example calculations
	mux.HandleFunc("/api/examples", h.handleExamples)

	// Investment-type and country catalog
	mux.HandleFunc("/api/reference", h.handleReference)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type calculateRequest struct {
	NominalReturn string `json:"nominalReturn"`
	InflationRate string `json:"inflationRate"`
	Amount        string `json:"amount"`
	Years         []int  `json:"years,omitempty"`
}

type calculateResponse struct {
	NominalReturn      string          `json:"nominalReturn"`
	InflationRate      string          `json:"inflationRate"`
	RealReturn         string          `json:"realReturn"`
	RealReturnValue    float64         `json:"realReturnValue"`
	Assessment         assessmentBody  `json:"assessment"`
	Warnings           []string        `json:"warnings,omitempty"`
	CalculationSteps   []string        `json:"calculationSteps"`
	Amount             float64         `json:"amount"`
	AmountFormatted    string          `json:"amountFormatted"`
	PurchasingPower    []projectionRow `json:"purchasingPower"`
	CSV                string          `json:"csv"`
	Duration           string          `json:"duration"`
}

type assessmentBody struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type projectionRow struct {
	Years                  int     `json:"years"`
	NominalValue           float64 `json:"nominalValue"`
	RealValue              float64 `json:"realValue"`
	InflationCost          float64 `json:"inflationCost"`
	NominalValueFormatted  string  `json:"nominalValueFormatted"`
	RealValueFormatted     string  `json:"realValueFormatted"`
	InflationCostFormatted string  `json:"inflationCostFormatted"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	op := "server.handleCalculate"
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	req, err := decodeCalculateRequest(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	nominal, err := parse.Rate(req.NominalReturn)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid nominal return: %v", err), op)
		return
	}
	inflation, err := parse.Rate(req.InflationRate)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid inflation rate: %v", err), op)
		return
	}

	amount := h.conf.Calculator.DefaultAmount
	if strings.TrimSpace(req.Amount) != "" {
		amount, err = parse.Amount(req.Amount)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid amount: %v", err), op)
			return
		}
	}

	years := req.Years
	if len(years) == 0 {
		years = h.conf.Years()
	}
	for _, y := range years {
		if y <= 0 {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid projection year %d", y), op)
			return
		}
	}

	result, err := returns.Scenarios(amount, nominal, inflation, years, h.conf.Thresholds(), h.conf.Bands())
	if err != nil {
		if errors.Is(err, returns.ErrDivisionUndefined) {
			h.respondError(w, http.StatusUnprocessableEntity, err.Error(), op)
			return
		}
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute result: %v", err), op)
		return
	}

	steps, err := returns.Steps(nominal, inflation)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render steps: %v", err), op)
		return
	}

	elapsed := time.Since(start)
	response := h.buildResponse(result, steps, elapsed)

	h.logger.Info("calculation served",
		zap.String("op", op),
		zap.Float64("realReturn", result.RealReturn),
		zap.String("assessment", string(result.Assessment)),
		zap.Int("rows", len(response.PurchasingPower)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) buildResponse(result *returns.Result, steps []string, elapsed time.Duration) calculateResponse {
	opts := h.conf.FormatOptions()

	nominal, _ := format.Percentage(result.Nominal, 2)
	inflation, _ := format.Percentage(result.Inflation, 2)
	realReturn, _ := format.Percentage(result.RealReturn, 2)

	rows := make([]projectionRow, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, projectionRow{
			Years:                  row.Years,
			NominalValue:           row.NominalValue,
			RealValue:              row.RealValue,
			InflationCost:          row.InflationCost,
			NominalValueFormatted:  format.Currency(row.NominalValue, opts),
			RealValueFormatted:     format.Currency(row.RealValue, opts),
			InflationCostFormatted: format.Currency(row.InflationCost, opts),
		})
	}

	warnings := make([]string, 0, len(result.Warnings))
	for _, warning := range result.Warnings {
		warnings = append(warnings, warning.Message)
	}

	return calculateResponse{
		NominalReturn:    nominal,
		InflationRate:    inflation,
		RealReturn:       realReturn,
		RealReturnValue:  result.RealReturn,
		Assessment:       assessmentBody{Level: string(result.Assessment), Message: result.Assessment.Message()},
		Warnings:         warnings,
		CalculationSteps: steps,
		Amount:           result.Principal,
		AmountFormatted:  format.Currency(result.Principal, opts),
		PurchasingPower:  rows,
		CSV:              output.CsvString(result),
		Duration:         elapsed.String(),
	}
}

func decodeCalculateRequest(r *http.Request) (*calculateRequest, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		req := &calculateRequest{
			NominalReturn: r.FormValue("nominalReturn"),
			InflationRate: r.FormValue("inflationRate"),
			Amount:        r.FormValue("amount"),
		}
		if rawYears := strings.TrimSpace(r.FormValue("years")); rawYears != "" {
			for _, part := range strings.Split(rawYears, ",") {
				y, err := strconv.Atoi(strings.TrimSpace(part))
				if err != nil {
					return nil, fmt.Errorf("invalid years value %q", part)
				}
				req.Years = append(req.Years, y)
			}
		}
		return req, nil
	}

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

type exampleBody struct {
	reference.Example
	RealReturn        string  `json:"realReturn"`
	RealReturnDecimal float64 `json:"realReturnDecimal"`
	Assessment        string  `json:"assessment"`
}

func (h *handler) handleExamples(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	examples := reference.Examples()
	bodies := make([]exampleBody, 0, len(examples))
	for _, ex := range examples {
		nominal := ex.Nominal / constants.PercentageMultiplier
		inflation := ex.Inflation / constants.PercentageMultiplier
		realReturn, err := returns.Real(nominal, inflation)
		if err != nil {
			h.respondError(w, http.StatusInternalServerError,
				fmt.Sprintf("failed to compute example %q: %v", ex.Name, err), "server.handleExamples")
			return
		}
		formatted, _ := format.Percentage(realReturn, 2)
		bodies = append(bodies, exampleBody{
			Example:           ex,
			RealReturn:        formatted,
			RealReturnDecimal: realReturn,
			Assessment:        string(returns.Assess(realReturn, h.conf.Thresholds())),
		})
	}

	h.writeJSON(w, http.StatusOK, bodies)
}

type referenceResponse struct {
	InvestmentTypes []reference.InvestmentType `json:"investmentTypes"`
	Countries       []reference.Country        `json:"countries"`
}

func (h *handler) handleReference(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, referenceResponse{
		InvestmentTypes: reference.InvestmentTypes(),
		Countries:       reference.Countries(),
	})
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

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calculation request failed",
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
