// Package returns implements the inflation-adjusted return formula,
// purchasing-power projections, and the assessment of computed returns
// against configurable thresholds. All functions are pure.
package returns

import (
	"errors"
	"fmt"

	"github.com/iwvelando/real-return/pkg/constants"
	"github.com/iwvelando/real-return/pkg/mathutil"
)

// ErrDivisionUndefined indicates an inflation rate of exactly -100%, for
// which the real-return formula has no value.
var ErrDivisionUndefined = errors.New("division undefined")

// Level classifies a real return against assessment thresholds.
type Level string

const (
	LevelExcellent Level = "excellent"
	LevelGood      Level = "good"
	LevelModest    Level = "modest"
	LevelPoor      Level = "poor"
)

// Message returns the advisory text shown alongside an assessment.
func (l Level) Message() string {
	switch l {
	case LevelExcellent:
		return "Excellent! Your investment significantly beats inflation."
	case LevelGood:
		return "Good! Your investment beats inflation."
	case LevelModest:
		return "Your investment roughly keeps pace with inflation."
	case LevelPoor:
		return "Warning! Your investment loses to inflation."
	default:
		return ""
	}
}

// Thresholds holds the closed lower bound of each assessment tier.
type Thresholds struct {
	Excellent float64
	Good      float64
	Modest    float64
}

// DefaultThresholds returns the standard assessment tiers.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Excellent: constants.ExcellentThreshold,
		Good:      constants.GoodThreshold,
		Modest:    constants.ModestThreshold,
	}
}

// Bands bound the rates considered historically plausible; rates outside
// the band warn but do not fail.
type Bands struct {
	Min float64
	Max float64
}

// DefaultBands returns the standard plausibility band.
func DefaultBands() Bands {
	return Bands{Min: constants.MinPlausibleRate, Max: constants.MaxPlausibleRate}
}

// Warning flags an implausible but accepted input value.
type Warning struct {
	Field   string
	Message string
}

// ProjectionRow is one year of a purchasing-power projection.
type ProjectionRow struct {
	Years         int
	NominalValue  float64
	RealValue     float64
	InflationCost float64
}

// Real computes the inflation-adjusted return,
// ((1 + nominal) / (1 + inflation)) - 1. No rounding is applied.
func Real(nominal, inflation float64) (float64, error) {
	if inflation == -1 {
		return 0, fmt.Errorf("%w: inflation rate of -100%% makes 1 + inflation zero", ErrDivisionUndefined)
	}
	return ((1 + nominal) / (1 + inflation)) - 1, nil
}

// PurchasingPower projects the nominal and real value of principal for each
// requested year, preserving request order.
func PurchasingPower(principal, nominal, inflation float64, years []int) ([]ProjectionRow, error) {
	realReturn, err := Real(nominal, inflation)
	if err != nil {
		return nil, err
	}

	rows := make([]ProjectionRow, 0, len(years))
	for _, y := range years {
		nominalValue := mathutil.Compound(principal, nominal, y)
		realValue := mathutil.Compound(principal, realReturn, y)
		rows = append(rows, ProjectionRow{
			Years:         y,
			NominalValue:  nominalValue,
			RealValue:     realValue,
			InflationCost: nominalValue - realValue,
		})
	}
	return rows, nil
}

// Assess classifies a real return. Boundary values belong to the higher tier.
func Assess(realReturn float64, th Thresholds) Level {
	switch {
	case realReturn >= th.Excellent:
		return LevelExcellent
	case realReturn >= th.Good:
		return LevelGood
	case realReturn >= th.Modest:
		return LevelModest
	default:
		return LevelPoor
	}
}

// ValidateInputs reports non-fatal plausibility warnings for the given
// rates. An inflation rate of exactly -100% is not a warning; Real rejects
// it outright.
func ValidateInputs(nominal, inflation float64, bands Bands) []Warning {
	var warnings []Warning
	if nominal < bands.Min || nominal > bands.Max {
		warnings = append(warnings, Warning{
			Field: "nominalReturn",
			Message: fmt.Sprintf("nominal return of %.2f%% is outside the plausible historical band",
				nominal*constants.PercentageMultiplier),
		})
	}
	if inflation < bands.Min || inflation > bands.Max {
		warnings = append(warnings, Warning{
			Field: "inflationRate",
			Message: fmt.Sprintf("inflation rate of %.2f%% is outside the plausible historical band",
				inflation*constants.PercentageMultiplier),
		})
	}
	return warnings
}

// Steps renders the intermediate calculation lines shown to users.
func Steps(nominal, inflation float64) ([]string, error) {
	realReturn, err := Real(nominal, inflation)
	if err != nil {
		return nil, err
	}
	ratio := (1 + nominal) / (1 + inflation)
	return []string{
		fmt.Sprintf("(1 + %.4f) = %.4f", nominal, 1+nominal),
		fmt.Sprintf("(1 + %.4f) = %.4f", inflation, 1+inflation),
		fmt.Sprintf("%.4f / %.4f = %.6f", 1+nominal, 1+inflation, ratio),
		fmt.Sprintf("%.6f - 1 = %.6f", ratio, realReturn),
	}, nil
}

// Result bundles one full calculation: the real return, its assessment,
// plausibility warnings, and the purchasing-power projection.
type Result struct {
	Principal  float64
	Nominal    float64
	Inflation  float64
	RealReturn float64
	Assessment Level
	Warnings   []Warning
	Rows       []ProjectionRow
}

// Scenarios computes the full result for principal at the given rates over
// years, falling back to the default horizon when years is empty.
func Scenarios(principal, nominal, inflation float64, years []int, th Thresholds, bands Bands) (*Result, error) {
	if len(years) == 0 {
		years = constants.DefaultYears
	}

	realReturn, err := Real(nominal, inflation)
	if err != nil {
		return nil, err
	}
	rows, err := PurchasingPower(principal, nominal, inflation, years)
	if err != nil {
		return nil, err
	}

	return &Result{
		Principal:  principal,
		Nominal:    nominal,
		Inflation:  inflation,
		RealReturn: realReturn,
		Assessment: Assess(realReturn, th),
		Warnings:   ValidateInputs(nominal, inflation, bands),
		Rows:       rows,
	}, nil
}
