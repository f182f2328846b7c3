package returns

import (
	"errors"
	"math"
	"testing"

	"github.com/iwvelando/real-return/pkg/mathutil"
)

const tolerance = 1e-9

func TestReal(t *testing.T) {
	tests := []struct {
		name      string
		nominal   float64
		inflation float64
		expected  float64
	}{
		{"Stock market vs normal inflation", 0.08, 0.03, 0.0485436893203883},
		{"Bonds vs low inflation", 0.05, 0.02, 0.0294117647058824},
		{"High growth vs high inflation", 0.12, 0.06, 0.0566037735849057},
		{"Low return vs higher inflation", 0.03, 0.04, -0.0096153846153846},
		{"Identity case", 0.0, 0.0, 0.0},
		{"No inflation", 0.10, 0.0, 0.10},
		{"Negative nominal", -0.05, 0.03, -0.0776699029126214},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Real(tt.nominal, tt.inflation)
			if err != nil {
				t.Fatalf("Real(%v, %v) returned error: %v", tt.nominal, tt.inflation, err)
			}
			if math.Abs(result-tt.expected) > tolerance {
				t.Errorf("Real(%v, %v) = %v, expected %v", tt.nominal, tt.inflation, result, tt.expected)
			}
			formula := ((1+tt.nominal)/(1+tt.inflation)) - 1
			if math.Abs(result-formula) > tolerance {
				t.Errorf("Real(%v, %v) deviates from the closed-form formula", tt.nominal, tt.inflation)
			}
		})
	}
}

func TestRealDivisionUndefined(t *testing.T) {
	for _, nominal := range []float64{0.0, 0.08, -0.5, 10.0} {
		if _, err := Real(nominal, -1.0); !errors.Is(err, ErrDivisionUndefined) {
			t.Errorf("Real(%v, -1) expected ErrDivisionUndefined, got %v", nominal, err)
		}
	}
}

func TestRealMonotonicity(t *testing.T) {
	// Increasing in nominal with inflation fixed.
	prev := math.Inf(-1)
	for _, nominal := range []float64{-0.5, -0.1, 0.0, 0.05, 0.1, 0.5, 1.0} {
		result, err := Real(nominal, 0.03)
		if err != nil {
			t.Fatalf("Real(%v, 0.03) returned error: %v", nominal, err)
		}
		if result <= prev {
			t.Errorf("Real not increasing in nominal at %v: %v <= %v", nominal, result, prev)
		}
		prev = result
	}

	// Decreasing in inflation with nominal fixed.
	prev = math.Inf(1)
	for _, inflation := range []float64{-0.5, -0.1, 0.0, 0.05, 0.1, 0.5, 1.0} {
		result, err := Real(0.08, inflation)
		if err != nil {
			t.Fatalf("Real(0.08, %v) returned error: %v", inflation, err)
		}
		if result >= prev {
			t.Errorf("Real not decreasing in inflation at %v: %v >= %v", inflation, result, prev)
		}
		prev = result
	}
}

func TestPurchasingPower(t *testing.T) {
	years := []int{1, 5, 10, 20, 30}
	rows, err := PurchasingPower(10000, 0.08, 0.03, years)
	if err != nil {
		t.Fatalf("PurchasingPower returned error: %v", err)
	}
	if len(rows) != len(years) {
		t.Fatalf("expected %d rows, got %d", len(years), len(rows))
	}

	for i, row := range rows {
		if row.Years != years[i] {
			t.Errorf("row %d: expected year %d, got %d", i, years[i], row.Years)
		}
		if row.InflationCost != row.NominalValue-row.RealValue {
			t.Errorf("row %d: inflation cost %v != nominal - real %v",
				i, row.InflationCost, row.NominalValue-row.RealValue)
		}
	}

	if !mathutil.WithinTolerance(rows[0].NominalValue, 10800.00, 0.01) {
		t.Errorf("year 1 nominal value = %v, expected 10800.00", rows[0].NominalValue)
	}
	if !mathutil.WithinTolerance(rows[0].RealValue, 10485.44, 0.01) {
		t.Errorf("year 1 real value = %v, expected 10485.44", rows[0].RealValue)
	}
}

func TestPurchasingPowerOrderPreserved(t *testing.T) {
	years := []int{30, 1, 10}
	rows, err := PurchasingPower(10000, 0.08, 0.03, years)
	if err != nil {
		t.Fatalf("PurchasingPower returned error: %v", err)
	}
	for i, y := range years {
		if rows[i].Years != y {
			t.Errorf("row %d: expected year %d, got %d", i, y, rows[i].Years)
		}
	}
}

func TestPurchasingPowerDeterministic(t *testing.T) {
	years := []int{1, 5, 10}
	first, err := PurchasingPower(100000, 0.07, 0.045, years)
	if err != nil {
		t.Fatalf("PurchasingPower returned error: %v", err)
	}
	second, err := PurchasingPower(100000, 0.07, 0.045, years)
	if err != nil {
		t.Fatalf("PurchasingPower returned error: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("row %d differs between identical invocations: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestPurchasingPowerZeroPrincipal(t *testing.T) {
	rows, err := PurchasingPower(0, 0.08, 0.03, []int{1, 10})
	if err != nil {
		t.Fatalf("PurchasingPower returned error: %v", err)
	}
	for _, row := range rows {
		if row.NominalValue != 0 || row.RealValue != 0 || row.InflationCost != 0 {
			t.Errorf("expected all-zero row for zero principal, got %+v", row)
		}
	}
}

func TestAssess(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		name     string
		input    float64
		expected Level
	}{
		{"Well above excellent", 0.06, LevelExcellent},
		{"Excellent boundary", 0.05, LevelExcellent},
		{"Good range", 0.03, LevelGood},
		{"Good boundary", 0.02, LevelGood},
		{"Modest range", 0.01, LevelModest},
		{"Modest boundary", 0.0, LevelModest},
		{"Negative", -0.02, LevelPoor},
		{"Deeply negative", -0.5, LevelPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Assess(tt.input, th); result != tt.expected {
				t.Errorf("Assess(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestAssessCustomThresholds(t *testing.T) {
	th := Thresholds{Excellent: 0.10, Good: 0.05, Modest: 0.01}
	if result := Assess(0.06, th); result != LevelGood {
		t.Errorf("Assess(0.06) with custom thresholds = %v, expected %v", result, LevelGood)
	}
	if result := Assess(0.005, th); result != LevelPoor {
		t.Errorf("Assess(0.005) with custom thresholds = %v, expected %v", result, LevelPoor)
	}
}

func TestLevelMessage(t *testing.T) {
	for _, level := range []Level{LevelExcellent, LevelGood, LevelModest, LevelPoor} {
		if level.Message() == "" {
			t.Errorf("Level %q has no message", level)
		}
	}
}

func TestValidateInputs(t *testing.T) {
	bands := DefaultBands()
	tests := []struct {
		name      string
		nominal   float64
		inflation float64
		warnings  int
	}{
		{"Both plausible", 0.08, 0.03, 0},
		{"Nominal too high", 1.5, 0.03, 1},
		{"Nominal too low", -0.6, 0.03, 1},
		{"Inflation too high", 0.08, 1.2, 1},
		{"Both implausible", 2.0, -0.7, 2},
		{"Band boundaries are plausible", 1.0, -0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateInputs(tt.nominal, tt.inflation, bands)
			if len(warnings) != tt.warnings {
				t.Errorf("ValidateInputs(%v, %v) produced %d warnings, expected %d",
					tt.nominal, tt.inflation, len(warnings), tt.warnings)
			}
		})
	}
}

func TestSteps(t *testing.T) {
	steps, err := Steps(0.08, 0.03)
	if err != nil {
		t.Fatalf("Steps returned error: %v", err)
	}
	if len(steps) != 4 {
		t.Fatalf("expected 4 calculation steps, got %d", len(steps))
	}
	if steps[0] != "(1 + 0.0800) = 1.0800" {
		t.Errorf("unexpected first step: %q", steps[0])
	}

	if _, err := Steps(0.08, -1.0); !errors.Is(err, ErrDivisionUndefined) {
		t.Errorf("Steps with -100%% inflation expected ErrDivisionUndefined, got %v", err)
	}
}

func TestScenarios(t *testing.T) {
	result, err := Scenarios(10000, 0.08, 0.03, nil, DefaultThresholds(), DefaultBands())
	if err != nil {
		t.Fatalf("Scenarios returned error: %v", err)
	}

	if len(result.Rows) != 7 {
		t.Errorf("expected default 7-year horizon, got %d rows", len(result.Rows))
	}
	if !mathutil.WithinTolerance(result.RealReturn, 0.04854, 0.00001) {
		t.Errorf("real return = %v, expected ~0.04854", result.RealReturn)
	}
	if result.Assessment != LevelGood {
		t.Errorf("assessment = %v, expected %v", result.Assessment, LevelGood)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", result.Warnings)
	}

	if _, err := Scenarios(10000, 0.08, -1.0, nil, DefaultThresholds(), DefaultBands()); !errors.Is(err, ErrDivisionUndefined) {
		t.Errorf("Scenarios with -100%% inflation expected ErrDivisionUndefined, got %v", err)
	}
}
