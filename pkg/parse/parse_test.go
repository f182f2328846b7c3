package parse

import (
	"errors"
	"math"
	"testing"
)

func TestRate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"Whole number percent", "8", 0.08},
		{"Percent sign", "8%", 0.08},
		{"Already fractional", "0.08", 0.08},
		{"Fractional percent sign", "0.5%", 0.005},
		{"Decimal percent", "12.5", 0.125},
		{"Decimal with sign", "12.5%", 0.125},
		{"Surrounding whitespace", "  8 % ", 0.08},
		{"Leading plus", "+8", 0.08},
		{"Negative percent", "-5", -0.05},
		{"Negative fractional", "-0.05", -0.05},
		{"Exactly one", "1", 0.01},
		{"Zero", "0", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Rate(tt.input)
			if err != nil {
				t.Fatalf("Rate(%q) returned error: %v", tt.input, err)
			}
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Rate(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRateInvalid(t *testing.T) {
	inputs := []string{"", "  ", "%", "%%", "abc", "8..5", "eight"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := Rate(input); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Rate(%q) expected ErrInvalidFormat, got %v", input, err)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"Plain number", "75000", 75000},
		{"Rupee symbol", "₹75000", 75000},
		{"Dollar symbol", "$10627.40", 10627.40},
		{"Comma grouping", "1,000", 1000},
		{"Indian comma grouping", "₹1,00,000", 100000},
		{"Lakh shorthand", "2.5L", 250000},
		{"Lakh lowercase", "2.5l", 250000},
		{"Lakh word", "1 lakh", 100000},
		{"Lakhs word", "2 lakhs", 200000},
		{"Crore word", "1 crore", 10000000},
		{"Crore shorthand", "1.5cr", 15000000},
		{"Crores word", "2 crores", 20000000},
		{"Thousand shorthand", "50K", 50000},
		{"Rs prefix", "Rs 500", 500},
		{"INR prefix", "INR 1200", 1200},
		{"Leading plus", "+75000", 75000},
		{"Negative amount", "-2.5L", -250000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Amount(tt.input)
			if err != nil {
				t.Fatalf("Amount(%q) returned error: %v", tt.input, err)
			}
			if math.Abs(result-tt.expected) > 1e-6 {
				t.Errorf("Amount(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestAmountInvalid(t *testing.T) {
	inputs := []string{"", "  ", "abc", "₹", "L", "lakh", "2.5 bananas", "1..5L"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := Amount(input); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Amount(%q) expected ErrInvalidFormat, got %v", input, err)
			}
		})
	}
}
