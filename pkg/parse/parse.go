// Package parse normalizes free-form rate and amount text into canonical
// numeric form. Rates accept percentage or fractional notation; amounts
// accept currency symbols, comma grouping, and Indian lakh/crore shorthand.
package parse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/real-return/pkg/constants"
)

// ErrInvalidFormat indicates rate or amount text that could not be parsed.
var ErrInvalidFormat = errors.New("invalid format")

// Rate parses percentage-style input into a fractional rate. A trailing "%"
// always means percent; otherwise values with magnitude >= 1 are treated as
// percentages ("8" -> 0.08) while smaller values are taken as already
// fractional ("0.08" -> 0.08).
func Rate(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	percent := false
	if strings.HasSuffix(trimmed, "%") {
		percent = true
		trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "%"))
	}
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty rate", ErrInvalidFormat)
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: rate %q is not numeric", ErrInvalidFormat, text)
	}

	if percent || math.Abs(value) >= 1 {
		value /= constants.PercentageMultiplier
	}
	return value, nil
}

// currencyPrefixes are stripped before parsing an amount; longest first so
// "Rs." wins over "Rs".
var currencyPrefixes = []string{"₹", "RS.", "RS", "INR", "$"}

// unitSuffixes scale the mantissa of an amount; longest first so "crores"
// wins over "cr" and "lakhs" over "l".
var unitSuffixes = []struct {
	name       string
	multiplier float64
}{
	{"CRORES", constants.Crore},
	{"CRORE", constants.Crore},
	{"CR", constants.Crore},
	{"LAKHS", constants.Lakh},
	{"LAKH", constants.Lakh},
	{"L", constants.Lakh},
	{"K", constants.Thousand},
}

// Amount parses currency text like "75000", "₹1,00,000", "2.5L" or
// "1 crore" into a plain numeric value in base currency units.
func Amount(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty amount", ErrInvalidFormat)
	}

	upper := strings.ToUpper(trimmed)
	for _, prefix := range currencyPrefixes {
		if strings.HasPrefix(upper, prefix) {
			upper = strings.TrimSpace(strings.TrimPrefix(upper, prefix))
			break
		}
	}
	upper = strings.ReplaceAll(upper, ",", "")

	multiplier := 1.0
	for _, unit := range unitSuffixes {
		if strings.HasSuffix(upper, unit.name) {
			multiplier = unit.multiplier
			upper = strings.TrimSpace(strings.TrimSuffix(upper, unit.name))
			break
		}
	}

	if upper == "" {
		return 0, fmt.Errorf("%w: amount %q has no numeric part", ErrInvalidFormat, text)
	}

	value, err := strconv.ParseFloat(upper, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q is not numeric", ErrInvalidFormat, text)
	}
	return value * multiplier, nil
}
