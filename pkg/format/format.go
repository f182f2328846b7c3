// Package format renders rates and currency amounts for display. Two
// currency conventions are supported: plain Western thousands grouping and
// Indian lakh/crore grouping with optional abbreviation.
package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iwvelando/real-return/pkg/constants"
)

// ErrInvalidArgument indicates a malformed formatting request.
var ErrInvalidArgument = errors.New("invalid argument")

// Locale selects the digit-grouping convention for currency output.
type Locale string

const (
	LocalePlain  Locale = "plain"
	LocaleIndian Locale = "indian"
)

// Options configures currency rendering. A zero DecimalPlaces means the
// default of two.
type Options struct {
	Locale        Locale
	Symbol        string
	Abbreviate    bool
	DecimalPlaces int
}

// Percentage renders a fractional rate as a percentage string, e.g.
// 0.0485 with two places -> "4.85%".
func Percentage(rate float64, places int) (string, error) {
	if places < 0 {
		return "", fmt.Errorf("%w: negative decimal places %d", ErrInvalidArgument, places)
	}
	return fmt.Sprintf("%.*f%%", places, rate*constants.PercentageMultiplier), nil
}

var plainPrinter = message.NewPrinter(language.English)

// Currency renders an amount under the given options. Negative amounts keep
// a leading "-" ahead of the currency symbol.
func Currency(amount float64, opts Options) string {
	symbol := opts.Symbol
	if symbol == "" {
		if opts.Locale == LocaleIndian {
			symbol = constants.DefaultRupeeSymbol
		} else {
			symbol = constants.DefaultDollarSymbol
		}
	}
	places := opts.DecimalPlaces
	if places == 0 {
		places = constants.DefaultDecimalPlaces
	}

	sign := ""
	abs := amount
	if amount < 0 {
		sign = "-"
		abs = -amount
	}

	if opts.Locale == LocaleIndian {
		if opts.Abbreviate {
			switch {
			case abs >= constants.Crore:
				return fmt.Sprintf("%s%s%.2f Cr", sign, symbol, abs/constants.Crore)
			case abs >= constants.Lakh:
				return fmt.Sprintf("%s%s%.2f L", sign, symbol, abs/constants.Lakh)
			}
		}
		return sign + symbol + groupIndian(abs, places)
	}

	return sign + symbol + plainPrinter.Sprintf("%."+strconv.Itoa(places)+"f", abs)
}

// groupIndian formats a non-negative value with lakh/crore grouping: the
// last three integer digits, then groups of two ("1,00,000").
func groupIndian(value float64, places int) string {
	formatted := strconv.FormatFloat(value, 'f', places, 64)
	intPart := formatted
	decPart := ""
	if idx := strings.IndexByte(formatted, '.'); idx >= 0 {
		intPart = formatted[:idx]
		decPart = formatted[idx:]
	}

	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		var builder strings.Builder
		for i := 0; i < len(head); i++ {
			if i > 0 && (len(head)-i)%2 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteByte(head[i])
		}
		builder.WriteByte(',')
		builder.WriteString(intPart[len(intPart)-3:])
		intPart = builder.String()
	}

	return intPart + decPart
}
