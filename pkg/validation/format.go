// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/real-return/pkg/constants"
	"github.com/iwvelando/real-return/pkg/format"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(outputFormat string) error {
	if outputFormat != constants.OutputFormatPretty && outputFormat != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, outputFormat)
	}
	return nil
}

// ValidateLocale checks if the currency locale is one of the supported locales.
func ValidateLocale(locale string) error {
	if format.Locale(locale) != format.LocalePlain && format.Locale(locale) != format.LocaleIndian {
		return fmt.Errorf("expected locale of %s or %s, got %s",
			format.LocalePlain, format.LocaleIndian, locale)
	}
	return nil
}
