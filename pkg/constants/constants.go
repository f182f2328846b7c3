// Package constants provides shared constants for the real-return application.
package constants

// Indian numbering units in base currency units.
const (
	Thousand = 1_000.0

	// Lakh is the Indian numbering unit equal to 100,000
	Lakh = 100_000.0

	// Crore is the Indian numbering unit equal to 10,000,000
	Crore = 10_000_000.0
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 paisa/cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Assessment tier thresholds, expressed as fractional real returns. Each
// threshold is a closed lower bound for its tier.
const (
	ExcellentThreshold = 0.05
	GoodThreshold      = 0.02
	ModestThreshold    = 0.0
)

// Plausibility band defaults for rate validation; rates outside the band
// produce warnings, not errors.
const (
	MinPlausibleRate = -0.5
	MaxPlausibleRate = 1.0
)

// DefaultAmount is the default investment principal (one lakh rupees).
const DefaultAmount = 100_000.0

// DefaultYears is the default purchasing-power projection horizon.
var DefaultYears = []int{1, 5, 10, 15, 20, 25, 30}

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Formatting defaults
const (
	// DefaultDecimalPlaces is the default precision for percentages and currency
	DefaultDecimalPlaces = 2

	// DefaultRupeeSymbol is the currency prefix for the Indian locale
	DefaultRupeeSymbol = "₹"

	// DefaultDollarSymbol is the currency prefix for the plain locale
	DefaultDollarSymbol = "$"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)

// Configuration file constants
const (
	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)
