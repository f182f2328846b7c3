// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/iwvelando/real-return/pkg/constants"
	"github.com/iwvelando/real-return/pkg/format"
	"github.com/iwvelando/real-return/pkg/returns"
	"github.com/iwvelando/real-return/pkg/validation"
)

// Configuration holds all configuration for real-return.
type Configuration struct {
	Calculator CalculatorConfig `yaml:"calculator,omitempty"`
	Display    DisplayConfig    `yaml:"display,omitempty"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// CalculatorConfig holds the calculation defaults and thresholds.
type CalculatorConfig struct {
	DefaultAmount    float64          `yaml:"defaultAmount,omitempty"`
	Years            []int            `yaml:"years,omitempty"`
	Thresholds       ThresholdsConfig `yaml:"thresholds,omitempty"`
	PlausibleRateMin float64          `yaml:"plausibleRateMin,omitempty"`
	PlausibleRateMax float64          `yaml:"plausibleRateMax,omitempty"`
}

// ThresholdsConfig holds the closed lower bound of each assessment tier.
type ThresholdsConfig struct {
	Excellent float64 `yaml:"excellent,omitempty"`
	Good      float64 `yaml:"good,omitempty"`
	Modest    float64 `yaml:"modest,omitempty"`
}

// DisplayConfig holds currency rendering options.
type DisplayConfig struct {
	Locale     string `yaml:"locale,omitempty"` // plain, indian
	Symbol     string `yaml:"symbol,omitempty"`
	Abbreviate bool   `yaml:"abbreviate,omitempty"`
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

// Default returns the built-in configuration used when no file is provided.
func Default() *Configuration {
	return &Configuration{
		Calculator: CalculatorConfig{
			DefaultAmount: constants.DefaultAmount,
			Years:         append([]int(nil), constants.DefaultYears...),
			Thresholds: ThresholdsConfig{
				Excellent: constants.ExcellentThreshold,
				Good:      constants.GoodThreshold,
				Modest:    constants.ModestThreshold,
			},
			PlausibleRateMin: constants.MinPlausibleRate,
			PlausibleRateMax: constants.MaxPlausibleRate,
		},
		Display: DisplayConfig{
			Locale: string(format.LocaleIndian),
		},
		Output: OutputConfig{
			Format: constants.OutputFormatPretty,
		},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path returns the defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	configuration := Default()
	if configPath == "" {
		return configuration, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	if err := v.Unmarshal(configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Calculator.DefaultAmount < 0 {
		warnings = append(warnings, fmt.Sprintf("default amount %.2f is negative; projections will be meaningless",
			c.Calculator.DefaultAmount))
	}
	for _, y := range c.Calculator.Years {
		if y <= 0 {
			warnings = append(warnings, fmt.Sprintf("projection year %d is not a positive integer", y))
		}
	}

	th := c.Calculator.Thresholds
	if !(th.Excellent > th.Good && th.Good > th.Modest) {
		warnings = append(warnings, fmt.Sprintf(
			"assessment thresholds are not strictly descending (excellent %.4f, good %.4f, modest %.4f)",
			th.Excellent, th.Good, th.Modest))
	}
	if c.Calculator.PlausibleRateMin >= c.Calculator.PlausibleRateMax {
		warnings = append(warnings, fmt.Sprintf("plausible rate band [%.2f, %.2f] is empty",
			c.Calculator.PlausibleRateMin, c.Calculator.PlausibleRateMax))
	}

	if c.Display.Locale != "" {
		if err := validation.ValidateLocale(c.Display.Locale); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, err.Error())
		}
	}

	return warnings
}

// Thresholds converts the configured tiers for the returns package.
func (c *Configuration) Thresholds() returns.Thresholds {
	return returns.Thresholds{
		Excellent: c.Calculator.Thresholds.Excellent,
		Good:      c.Calculator.Thresholds.Good,
		Modest:    c.Calculator.Thresholds.Modest,
	}
}

// Bands converts the configured plausibility band for the returns package.
func (c *Configuration) Bands() returns.Bands {
	return returns.Bands{
		Min: c.Calculator.PlausibleRateMin,
		Max: c.Calculator.PlausibleRateMax,
	}
}

// FormatOptions converts the display settings for the format package.
func (c *Configuration) FormatOptions() format.Options {
	locale := format.Locale(c.Display.Locale)
	if locale != format.LocalePlain && locale != format.LocaleIndian {
		locale = format.LocaleIndian
	}
	return format.Options{
		Locale:     locale,
		Symbol:     c.Display.Symbol,
		Abbreviate: c.Display.Abbreviate,
	}
}

// Years returns the configured projection horizon, falling back to the
// default when unset.
func (c *Configuration) Years() []int {
	if len(c.Calculator.Years) == 0 {
		return append([]int(nil), constants.DefaultYears...)
	}
	return append([]int(nil), c.Calculator.Years...)
}
