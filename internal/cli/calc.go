package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/real-return/internal/config"
	"github.com/iwvelando/real-return/internal/reference"
	"github.com/iwvelando/real-return/pkg/constants"
	"github.com/iwvelando/real-return/pkg/format"
	"github.com/iwvelando/real-return/pkg/mathutil"
	"github.com/iwvelando/real-return/pkg/output"
	"github.com/iwvelando/real-return/pkg/parse"
	"github.com/iwvelando/real-return/pkg/returns"
	"github.com/iwvelando/real-return/pkg/validation"
)

func newCalcCmd(opts *rootOptions) *cobra.Command {
	var nominalFlag, inflationFlag, amountFlag string
	var yearsFlag []int

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute an inflation-adjusted return",
		Long: `Compute the real (inflation-adjusted) return and purchasing-power
projection for an investment. With --nominal and --inflation the result is
printed once; without them an interactive prompt loop starts.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, logger, err := opts.load()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			for _, warning := range conf.ValidateConfiguration() {
				logger.Warn("Configuration warning: "+warning,
					zap.String("op", "calc"),
				)
			}

			if nominalFlag == "" && inflationFlag == "" {
				return runInteractive(cmd, conf)
			}
			if nominalFlag == "" || inflationFlag == "" {
				return errors.New("both --nominal and --inflation are required outside interactive mode")
			}
			return runOnce(cmd, conf, nominalFlag, inflationFlag, amountFlag, yearsFlag)
		},
	}

	cmd.Flags().StringVar(&nominalFlag, "nominal", "", `nominal return rate (e.g. "8", "8%", "0.08")`)
	cmd.Flags().StringVar(&inflationFlag, "inflation", "", `inflation rate (e.g. "3", "3%", "0.03")`)
	cmd.Flags().StringVar(&amountFlag, "amount", "", `investment amount (e.g. "75000", "2.5L", "1 crore")`)
	cmd.Flags().IntSliceVar(&yearsFlag, "years", nil, "projection years (default 1,5,10,15,20,25,30)")

	return cmd
}

func runOnce(cmd *cobra.Command, conf *config.Configuration, nominalText, inflationText, amountText string, years []int) error {
	out := cmd.OutOrStdout()

	nominal, err := parse.Rate(nominalText)
	if err != nil {
		return fmt.Errorf("invalid nominal return: %w", err)
	}
	inflation, err := parse.Rate(inflationText)
	if err != nil {
		return fmt.Errorf("invalid inflation rate: %w", err)
	}

	amount := conf.Calculator.DefaultAmount
	if strings.TrimSpace(amountText) != "" {
		amount, err = parse.Amount(amountText)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
	}

	if len(years) == 0 {
		years = conf.Years()
	}
	for _, y := range years {
		if y <= 0 {
			return fmt.Errorf("invalid projection year %d", y)
		}
	}

	outputFormat := conf.Output.Format
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	result, err := returns.Scenarios(amount, nominal, inflation, years, conf.Thresholds(), conf.Bands())
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(out, "Warning: %s\n", warning.Message)
	}

	switch outputFormat {
	case constants.OutputFormatCSV:
		fmt.Fprint(out, output.CsvString(result))
	default:
		fmt.Fprint(out, output.PrettyString(result, conf.FormatOptions()))
	}

	return nil
}

func runInteractive(cmd *cobra.Command, conf *config.Configuration) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	printHeader(out)
	printHelp(out)

	for {
		fmt.Fprintln(out, "\n--- New calculation ---")

		nominal, ok := promptRate(in, out, conf, "Enter nominal return rate (e.g. '8' for 8%): ")
		if !ok {
			break
		}
		inflation, ok := promptRate(in, out, conf, "Enter inflation rate (e.g. '3' for 3%): ")
		if !ok {
			break
		}
		amount, ok := promptAmount(in, out, conf)
		if !ok {
			break
		}

		result, err := returns.Scenarios(amount, nominal, inflation, conf.Years(), conf.Thresholds(), conf.Bands())
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		for _, warning := range result.Warnings {
			fmt.Fprintf(out, "Warning: %s\n", warning.Message)
		}

		printSummary(out, conf, result)

		if promptYesNo(in, out, "\nShow detailed projection table? (y/n): ") {
			printProjection(out, conf, result)
		}

		if !promptYesNo(in, out, "\nCalculate another? (y/n): ") {
			break
		}
	}

	fmt.Fprintln(out, "\nThank you for using real-return.")
	return nil
}

func printHeader(out io.Writer) {
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintln(out, "    REAL vs. NOMINAL RETURN CALCULATOR")
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintln(out, "Formula: Real Return = ((1 + nominal) / (1 + inflation)) - 1")
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, `
How to use:
  - Enter returns as percentages (e.g. '8' for 8% or '8%') or decimals ('0.08')
  - Amounts accept Indian shorthand: '50000', '2.5L', '1 crore'
  - Type 'quit' or 'exit' to stop
  - Type 'help' for this message
  - Type 'example' for sample calculations`)
}

func printExamples(out io.Writer, conf *config.Configuration) {
	fmt.Fprintln(out, "\nExample calculations:")
	for _, ex := range reference.Examples() {
		nominal := ex.Nominal / constants.PercentageMultiplier
		inflation := ex.Inflation / constants.PercentageMultiplier
		realReturn, err := returns.Real(nominal, inflation)
		if err != nil {
			continue
		}
		nominalPct, _ := format.Percentage(nominal, 2)
		inflationPct, _ := format.Percentage(inflation, 2)
		realPct, _ := format.Percentage(realReturn, 2)
		fmt.Fprintf(out, "  - %s: nominal %s, inflation %s -> real %s\n",
			ex.Description, nominalPct, inflationPct, realPct)
	}
}

func promptRate(in *bufio.Scanner, out io.Writer, conf *config.Configuration, prompt string) (float64, bool) {
	for {
		fmt.Fprint(out, prompt)
		if !in.Scan() {
			return 0, false
		}
		text := strings.TrimSpace(in.Text())
		switch strings.ToLower(text) {
		case "quit", "exit", "q":
			return 0, false
		case "help":
			printHelp(out)
			continue
		case "example":
			printExamples(out, conf)
			continue
		case "":
			fmt.Fprintln(out, "Please enter a value.")
			continue
		}

		value, err := parse.Rate(text)
		if err != nil {
			fmt.Fprintf(out, "Invalid input: %v. Please try again.\n", err)
			continue
		}
		return value, true
	}
}

func promptAmount(in *bufio.Scanner, out io.Writer, conf *config.Configuration) (float64, bool) {
	opts := conf.FormatOptions()
	defaultAmount := conf.Calculator.DefaultAmount

	for {
		fmt.Fprintf(out, "Enter investment amount (e.g. '50000', '2L', '1.5 lakh') or press Enter for %s: ",
			format.Currency(defaultAmount, opts))
		if !in.Scan() {
			return 0, false
		}
		text := strings.TrimSpace(in.Text())
		switch strings.ToLower(text) {
		case "quit", "exit", "q":
			return 0, false
		case "":
			fmt.Fprintf(out, "Using default amount: %s\n", format.Currency(defaultAmount, opts))
			return defaultAmount, true
		}

		value, err := parse.Amount(text)
		if err != nil {
			fmt.Fprintf(out, "Invalid amount: %v. Please try again.\n", err)
			continue
		}
		fmt.Fprintf(out, "Using investment amount: %s\n", format.Currency(value, opts))
		return value, true
	}
}

func promptYesNo(in *bufio.Scanner, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	if !in.Scan() {
		return false
	}
	answer := strings.TrimSpace(strings.ToLower(in.Text()))
	return strings.HasPrefix(answer, "y")
}

func printSummary(out io.Writer, conf *config.Configuration, result *returns.Result) {
	nominalPct, _ := format.Percentage(result.Nominal, 4)
	inflationPct, _ := format.Percentage(result.Inflation, 4)
	realPct, _ := format.Percentage(result.RealReturn, 4)

	fmt.Fprintln(out, "\n=== Calculation results ===")
	fmt.Fprintf(out, "Nominal return: %s\n", nominalPct)
	fmt.Fprintf(out, "Inflation rate: %s\n", inflationPct)
	fmt.Fprintf(out, "Real return:    %s\n", realPct)

	if steps, err := returns.Steps(result.Nominal, result.Inflation); err == nil {
		fmt.Fprintln(out, "\nCalculation:")
		for _, step := range steps {
			fmt.Fprintf(out, "  %s\n", step)
		}
	}

	opts := conf.FormatOptions()
	oneYearNominal := mathutil.Compound(result.Principal, result.Nominal, 1)
	oneYearReal := mathutil.Compound(result.Principal, result.RealReturn, 1)
	fmt.Fprintf(out, "\nYour %s investment:\n", format.Currency(result.Principal, opts))
	fmt.Fprintf(out, "  After 1 year (nominal): %s\n", format.Currency(oneYearNominal, opts))
	fmt.Fprintf(out, "  After 1 year (real):    %s\n", format.Currency(oneYearReal, opts))
	fmt.Fprintf(out, "  Inflation cost:         %s\n", format.Currency(oneYearNominal-oneYearReal, opts))

	fmt.Fprintf(out, "\nAssessment: %s\n", result.Assessment.Message())
}

func printProjection(out io.Writer, conf *config.Configuration, result *returns.Result) {
	fmt.Fprintln(out)
	fmt.Fprint(out, output.PrettyString(result, conf.FormatOptions()))

	if len(result.Rows) > 0 {
		last := result.Rows[len(result.Rows)-1]
		fmt.Fprintf(out, "\nAfter %d years: nominal growth %.1f%%, real growth %.1f%%\n",
			last.Years,
			mathutil.GrowthPercent(last.NominalValue, result.Principal),
			mathutil.GrowthPercent(last.RealValue, result.Principal))
	}
}
