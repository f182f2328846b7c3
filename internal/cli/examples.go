package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iwvelando/real-return/internal/reference"
)

func newExamplesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Show worked examples and the reference catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, logger, err := opts.load()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			out := cmd.OutOrStdout()
			printExamples(out, conf)

			fmt.Fprintln(out, "\nInvestment types (typical annual returns):")
			for _, it := range reference.InvestmentTypes() {
				fmt.Fprintf(out, "  %-35s %5.1f%%  %-9s %s\n",
					it.Name, it.TypicalReturn, it.RiskLevel, it.Description)
			}

			fmt.Fprintln(out, "\nCountries (typical inflation):")
			for _, c := range reference.Countries() {
				fmt.Fprintf(out, "  %s  %-16s %4.1f%%  (%s)\n",
					c.Code, c.Name, c.TypicalInflation, c.CurrencySymbol)
			}

			return nil
		},
	}
	return cmd
}
