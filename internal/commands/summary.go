package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/umsatz-dev/umsatz/internal/ledger"
)

func newSummaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			txns, err := ledger.NewService(st, a.log).Transactions()
			if err != nil {
				return err
			}
			sum := ledger.Summarize(txns)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tCOUNT\tTOTAL")
			for _, ct := range sum.Categories {
				fmt.Fprintf(w, "%s\t%d\t%s %s\n", ct.Category, ct.Count, ct.Total.StringFixed(2), a.cfg.DefaultCurrency)
			}
			w.Flush()

			cmd.Printf("\nincome:   %s %s\n", sum.Income.StringFixed(2), a.cfg.DefaultCurrency)
			cmd.Printf("expenses: %s %s\n", sum.Expenses.StringFixed(2), a.cfg.DefaultCurrency)
			cmd.Printf("balance:  %s %s\n", sum.Income.Add(sum.Expenses).StringFixed(2), a.cfg.DefaultCurrency)
			return nil
		},
	}
}
