package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/umsatz-dev/umsatz/internal/ledger"
	"github.com/umsatz-dev/umsatz/internal/normalize"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored transactions, newest first",
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

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "DATE\tAMOUNT\tCATEGORY\tDESCRIPTION")
			for _, t := range txns {
				date := t.BookingDate
				if !normalize.IsISODate(date) {
					date += " (?)"
				}
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n",
					date, t.Amount.StringFixed(2), t.Currency, t.Category, t.Description)
			}
			return nil
		},
	}
}
