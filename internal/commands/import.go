package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/umsatz-dev/umsatz/internal/importer"
	"github.com/umsatz-dev/umsatz/internal/ledger"
)

func newImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a bank CSV export into the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			batch, err := importer.New(a.cfg.DefaultCurrency).Parse(f)
			if err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
			}

			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			added, duplicates, err := ledger.NewService(st, a.log).ImportBatch(batch)
			if err != nil {
				return err
			}

			cmd.Printf("imported %d transaction(s), skipped %d duplicate(s)\n", added, duplicates)
			return nil
		},
	}
}
