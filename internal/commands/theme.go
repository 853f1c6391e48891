package commands

import (
	"github.com/spf13/cobra"

	"github.com/umsatz-dev/umsatz/internal/ledger"
)

func newThemeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [value]",
		Short: "Show or set the display theme preference",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			svc := ledger.NewService(st, a.log)
			if len(args) == 1 {
				return svc.SetTheme(args[0])
			}

			theme, err := svc.Theme()
			if err != nil {
				return err
			}
			if theme == "" {
				theme = "default"
			}
			cmd.Println(theme)
			return nil
		},
	}
}
