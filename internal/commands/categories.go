package commands

import (
	"github.com/spf13/cobra"

	"github.com/umsatz-dev/umsatz/internal/category"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories the classifier can assign",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, c := range category.All() {
				cmd.Println(c)
			}
		},
	}
}
