package cli

import (
	"fmt"

	"github.com/dmitrijs2005/liftlog/internal/grid"
	"github.com/spf13/cobra"
)

// NewLabelsCommand creates the labels command. It needs no database.
func NewLabelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "labels alpha|number",
		Short:     "Print the axis label vocabulary",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"alpha", "number"},
		RunE: func(cmd *cobra.Command, args []string) error {
			labels := grid.NumericAxisLabels()
			if args[0] == "alpha" {
				labels = grid.AlphabeticAxisLabels()
			}
			for _, l := range labels {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}
}
