package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/server/metrics"
	"github.com/dmitrijs2005/liftlog/internal/server/services"
	"github.com/spf13/cobra"
)

// NewFindCommand creates the find command.
func NewFindCommand(rootOpts *RootOptions) *cobra.Command {
	var componentID, serial string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Look up the first lift recorded for a component and serial",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, m, err := openStore(ctx, rootOpts)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := services.NewLiftService(db, m, metrics.NewRecorder(), commandLogger(cmd))
			rec, err := svc.Find(ctx, componentID, serial)
			out := cmd.OutOrStdout()
			switch {
			case errors.Is(err, common.ErrorNotFound):
				fmt.Fprintln(out, "not found")
				return nil
			case err != nil:
				return err
			}

			fmt.Fprintf(out, "project:   %s\n", rec.Project)
			fmt.Fprintf(out, "component: %s\n", rec.ComponentID)
			fmt.Fprintf(out, "serial:    %s\n", rec.SerialNumber)
			fmt.Fprintf(out, "date:      %s\n", rec.InstallDate)
			fmt.Fprintf(out, "position:  %s\n", rec.Position())
			return nil
		},
	}

	cmd.Flags().StringVar(&componentID, "component", "", "component id")
	cmd.Flags().StringVar(&serial, "serial", "", "serial number")
	_ = cmd.MarkFlagRequired("component")
	_ = cmd.MarkFlagRequired("serial")

	return cmd
}
