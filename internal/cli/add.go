package cli

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/server/metrics"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
	"github.com/dmitrijs2005/liftlog/internal/server/services"
	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command. It goes through the same service
// path as the web form, so validation and serial expansion are identical.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	req := services.CreateLiftRequest{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record lifted components",
		Long: `Record one lift per serial number.

The serial list accepts single values and inclusive ranges separated by
commas, for example 152-155,172-175.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, m, err := openStore(ctx, rootOpts)
			if err != nil {
				return err
			}
			defer db.Close()

			if req.InstallDate == "" {
				req.InstallDate = models.NewDate(time.Now()).String()
			}

			svc := services.NewLiftService(db, m, metrics.NewRecorder(), commandLogger(cmd))
			ids, err := svc.Create(ctx, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %d records\n", len(ids))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.ProjectName, "project", string(models.ProjectAP7P1), "project name")
	f.StringVar(&req.ComponentID, "component", "", "component id")
	f.StringVar(&req.SerialSpec, "serials", "", "serial numbers, e.g. 152-155,172-175")
	f.StringVar(&req.InstallDate, "date", "", "install date YYYY-MM-DD (default today)")
	f.StringVar(&req.AxisAlphaStart, "alpha-start", "", "lettered axis start")
	f.StringVar(&req.AxisAlphaEnd, "alpha-end", "", "lettered axis end")
	f.StringVar(&req.AxisNumberStart, "number-start", "", "numbered axis start")
	f.StringVar(&req.AxisNumberEnd, "number-end", "", "numbered axis end")
	_ = cmd.MarkFlagRequired("component")
	_ = cmd.MarkFlagRequired("serials")

	return cmd
}
