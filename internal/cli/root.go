// Package cli implements liftctl, the administrative command line for the
// lift record store.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dmitrijs2005/liftlog/internal/logging"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/repomanager"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Driver string
	DSN    string
}

// NewRootCommand creates the root command for liftctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "liftctl",
		Short: "Administer the component lift record store",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Driver != repomanager.DriverSQLite && opts.Driver != repomanager.DriverPostgres {
				return fmt.Errorf("invalid driver %q: must be %q or %q", opts.Driver, repomanager.DriverSQLite, repomanager.DriverPostgres)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", repomanager.DriverSQLite, "database driver (sqlite|postgres)")
	cmd.PersistentFlags().StringVar(&opts.DSN, "dsn", "components.db", "database file or connection string")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewFindCommand(opts))
	cmd.AddCommand(NewLabelsCommand())

	return cmd
}

// openStore connects and brings the schema up to date.
func openStore(ctx context.Context, opts *RootOptions) (*sql.DB, repomanager.RepositoryManager, error) {
	db, m, err := repomanager.Open(ctx, opts.Driver, opts.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrations error: %w", err)
	}
	return db, m, nil
}

func commandLogger(cmd *cobra.Command) logging.Logger {
	return logging.NewJSONLogger(cmd.ErrOrStderr(), slog.LevelWarn)
}
