// Package repomanager vends lift repositories bound to a DBTX and owns schema
// initialization for each supported database backend.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/lifts"
	"github.com/pressly/goose/v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type RepositoryManager interface {
	// RunMigrations brings the schema up to date. It is idempotent.
	RunMigrations(ctx context.Context, db *sql.DB) error
	Lifts(db dbx.DBTX) lifts.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Open connects to the named backend and returns the pool together with the
// matching RepositoryManager. The connection is verified with a ping.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, RepositoryManager, error) {
	var (
		db  *sql.DB
		m   RepositoryManager
		err error
	)

	switch driver {
	case DriverPostgres:
		db, err = openPostgres(ctx, dsn)
		m = NewPostgresRepositoryManager()
	case DriverSQLite:
		db, err = openSQLite(ctx, dsn)
		m = NewSQLiteRepositoryManager()
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, nil, err
	}

	return db, m, nil
}
