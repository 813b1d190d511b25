// Package lifts persists component-lift records.
//
// Two implementations share the Repository interface: PostgresRepository for
// the server deployment and SQLiteRepository for the embedded one. Both work
// over a dbx.DBTX, so callers choose between a pool and a transaction.
//
// Records are append-only. (component_id, serial_number) is not unique; FindOne
// returns the match with the lowest id.
package lifts

import (
	"context"

	"github.com/dmitrijs2005/liftlog/internal/server/models"
)

type Repository interface {
	// InsertMany stores one record per serial, all sharing tmpl, and returns
	// the assigned ids in serial order.
	InsertMany(ctx context.Context, tmpl models.LiftTemplate, serials []string) ([]int64, error)

	// FindOne returns the first record matching both fields exactly, or
	// common.ErrorNotFound.
	FindOne(ctx context.Context, componentID, serialNumber string) (*models.LiftRecord, error)
}

const selectColumns = `id, project_name, component_id, serial_number, install_date,
		axis_alpha_start, axis_alpha_end, axis_number_start, axis_number_end`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.LiftRecord, error) {
	r := &models.LiftRecord{}
	var project string
	err := row.Scan(&r.ID, &project, &r.ComponentID, &r.SerialNumber, &r.InstallDate,
		&r.AxisAlphaStart, &r.AxisAlphaEnd, &r.AxisNumberStart, &r.AxisNumberEnd)
	if err != nil {
		return nil, err
	}
	r.Project = models.Project(project)
	return r, nil
}
