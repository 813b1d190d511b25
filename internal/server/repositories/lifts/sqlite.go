package lifts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// InsertMany inserts one row per serial and collects LastInsertId for each.
func (r *SQLiteRepository) InsertMany(ctx context.Context, tmpl models.LiftTemplate, serials []string) ([]int64, error) {
	query := `INSERT INTO component_lifts (project_name, component_id, serial_number, install_date,
			axis_alpha_start, axis_alpha_end, axis_number_start, axis_number_end)
		values (?, ?, ?, ?, ?, ?, ?, ?)`

	ids := make([]int64, 0, len(serials))
	for _, serial := range serials {
		res, err := r.db.ExecContext(ctx, query,
			tmpl.Project.String(), tmpl.ComponentID, serial, tmpl.InstallDate.String(),
			tmpl.AxisAlphaStart, tmpl.AxisAlphaEnd, tmpl.AxisNumberStart, tmpl.AxisNumberEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to insert lift record: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get last insert id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// FindOne returns the earliest inserted record for the pair.
func (r *SQLiteRepository) FindOne(ctx context.Context, componentID, serialNumber string) (*models.LiftRecord, error) {
	query := `select ` + selectColumns + ` from component_lifts
		where component_id=? and serial_number=? order by id limit 1`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, componentID, serialNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return rec, nil
}
