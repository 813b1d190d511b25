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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) InsertMany(ctx context.Context, tmpl models.LiftTemplate, serials []string) ([]int64, error) {
	query :=
		`INSERT INTO component_lifts (project_name, component_id, serial_number, install_date,
			axis_alpha_start, axis_alpha_end, axis_number_start, axis_number_end)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id
		 `

	ids := make([]int64, 0, len(serials))
	for _, serial := range serials {
		var id int64
		err := r.db.QueryRowContext(ctx, query,
			tmpl.Project.String(), tmpl.ComponentID, serial, tmpl.InstallDate.String(),
			tmpl.AxisAlphaStart, tmpl.AxisAlphaEnd, tmpl.AxisNumberStart, tmpl.AxisNumberEnd,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *PostgresRepository) FindOne(ctx context.Context, componentID, serialNumber string) (*models.LiftRecord, error) {
	query :=
		`SELECT ` + selectColumns + `
		 FROM component_lifts
		 WHERE component_id = $1 AND serial_number = $2
		 ORDER BY id
		 LIMIT 1
		 `

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, componentID, serialNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}
