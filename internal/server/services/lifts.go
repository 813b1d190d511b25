// Package services contains server-side business logic. LiftService turns a
// creation form into persisted records and answers lookups.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/logging"
	"github.com/dmitrijs2005/liftlog/internal/serials"
	"github.com/dmitrijs2005/liftlog/internal/server/metrics"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/repomanager"
)

// CreateLiftRequest is the raw text of a creation submission.
type CreateLiftRequest struct {
	ProjectName     string
	ComponentID     string
	SerialSpec      string
	InstallDate     string
	AxisAlphaStart  string
	AxisAlphaEnd    string
	AxisNumberStart string
	AxisNumberEnd   string
}

// LiftService validates submissions, expands serial ranges and talks to the
// record store.
type LiftService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	metrics     *metrics.Recorder
	logger      logging.Logger
}

func NewLiftService(db *sql.DB, m repomanager.RepositoryManager, rec *metrics.Recorder, l logging.Logger) *LiftService {
	return &LiftService{
		db:          db,
		repomanager: m,
		metrics:     rec,
		logger:      l.With("module", "lift_service"),
	}
}

// Create stores one record per serial token in a single transaction and
// returns their ids. Either every record is written or none is.
//
// Returns an error matching common.ErrorParse for a malformed serial
// specification, common.ErrorValidation for other bad input and
// common.ErrorStorage when the database fails.
func (s *LiftService) Create(ctx context.Context, req CreateLiftRequest) ([]int64, error) {
	tmpl, serialList, err := s.prepare(req)
	if err != nil {
		s.metrics.ObserveCreate(metrics.ResultInvalid, 0)
		return nil, err
	}

	var ids []int64
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var txErr error
		ids, txErr = s.repomanager.Lifts(tx).InsertMany(ctx, tmpl, serialList)
		return txErr
	})
	if err != nil {
		s.metrics.ObserveCreate(metrics.ResultError, 0)
		s.logger.Error(ctx, "insert failed", "component_id", tmpl.ComponentID, "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrorStorage, err)
	}

	s.metrics.ObserveCreate(metrics.ResultOK, len(ids))
	s.logger.Info(ctx, "records created",
		"project", tmpl.Project.String(), "component_id", tmpl.ComponentID, "count", len(ids))

	return ids, nil
}

func (s *LiftService) prepare(req CreateLiftRequest) (models.LiftTemplate, []string, error) {
	project, err := models.ParseProject(req.ProjectName)
	if err != nil {
		return models.LiftTemplate{}, nil, err
	}

	date, err := models.ParseDate(req.InstallDate)
	if err != nil {
		return models.LiftTemplate{}, nil, err
	}

	if strings.TrimSpace(req.ComponentID) == "" {
		return models.LiftTemplate{}, nil, fmt.Errorf("%w: component id is required", common.ErrorValidation)
	}

	serialList, err := serials.ParseRanges(req.SerialSpec)
	if err != nil {
		return models.LiftTemplate{}, nil, err
	}
	if len(serialList) == 0 {
		return models.LiftTemplate{}, nil, fmt.Errorf("%w: serial number %q yields no serials", common.ErrorValidation, req.SerialSpec)
	}

	tmpl := models.LiftTemplate{
		Project:         project,
		ComponentID:     req.ComponentID,
		InstallDate:     date,
		AxisAlphaStart:  req.AxisAlphaStart,
		AxisAlphaEnd:    req.AxisAlphaEnd,
		AxisNumberStart: req.AxisNumberStart,
		AxisNumberEnd:   req.AxisNumberEnd,
	}
	return tmpl, serialList, nil
}

// Find returns the first record for the pair or common.ErrorNotFound.
func (s *LiftService) Find(ctx context.Context, componentID, serialNumber string) (*models.LiftRecord, error) {
	rec, err := s.repomanager.Lifts(s.db).FindOne(ctx, componentID, serialNumber)
	switch {
	case err == nil:
		s.metrics.ObserveLookup(metrics.ResultFound)
		return rec, nil
	case errors.Is(err, common.ErrorNotFound):
		s.metrics.ObserveLookup(metrics.ResultNotFound)
		return nil, err
	default:
		s.metrics.ObserveLookup(metrics.ResultError)
		s.logger.Error(ctx, "lookup failed", "component_id", componentID, "serial_number", serialNumber, "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrorStorage, err)
	}
}
