package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/aroha/internal/common"
	"github.com/dmitrijs2005/aroha/internal/scoring"
	"github.com/dmitrijs2005/aroha/internal/server/models"
	"github.com/dmitrijs2005/aroha/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// RecordService stores PHQ-9 results pushed by clients.
type RecordService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewRecordService(db *sql.DB, m repomanager.RepositoryManager) *RecordService {
	return &RecordService{db: db, repomanager: m}
}

// Insert stores rec for userID under a fresh server-side id. It reports
// false, without error, when the account already holds a record created at
// the same millisecond.
func (s *RecordService) Insert(ctx context.Context, userID string, rec *models.Record) (bool, error) {
	if err := validateRecord(rec); err != nil {
		return false, err
	}

	rec.UserID = userID
	rec.CreatedAt = rec.CreatedAt.UTC().Truncate(time.Millisecond)
	// ids sent by clients are only unique per device
	rec.ID = uuid.NewString()
	if rec.Locale == "" {
		rec.Locale = "en"
	}

	inserted, err := s.repomanager.Records(s.db).Insert(ctx, rec)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("error inserting record: %w", err)
	}
	return inserted, nil
}

// List returns the account's records, newest first.
func (s *RecordService) List(ctx context.Context, userID string) ([]models.Record, error) {
	recs, err := s.repomanager.Records(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing records: %w", err)
	}
	return recs, nil
}

// validateRecord recomputes the score so a client cannot store a total or
// severity that disagrees with its answers.
func validateRecord(rec *models.Record) error {
	if rec == nil {
		return fmt.Errorf("record is missing: %w", common.ErrInvalidInput)
	}
	res, err := scoring.Score(rec.Answers)
	if err != nil {
		return err
	}
	if res.Total != rec.Total {
		return fmt.Errorf("total %d does not match answers (%d): %w", rec.Total, res.Total, common.ErrInvalidInput)
	}
	if string(res.Severity) != rec.Severity {
		return fmt.Errorf("severity %q does not match total %d: %w", rec.Severity, res.Total, common.ErrInvalidInput)
	}
	if rec.CreatedAt.IsZero() {
		return fmt.Errorf("created_at is missing: %w", common.ErrInvalidInput)
	}
	return nil
}
