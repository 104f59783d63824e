package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/aroha/internal/common"
	"github.com/dmitrijs2005/aroha/internal/dbx"
	"github.com/dmitrijs2005/aroha/internal/server/models"
	"github.com/dmitrijs2005/aroha/internal/server/repositories/pgerr"
	"github.com/jackc/pgx/v5/pgtype"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func toInt32(answers []int) []int32 {
	out := make([]int32, len(answers))
	for i, a := range answers {
		out[i] = int32(a)
	}
	return out
}

func fromInt32(answers []int32) []int {
	out := make([]int, len(answers))
	for i, a := range answers {
		out[i] = int(a)
	}
	return out
}

func (r *PostgresRepository) Insert(ctx context.Context, rec *models.Record) (bool, error) {
	query := `
		INSERT INTO phq9_records (id, user_id, answers, total, severity, locale, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, created_at) DO NOTHING
		RETURNING synced_at
	`

	err := r.db.QueryRowContext(ctx, query,
		rec.ID, rec.UserID, toInt32(rec.Answers), rec.Total, rec.Severity, rec.Locale, rec.CreatedAt,
	).Scan(&rec.SyncedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		if pgerr.IsUniqueViolation(err) {
			return false, fmt.Errorf("record %s: %w", rec.ID, common.ErrorAlreadyExists)
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Record, error) {
	query := `
		SELECT id, user_id, answers, total, severity, locale, created_at, synced_at
		FROM phq9_records
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	// smallint[] scans into []int32; a Map is not safe for concurrent use
	types := pgtype.NewMap()
	result := make([]models.Record, 0)
	for rows.Next() {
		var (
			rec     models.Record
			answers []int32
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, types.SQLScanner(&answers), &rec.Total, &rec.Severity, &rec.Locale, &rec.CreatedAt, &rec.SyncedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		rec.Answers = fromInt32(answers)
		result = append(result, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
