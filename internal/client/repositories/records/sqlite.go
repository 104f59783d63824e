package records

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/aroha/internal/client/models"
	"github.com/dmitrijs2005/aroha/internal/dbx"
	"github.com/dmitrijs2005/aroha/internal/scoring"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, rec *models.Record) error {
	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO records (id, answers, total, severity, locale, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, string(answers), rec.Total, string(rec.Severity), string(rec.Locale), rec.Key())
	if err != nil {
		return fmt.Errorf("failed to append record %s: %w", rec.ID, err)
	}
	return nil
}

// GetAll fails on the first row it cannot decode.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, answers, total, severity, locale, created_at
		FROM records
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	result := make([]models.Record, 0)
	for rows.Next() {
		var (
			rec                        models.Record
			answers, severity, created string
			locale                     string
		)
		if err := rows.Scan(&rec.ID, &answers, &rec.Total, &severity, &locale, &created); err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		if err := json.Unmarshal([]byte(answers), &rec.Answers); err != nil {
			return nil, fmt.Errorf("failed to decode answers of record %s: %w", rec.ID, err)
		}
		rec.CreatedAt, err = time.Parse(models.KeyLayout, created)
		if err != nil {
			return nil, fmt.Errorf("failed to decode created_at of record %s: %w", rec.ID, err)
		}
		rec.Severity = scoring.Severity(severity)
		rec.Locale = models.Language(locale)

		result = append(result, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate record rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	return nil
}
