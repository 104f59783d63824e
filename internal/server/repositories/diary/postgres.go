package diary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/aroha/internal/common"
	"github.com/dmitrijs2005/aroha/internal/dbx"
	"github.com/dmitrijs2005/aroha/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, e *models.DiaryEntry) (*models.DiaryEntry, error) {
	query := `
		INSERT INTO diary_entries (user_id, entry_date, title, content)
		VALUES ($1, $2::date, $3, $4)
		ON CONFLICT (user_id, entry_date)
		DO UPDATE SET title = EXCLUDED.title, content = EXCLUDED.content, updated_at = now()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, e.UserID, e.EntryDate, e.Title, e.Content).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

const selectColumns = `SELECT id, user_id, to_char(entry_date, 'YYYY-MM-DD'), title, content, created_at, updated_at
		FROM diary_entries`

func scanEntry(row interface{ Scan(...any) error }) (*models.DiaryEntry, error) {
	e := &models.DiaryEntry{}
	if err := row.Scan(&e.ID, &e.UserID, &e.EntryDate, &e.Title, &e.Content, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.DiaryEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+`
		WHERE user_id = $1
		ORDER BY entry_date DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.DiaryEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, date string) (*models.DiaryEntry, error) {
	e, err := scanEntry(r.db.QueryRowContext(ctx, selectColumns+`
		WHERE user_id = $1 AND entry_date = $2::date`, userID, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, date string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM diary_entries
		WHERE user_id = $1 AND entry_date = $2::date`, userID, date)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
