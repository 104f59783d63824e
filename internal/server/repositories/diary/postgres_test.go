package diary

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/aroha/internal/common"
	"github.com/dmitrijs2005/aroha/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

var (
	ts   = time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	cols = []string{"id", "user_id", "entry_date", "title", "content", "created_at", "updated_at"}
)

func TestUpsert(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+diary_entries.*ON\s+CONFLICT\s+\(user_id,\s*entry_date\)\s+DO\s+UPDATE`).
		WithArgs("u1", "2025-03-01", "t", "c").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("d1", ts, ts))

	got, err := repo.Upsert(context.Background(), &models.DiaryEntry{UserID: "u1", EntryDate: "2025-03-01", Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, "d1", got.ID)
	assert.Equal(t, ts, got.UpdatedAt)

	mock.ExpectQuery(`INSERT`).WillReturnError(errors.New("db down"))
	_, err = repo.Upsert(context.Background(), &models.DiaryEntry{UserID: "u1", EntryDate: "2025-03-01"})
	require.ErrorContains(t, err, "db error")
}

func TestListByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)FROM\s+diary_entries\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+entry_date\s+DESC`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("d2", "u1", "2025-03-02", "", "b", ts, ts).
			AddRow("d1", "u1", "2025-03-01", "t", "a", ts, ts))

	got, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-03-02", got[0].EntryDate)
	assert.Equal(t, "t", got[1].Title)
}

func TestGet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)FROM\s+diary_entries\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+entry_date\s*=\s*\$2::date`

	mock.ExpectQuery(q).WithArgs("u1", "2025-03-01").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("d1", "u1", "2025-03-01", "t", "a", ts, ts))
	got, err := repo.Get(context.Background(), "u1", "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Content)

	mock.ExpectQuery(q).WithArgs("u1", "2025-01-01").WillReturnError(sql.ErrNoRows)
	_, err = repo.Get(context.Background(), "u1", "2025-01-01")
	require.ErrorIs(t, err, common.ErrorNotFound)

	mock.ExpectQuery(q).WillReturnError(errors.New("db down"))
	_, err = repo.Get(context.Background(), "u1", "2025-01-01")
	require.ErrorContains(t, err, "db error")
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)DELETE\s+FROM\s+diary_entries\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+entry_date\s*=\s*\$2::date`

	mock.ExpectExec(q).WithArgs("u1", "2025-03-01").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "u1", "2025-03-01"))

	mock.ExpectExec(q).WithArgs("u1", "2025-03-02").WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.Delete(context.Background(), "u1", "2025-03-02"), common.ErrorNotFound)

	mock.ExpectExec(q).WillReturnError(errors.New("db down"))
	require.ErrorContains(t, repo.Delete(context.Background(), "u1", "2025-03-02"), "db error")
}
