package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/aroha/internal/common"
	"github.com/dmitrijs2005/aroha/internal/dbx"
	"github.com/dmitrijs2005/aroha/internal/server/models"
	"github.com/dmitrijs2005/aroha/internal/server/repositories/diary"
	"github.com/dmitrijs2005/aroha/internal/server/repositories/records"
	refreshtokensrepo "github.com/dmitrijs2005/aroha/internal/server/repositories/refreshtokens"
	usersrepo "github.com/dmitrijs2005/aroha/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error

	delErr        error
	createErr     error
	expireErr     error
	expiredBefore time.Time
	created       []string
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, userID)
	return nil
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	return f.delErr
}

func (f *fakeRefreshRepo) DeleteExpired(ctx context.Context, userID string, now time.Time) error {
	f.expiredBefore = now
	return f.expireErr
}

// fakeRecordsRepo keeps records in memory keyed like the real unique index.
// ids are unique across the whole table, as with the primary key.
type fakeRecordsRepo struct {
	rows      map[string]models.Record
	ids       map[string]bool
	insertErr error
	listErr   error
}

func newFakeRecordsRepo() *fakeRecordsRepo {
	return &fakeRecordsRepo{rows: map[string]models.Record{}, ids: map[string]bool{}}
}

func (f *fakeRecordsRepo) Insert(ctx context.Context, rec *models.Record) (bool, error) {
	if f.insertErr != nil {
		return false, f.insertErr
	}
	k := rec.UserID + "|" + rec.CreatedAt.Format(time.RFC3339Nano)
	if _, ok := f.rows[k]; ok {
		return false, nil
	}
	if f.ids[rec.ID] {
		return false, fmt.Errorf("record %s: %w", rec.ID, common.ErrorAlreadyExists)
	}
	f.ids[rec.ID] = true
	rec.SyncedAt = rec.CreatedAt.Add(time.Second)
	f.rows[k] = *rec
	return true, nil
}

func (f *fakeRecordsRepo) ListByUser(ctx context.Context, userID string) ([]models.Record, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Record
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeDiaryRepo struct {
	rows map[string]models.DiaryEntry
	err  error
}

func newFakeDiaryRepo() *fakeDiaryRepo {
	return &fakeDiaryRepo{rows: map[string]models.DiaryEntry{}}
}

func (f *fakeDiaryRepo) Upsert(ctx context.Context, e *models.DiaryEntry) (*models.DiaryEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := *e
	out.ID = "d-" + e.EntryDate
	f.rows[e.UserID+"|"+e.EntryDate] = out
	return &out, nil
}

func (f *fakeDiaryRepo) ListByUser(ctx context.Context, userID string) ([]models.DiaryEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.DiaryEntry
	for _, e := range f.rows {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryDate > out[j].EntryDate })
	return out, nil
}

func (f *fakeDiaryRepo) Get(ctx context.Context, userID, date string) (*models.DiaryEntry, error) {
	e, ok := f.rows[userID+"|"+date]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &e, nil
}

func (f *fakeDiaryRepo) Delete(ctx context.Context, userID, date string) error {
	k := userID + "|" + date
	if _, ok := f.rows[k]; !ok {
		return common.ErrorNotFound
	}
	delete(f.rows, k)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	p *fakeRecordsRepo
	d *fakeDiaryRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error           { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository { return m.r }
func (m *fakeRepoManager) Records(db dbx.DBTX) records.Repository                 { return m.p }
func (m *fakeRepoManager) Diary(db dbx.DBTX) diary.Repository                     { return m.d }
