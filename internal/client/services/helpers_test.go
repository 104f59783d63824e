package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/aroha/internal/client/client"
	"github.com/dmitrijs2005/aroha/internal/client/models"
	"github.com/dmitrijs2005/aroha/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/aroha/internal/client/repositories/records"
	"github.com/dmitrijs2005/aroha/internal/logging"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, client.RunMigrations(context.Background(), db))
	return db
}

func insertMeta(t *testing.T, db *sql.DB, k string, v []byte) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO metadata(key,value) VALUES(?,?)`, k, v)
	require.NoError(t, err)
}

func getMeta(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	require.NoError(t, err)
	return v
}

func hasMeta(t *testing.T, db *sql.DB, k string) bool {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM metadata WHERE key=?`, k).Scan(&n))
	return n > 0
}

var baseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func mkRecord(t *testing.T, answers []int, at time.Time) models.Record {
	t.Helper()
	r, err := models.NewRecord(answers, models.LanguageEnglish, at)
	require.NoError(t, err)
	return *r
}

func ones() []int { return []int{1, 1, 1, 1, 1, 1, 1, 1, 1} }

func zeros() []int { return make([]int, 9) }

// ---- fake client ----

// fakeClient implements client.Client. Records inserted through it are kept
// in memory keyed like the backend does (by creation time).
type fakeClient struct {
	CloseErr    error
	RegisterErr error

	GetSaltRet []byte
	GetSaltErr error

	LoginUserID string
	LoginErr    error

	PingErr error

	remote     []models.Record
	InsertErr  error
	InsertErrs map[string]error // per record key
	ListErr    error

	diary     map[string]models.DiaryEntry
	DiaryErr  error
	ExportKey string
	ExportURL string
	ExportErr error

	// for argument checks
	LastRegisterUser string
	LastRegisterSalt []byte
	LastRegisterKey  []byte

	LastGetSaltUser string

	LastLoginUser string
	LastLoginKey  []byte

	InsertCalls int
	LoggedOut   bool
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Register(ctx context.Context, username string, salt []byte, key []byte) error {
	f.LastRegisterUser = username
	f.LastRegisterSalt = append([]byte(nil), salt...)
	f.LastRegisterKey = append([]byte(nil), key...)
	return f.RegisterErr
}

func (f *fakeClient) GetSalt(ctx context.Context, username string) ([]byte, error) {
	f.LastGetSaltUser = username
	return append([]byte(nil), f.GetSaltRet...), f.GetSaltErr
}

func (f *fakeClient) Login(ctx context.Context, username string, key []byte) (string, error) {
	f.LastLoginUser = username
	f.LastLoginKey = append([]byte(nil), key...)
	return f.LoginUserID, f.LoginErr
}

func (f *fakeClient) Logout() { f.LoggedOut = true }

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) InsertRecord(ctx context.Context, r models.Record) (bool, error) {
	f.InsertCalls++
	if f.InsertErr != nil {
		return false, f.InsertErr
	}
	if err := f.InsertErrs[r.Key()]; err != nil {
		return false, err
	}
	for _, e := range f.remote {
		if e.Key() == r.Key() {
			return false, nil
		}
	}
	f.remote = append(f.remote, r)
	return true, nil
}

func (f *fakeClient) ListRecords(ctx context.Context) ([]models.Record, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := append([]models.Record(nil), f.remote...)
	models.SortNewestFirst(out)
	return out, nil
}

func (f *fakeClient) SaveDiaryEntry(ctx context.Context, e models.DiaryEntry) (*models.DiaryEntry, error) {
	if f.DiaryErr != nil {
		return nil, f.DiaryErr
	}
	if f.diary == nil {
		f.diary = map[string]models.DiaryEntry{}
	}
	if e.ID == "" {
		e.ID = "diary-" + e.EntryDate
	}
	f.diary[e.EntryDate] = e
	return &e, nil
}

func (f *fakeClient) ListDiaryEntries(ctx context.Context) ([]models.DiaryEntry, error) {
	if f.DiaryErr != nil {
		return nil, f.DiaryErr
	}
	out := make([]models.DiaryEntry, 0, len(f.diary))
	for _, e := range f.diary {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeClient) GetDiaryEntry(ctx context.Context, date string) (*models.DiaryEntry, error) {
	if f.DiaryErr != nil {
		return nil, f.DiaryErr
	}
	e, ok := f.diary[date]
	if !ok {
		return nil, client.ErrNotFound
	}
	return &e, nil
}

func (f *fakeClient) DeleteDiaryEntry(ctx context.Context, date string) error {
	if f.DiaryErr != nil {
		return f.DiaryErr
	}
	if _, ok := f.diary[date]; !ok {
		return client.ErrNotFound
	}
	delete(f.diary, date)
	return nil
}

func (f *fakeClient) GetExportUploadURL(ctx context.Context) (string, string, error) {
	return f.ExportKey, f.ExportURL, f.ExportErr
}

// ---- wiring ----

type fixture struct {
	db      *sql.DB
	client  *fakeClient
	session *Session
	prefs   *PreferenceService
	local   *LocalStore
	remote  *RemoteStore
	sync    *SyncService
}

func newFixture(t *testing.T, backendConfigured bool) *fixture {
	t.Helper()
	db := setupDB(t)
	fc := &fakeClient{}
	log := logging.NewNop()
	session := NewSession()

	f := &fixture{
		db:      db,
		client:  fc,
		session: session,
		prefs:   NewPreferenceService(metadata.NewSQLiteRepository(db), backendConfigured, log),
		local:   NewLocalStore(records.NewSQLiteRepository(db), log),
		remote:  NewRemoteStore(fc, session, log),
	}
	f.sync = NewSyncService(f.local, f.remote, f.prefs, session, log)
	f.sync.now = func() time.Time { return baseTime }
	return f
}
