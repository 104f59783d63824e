package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/aroha/internal/client/models"
	"github.com/dmitrijs2005/aroha/internal/common"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubInputs(t *testing.T, username string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAuth struct {
	regUser string
	regPass []byte
	regErr  error

	onlineUser string
	onlineErr  error

	offlineUser string
	offlineErr  error

	logoutCalled bool
	logoutErr    error
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) error {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regErr
}
func (f *fakeAuth) OnlineLogin(_ context.Context, user string, _ []byte) (string, error) {
	f.onlineUser = user
	return "uid-" + user, f.onlineErr
}
func (f *fakeAuth) OfflineLogin(_ context.Context, user string, _ []byte) error {
	f.offlineUser = user
	return f.offlineErr
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuth) ClearOfflineData(context.Context) error { return nil }
func (f *fakeAuth) Close(context.Context) error            { return nil }
func (f *fakeAuth) Ping(context.Context) error             { return nil }

type fakeRecords struct {
	submitted   [][]int
	submitErr   error
	history     []models.Record
	export      []byte
	exportErr   error
	deleted     bool
	deleteErr   error
	syncEnabled bool
	syncCounts  models.MigrationCounts
	syncCalls   []bool
	offer       *models.MigrationOffer
	migrated    bool
	keptLocal   bool
	counts      models.MigrationCounts
}

func (f *fakeRecords) SubmitAssessment(_ context.Context, answers []int) (*models.Record, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = append(f.submitted, answers)
	return models.NewRecord(answers, models.LanguageEnglish, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
}
func (f *fakeRecords) GetHistory(context.Context) []models.Record { return f.history }
func (f *fakeRecords) ExportAllAsJSON(context.Context) ([]byte, error) {
	return f.export, f.exportErr
}
func (f *fakeRecords) DeleteAllData(context.Context) error {
	f.deleted = true
	return f.deleteErr
}
func (f *fakeRecords) SetCloudSyncEnabled(_ context.Context, enabled bool) (models.MigrationCounts, error) {
	f.syncCalls = append(f.syncCalls, enabled)
	f.syncEnabled = enabled
	return f.syncCounts, nil
}
func (f *fakeRecords) IsCloudSyncEnabled(context.Context) bool { return f.syncEnabled }
func (f *fakeRecords) PendingMigration() (models.MigrationOffer, bool) {
	if f.offer == nil {
		return models.MigrationOffer{}, false
	}
	return *f.offer, true
}
func (f *fakeRecords) MigrateNow(context.Context) (models.MigrationCounts, error) {
	f.migrated = true
	f.offer = nil
	return f.counts, nil
}
func (f *fakeRecords) KeepLocal(context.Context) error {
	f.keptLocal = true
	f.offer = nil
	return nil
}

type fakePrefs struct {
	lang       models.Language
	consent    *models.Consent
	backend    bool
	consentSet []bool
}

func (f *fakePrefs) Language(context.Context) models.Language {
	if f.lang == "" {
		return models.DefaultLanguage
	}
	return f.lang
}
func (f *fakePrefs) SetLanguage(_ context.Context, lang models.Language) error {
	f.lang = lang
	return nil
}
func (f *fakePrefs) Consent(context.Context) (*models.Consent, error) { return f.consent, nil }
func (f *fakePrefs) SetConsent(_ context.Context, agreed bool, now time.Time) error {
	f.consentSet = append(f.consentSet, agreed)
	f.consent = &models.Consent{HasConsented: agreed, ConsentDate: now}
	return nil
}
func (f *fakePrefs) BackendConfigured() bool { return f.backend }

type fakeDiary struct {
	entries map[string]models.DiaryEntry
	err     error
}

func (f *fakeDiary) Save(_ context.Context, date, title, content string) (*models.DiaryEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.entries == nil {
		f.entries = map[string]models.DiaryEntry{}
	}
	e := models.DiaryEntry{EntryDate: date, Title: title, Content: content}
	f.entries[date] = e
	return &e, nil
}
func (f *fakeDiary) List(context.Context) ([]models.DiaryEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.DiaryEntry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e)
	}
	return out, nil
}
func (f *fakeDiary) Get(_ context.Context, date string) (*models.DiaryEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.entries[date]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &e, nil
}
func (f *fakeDiary) Delete(_ context.Context, date string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.entries, date)
	return nil
}

type fakeExporter struct {
	key string
	err error
}

func (f *fakeExporter) Upload(context.Context) (string, error) { return f.key, f.err }

// newTestApp builds an App over fakes that reads from input and writes to
// the returned buffer.
func newTestApp(input string) (*App, *bytes.Buffer, *fakeRecords, *fakePrefs) {
	out := &bytes.Buffer{}
	rec := &fakeRecords{}
	prefs := &fakePrefs{backend: true}
	return &App{
		authService: &fakeAuth{},
		records:     rec,
		prefs:       prefs,
		diary:       &fakeDiary{},
		cloudExport: &fakeExporter{},
		reader:      rdr(input),
		out:         out,
	}, out, rec, prefs
}
