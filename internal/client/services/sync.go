package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/aroha/internal/client/models"
	"github.com/dmitrijs2005/aroha/internal/logging"
)

// SyncService combines the local and remote stores. Only local write failures
// reach the caller; remote failures are logged and the local view is used.
type SyncService struct {
	local   *LocalStore
	remote  *RemoteStore
	prefs   *PreferenceService
	session *Session
	log     logging.Logger
	now     func() time.Time

	mu    sync.Mutex
	offer *models.MigrationOffer
}

// NewSyncService wires the coordinator and subscribes it to session so that
// a migration offer is evaluated on every sign-in.
func NewSyncService(local *LocalStore, remote *RemoteStore, prefs *PreferenceService, session *Session, log logging.Logger) *SyncService {
	s := &SyncService{
		local:   local,
		remote:  remote,
		prefs:   prefs,
		session: session,
		log:     log,
		now:     time.Now,
	}
	session.Subscribe(s.onSessionChange)
	return s
}

func (s *SyncService) IsCloudSyncEnabled(ctx context.Context) bool {
	return s.prefs.CloudSyncEnabled(ctx)
}

// SubmitAssessment scores answers and stores the resulting record locally.
// With cloud sync enabled the record is also sent to the backend; that
// upload may fail without affecting the result.
func (s *SyncService) SubmitAssessment(ctx context.Context, answers []int) (*models.Record, error) {
	rec, err := models.NewRecord(answers, s.prefs.Language(ctx), s.now())
	if err != nil {
		return nil, err
	}

	if err := s.local.Append(ctx, rec); err != nil {
		return nil, err
	}

	if s.IsCloudSyncEnabled(ctx) {
		if _, err := s.remote.Insert(ctx, *rec); err != nil {
			s.log.Warn(ctx, "record kept locally, upload failed", "key", rec.Key(), "error", err)
		}
	}
	return rec, nil
}

// GetMergedRecords returns local and remote records deduplicated by key,
// newest first. The remote copy wins a collision.
func (s *SyncService) GetMergedRecords(ctx context.Context) []models.Record {
	local := s.local.GetAll(ctx)
	if !s.IsCloudSyncEnabled(ctx) {
		models.SortNewestFirst(local)
		return local
	}

	remote, err := s.remote.GetAllForCurrentUser(ctx)
	if err != nil {
		s.log.Warn(ctx, "showing local records only", "error", err)
		models.SortNewestFirst(local)
		return local
	}

	byKey := make(map[string]models.Record, len(local)+len(remote))
	for _, r := range local {
		byKey[r.Key()] = r
	}
	for _, r := range remote {
		byKey[r.Key()] = r
	}

	merged := make([]models.Record, 0, len(byKey))
	for _, r := range byKey {
		merged = append(merged, r)
	}
	models.SortNewestFirst(merged)
	return merged
}

// GetHistory is what the history screen shows.
func (s *SyncService) GetHistory(ctx context.Context) []models.Record {
	return s.GetMergedRecords(ctx)
}

// SetCloudSyncEnabled persists the flag. Turning sync on uploads every local
// record the backend does not have yet and returns the counts; turning it off
// moves no data.
func (s *SyncService) SetCloudSyncEnabled(ctx context.Context, enabled bool) (models.MigrationCounts, error) {
	if err := s.prefs.SetCloudSyncFlag(ctx, enabled); err != nil {
		return models.MigrationCounts{}, err
	}
	if !enabled || !s.IsCloudSyncEnabled(ctx) {
		return models.MigrationCounts{}, nil
	}

	counts := s.remote.InsertMany(ctx, s.local.GetAll(ctx))
	s.log.Info(ctx, "cloud sync backfill finished", "counts", counts.String())
	return counts, nil
}

func (s *SyncService) onSessionChange(ctx context.Context, accountID string) {
	s.mu.Lock()
	s.offer = nil
	s.mu.Unlock()

	if accountID == "" {
		return
	}

	n := s.local.Count(ctx)
	if n == 0 {
		return
	}

	seen, err := s.prefs.MigrationSeen(ctx, accountID)
	if err != nil {
		s.log.Warn(ctx, "failed to read migration marker", "account", accountID, "error", err)
		return
	}
	if seen {
		return
	}

	s.mu.Lock()
	s.offer = &models.MigrationOffer{AccountID: accountID, LocalCount: n}
	s.mu.Unlock()
}

// PendingMigration returns the offer raised by the last sign-in, if it has
// not been answered yet.
func (s *SyncService) PendingMigration() (models.MigrationOffer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.offer == nil {
		return models.MigrationOffer{}, false
	}
	return *s.offer, true
}

func (s *SyncService) clearOffer() {
	s.mu.Lock()
	s.offer = nil
	s.mu.Unlock()
}

// MigrateNow uploads every local record to the signed-in account and marks
// the prompt as answered, whatever the per-record outcome. Local records are
// kept. Without a session every record counts as an error and nothing is
// marked.
func (s *SyncService) MigrateNow(ctx context.Context) (models.MigrationCounts, error) {
	local := s.local.GetAll(ctx)

	accountID, ok := s.session.AccountID()
	if !ok {
		return models.MigrationCounts{Errors: len(local)}, nil
	}

	counts := s.remote.InsertMany(ctx, local)
	s.log.Info(ctx, "migration finished", "account", accountID, "counts", counts.String())

	s.clearOffer()
	if err := s.prefs.MarkMigrationSeen(ctx, accountID); err != nil {
		return counts, err
	}
	return counts, nil
}

// KeepLocal declines the migration for the signed-in account.
func (s *SyncService) KeepLocal(ctx context.Context) error {
	s.clearOffer()
	accountID, ok := s.session.AccountID()
	if !ok {
		return nil
	}
	return s.prefs.MarkMigrationSeen(ctx, accountID)
}

// ExportAllAsJSON renders the merged records with language and consent as an
// indented JSON document.
func (s *SyncService) ExportAllAsJSON(ctx context.Context) ([]byte, error) {
	consent, err := s.prefs.Consent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read consent: %w", err)
	}

	doc := models.Export{
		Records:    s.GetMergedRecords(ctx),
		Language:   s.prefs.Language(ctx),
		Consent:    consent,
		ExportDate: s.now().UTC(),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// DeleteAllData removes local records, language and consent. Records on the
// backend are not touched.
func (s *SyncService) DeleteAllData(ctx context.Context) error {
	if err := s.local.Clear(ctx); err != nil {
		return err
	}
	return s.prefs.ClearUserData(ctx)
}
