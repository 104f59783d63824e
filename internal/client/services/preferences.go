package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/aroha/internal/client/models"
	"github.com/dmitrijs2005/aroha/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/aroha/internal/common"
	"github.com/dmitrijs2005/aroha/internal/logging"
)

// metadata keys
const (
	keyLanguage         = "language"
	keyConsent          = "consent"
	keyCloudSync        = "cloud_sync_enabled"
	keyUsername         = "username"
	keySalt             = "salt"
	keyVerifier         = "verifier"
	keyUserID           = "user_id"
	migrationMarkerBase = "migration_prompt_seen:"
)

func migrationMarkerKey(accountID string) string {
	return migrationMarkerBase + accountID
}

// PreferenceService reads and writes the small on-device settings: language,
// consent, the cloud sync flag and per-account migration markers.
type PreferenceService struct {
	repo              metadata.Repository
	backendConfigured bool
	log               logging.Logger
}

// NewPreferenceService binds to repo. backendConfigured reports whether a
// server endpoint is set; cloud sync is never effective without one.
func NewPreferenceService(repo metadata.Repository, backendConfigured bool, log logging.Logger) *PreferenceService {
	return &PreferenceService{repo: repo, backendConfigured: backendConfigured, log: log}
}

func (p *PreferenceService) BackendConfigured() bool {
	return p.backendConfigured
}

// Language returns the stored language, or DefaultLanguage when unset or
// unreadable.
func (p *PreferenceService) Language(ctx context.Context) models.Language {
	v, err := p.repo.Get(ctx, keyLanguage)
	if err != nil {
		p.log.Warn(ctx, "failed to read language", "error", err)
		return models.DefaultLanguage
	}
	if len(v) == 0 {
		return models.DefaultLanguage
	}
	lang, err := models.ParseLanguage(string(v))
	if err != nil {
		p.log.Warn(ctx, "ignoring stored language", "value", string(v))
		return models.DefaultLanguage
	}
	return lang
}

func (p *PreferenceService) SetLanguage(ctx context.Context, lang models.Language) error {
	if _, err := models.ParseLanguage(string(lang)); err != nil {
		return err
	}
	if err := p.repo.Set(ctx, keyLanguage, []byte(lang)); err != nil {
		return fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}
	return nil
}

// Consent returns the stored consent, or nil when the user has not answered
// yet.
func (p *PreferenceService) Consent(ctx context.Context) (*models.Consent, error) {
	v, err := p.repo.Get(ctx, keyConsent)
	if err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return nil, nil
	}
	var c models.Consent
	if err := json.Unmarshal(v, &c); err != nil {
		p.log.Warn(ctx, "ignoring corrupt consent", "error", err)
		return nil, nil
	}
	return &c, nil
}

func (p *PreferenceService) SetConsent(ctx context.Context, agreed bool, now time.Time) error {
	c := models.Consent{HasConsented: agreed, ConsentDate: now.UTC()}
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := p.repo.Set(ctx, keyConsent, data); err != nil {
		return fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}
	return nil
}

// CloudSyncEnabled is the effective state: the stored flag is "true" and a
// backend is configured. Read errors count as disabled.
func (p *PreferenceService) CloudSyncEnabled(ctx context.Context) bool {
	if !p.backendConfigured {
		return false
	}
	v, err := p.repo.Get(ctx, keyCloudSync)
	if err != nil {
		p.log.Warn(ctx, "failed to read cloud sync flag", "error", err)
		return false
	}
	return string(v) == "true"
}

func (p *PreferenceService) SetCloudSyncFlag(ctx context.Context, enabled bool) error {
	v := "false"
	if enabled {
		v = "true"
	}
	if err := p.repo.Set(ctx, keyCloudSync, []byte(v)); err != nil {
		return fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}
	return nil
}

// MigrationSeen reports whether the migration prompt was already answered
// for accountID.
func (p *PreferenceService) MigrationSeen(ctx context.Context, accountID string) (bool, error) {
	v, err := p.repo.Get(ctx, migrationMarkerKey(accountID))
	if err != nil {
		return false, err
	}
	return len(v) > 0, nil
}

func (p *PreferenceService) MarkMigrationSeen(ctx context.Context, accountID string) error {
	if err := p.repo.Set(ctx, migrationMarkerKey(accountID), []byte("true")); err != nil {
		return fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}
	return nil
}

// ClearUserData removes language and consent. The sync flag and migration
// markers stay.
func (p *PreferenceService) ClearUserData(ctx context.Context) error {
	if err := p.repo.Delete(ctx, keyLanguage, keyConsent); err != nil {
		return fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}
	return nil
}
