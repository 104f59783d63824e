package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/aroha/internal/common"
)

// Language is a UI language tag.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageMaori   Language = "mi"
	LanguageChinese Language = "zh"

	DefaultLanguage = LanguageEnglish
)

// SupportedLanguages lists the tags the app ships strings for.
var SupportedLanguages = []Language{LanguageEnglish, LanguageMaori, LanguageChinese}

// ParseLanguage accepts one of SupportedLanguages.
func ParseLanguage(s string) (Language, error) {
	for _, l := range SupportedLanguages {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported language %q", common.ErrInvalidInput, s)
}

// Consent records the user's acknowledgement of the privacy disclosure.
type Consent struct {
	HasConsented bool      `json:"hasConsented"`
	ConsentDate  time.Time `json:"consentDate"`
}

// MigrationCounts summarises a batch upload of local records.
type MigrationCounts struct {
	Migrated int `json:"migrated"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
}

// Total is the number of records the batch looked at.
func (c MigrationCounts) Total() int {
	return c.Migrated + c.Skipped + c.Errors
}

func (c MigrationCounts) String() string {
	return fmt.Sprintf("migrated=%d skipped=%d errors=%d", c.Migrated, c.Skipped, c.Errors)
}

// MigrationOffer is raised once after sign-in when local records exist and
// the account has not answered the migration prompt yet.
type MigrationOffer struct {
	AccountID  string
	LocalCount int
}
