// Package models defines the client-side data model: screening records,
// consent, language, migration results, diary entries and the export document.
package models

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/aroha/internal/common"
	"github.com/dmitrijs2005/aroha/internal/scoring"
	"github.com/google/uuid"
)

// KeyLayout renders CreatedAt as the record's identity key.
const KeyLayout = "2006-01-02T15:04:05.000Z07:00"

// Record is one completed PHQ-9 questionnaire.
type Record struct {
	ID        string           `json:"id"`
	Answers   []int            `json:"answers"`
	Total     int              `json:"total"`
	Severity  scoring.Severity `json:"severity"`
	Locale    Language         `json:"locale"`
	CreatedAt time.Time        `json:"createdAt"`
}

// NewRecord scores answers and builds a record stamped with now. An empty
// locale falls back to DefaultLanguage.
func NewRecord(answers []int, locale Language, now time.Time) (*Record, error) {
	res, err := scoring.Score(answers)
	if err != nil {
		return nil, err
	}
	if locale == "" {
		locale = DefaultLanguage
	}

	return &Record{
		ID:        uuid.NewString(),
		Answers:   slices.Clone(answers),
		Total:     res.Total,
		Severity:  res.Severity,
		Locale:    locale,
		CreatedAt: NormalizeTime(now),
	}, nil
}

// NormalizeTime converts t to the precision records are stored with.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// Key identifies the record across stores. Two records with the same Key
// are the same record.
func (r Record) Key() string {
	return r.CreatedAt.UTC().Format(KeyLayout)
}

// Validate checks that a record read back from a store is internally
// consistent: nine answers in range, a matching total and severity, an id and
// a timestamp.
func (r Record) Validate() error {
	res, err := scoring.Score(r.Answers)
	if err != nil {
		return err
	}
	if res.Total != r.Total {
		return fmt.Errorf("%w: total %d does not match answers (%d)", common.ErrInvalidInput, r.Total, res.Total)
	}
	if res.Severity != r.Severity {
		return fmt.Errorf("%w: severity %q does not match total %d", common.ErrInvalidInput, r.Severity, r.Total)
	}
	if r.ID == "" {
		return fmt.Errorf("%w: record id is empty", common.ErrInvalidInput)
	}
	if r.CreatedAt.IsZero() {
		return errors.Join(common.ErrInvalidInput, errors.New("record has no creation time"))
	}
	return nil
}

// SortNewestFirst orders records by CreatedAt descending, in place.
func SortNewestFirst(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
}
