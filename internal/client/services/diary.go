package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/aroha/internal/client/client"
	"github.com/dmitrijs2005/aroha/internal/client/models"
	"github.com/dmitrijs2005/aroha/internal/common"
)

// DiaryService manages journal entries. Entries are kept only on the
// backend, so every call needs a signed-in session.
type DiaryService struct {
	client  client.Client
	session *Session
}

func NewDiaryService(c client.Client, session *Session) *DiaryService {
	return &DiaryService{client: c, session: session}
}

func (s *DiaryService) requireSession() error {
	if !s.session.SignedIn() {
		return common.ErrAuthRequired
	}
	return nil
}

func checkDate(date string) error {
	if _, err := time.Parse(models.DiaryDateLayout, date); err != nil {
		return fmt.Errorf("%w: diary date must look like %s", common.ErrInvalidInput, models.DiaryDateLayout)
	}
	return nil
}

func diaryError(err error) error {
	if errors.Is(err, client.ErrNotFound) {
		return fmt.Errorf("%w: %w", common.ErrorNotFound, err)
	}
	return remoteError(err)
}

// Save writes the entry for date, replacing any existing one.
func (s *DiaryService) Save(ctx context.Context, date, title, content string) (*models.DiaryEntry, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}
	if err := checkDate(date); err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: diary entry is empty", common.ErrInvalidInput)
	}

	saved, err := s.client.SaveDiaryEntry(ctx, models.DiaryEntry{
		EntryDate: date,
		Title:     strings.TrimSpace(title),
		Content:   content,
	})
	if err != nil {
		return nil, diaryError(err)
	}
	return saved, nil
}

// List returns all entries, most recent date first.
func (s *DiaryService) List(ctx context.Context) ([]models.DiaryEntry, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}
	entries, err := s.client.ListDiaryEntries(ctx)
	if err != nil {
		return nil, diaryError(err)
	}
	slices.SortFunc(entries, func(a, b models.DiaryEntry) int {
		return strings.Compare(b.EntryDate, a.EntryDate)
	})
	return entries, nil
}

func (s *DiaryService) Get(ctx context.Context, date string) (*models.DiaryEntry, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}
	if err := checkDate(date); err != nil {
		return nil, err
	}
	e, err := s.client.GetDiaryEntry(ctx, date)
	if err != nil {
		return nil, diaryError(err)
	}
	return e, nil
}

func (s *DiaryService) Delete(ctx context.Context, date string) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	if err := checkDate(date); err != nil {
		return err
	}
	if err := s.client.DeleteDiaryEntry(ctx, date); err != nil {
		return diaryError(err)
	}
	return nil
}
