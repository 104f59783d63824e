package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/aroha/internal/common"
	"github.com/dmitrijs2005/aroha/internal/server/models"
	"github.com/dmitrijs2005/aroha/internal/server/repositories/repomanager"
)

const diaryDateLayout = "2006-01-02"

type DiaryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDiaryService(db *sql.DB, m repomanager.RepositoryManager) *DiaryService {
	return &DiaryService{db: db, repomanager: m}
}

func checkDate(date string) error {
	if _, err := time.Parse(diaryDateLayout, date); err != nil {
		return fmt.Errorf("bad entry date %q: %w", date, common.ErrInvalidInput)
	}
	return nil
}

// Save creates or replaces the entry for e.EntryDate.
func (s *DiaryService) Save(ctx context.Context, userID string, e *models.DiaryEntry) (*models.DiaryEntry, error) {
	if e == nil {
		return nil, fmt.Errorf("entry is missing: %w", common.ErrInvalidInput)
	}
	if err := checkDate(e.EntryDate); err != nil {
		return nil, err
	}
	if strings.TrimSpace(e.Content) == "" {
		return nil, fmt.Errorf("entry content is empty: %w", common.ErrInvalidInput)
	}
	e.UserID = userID

	saved, err := s.repomanager.Diary(s.db).Upsert(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("error saving diary entry: %w", err)
	}
	return saved, nil
}

func (s *DiaryService) List(ctx context.Context, userID string) ([]models.DiaryEntry, error) {
	entries, err := s.repomanager.Diary(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing diary entries: %w", err)
	}
	return entries, nil
}

// Get returns common.ErrorNotFound when nothing was written on date.
func (s *DiaryService) Get(ctx context.Context, userID, date string) (*models.DiaryEntry, error) {
	if err := checkDate(date); err != nil {
		return nil, err
	}
	return s.repomanager.Diary(s.db).Get(ctx, userID, date)
}

func (s *DiaryService) Delete(ctx context.Context, userID, date string) error {
	if err := checkDate(date); err != nil {
		return err
	}
	return s.repomanager.Diary(s.db).Delete(ctx, userID, date)
}
