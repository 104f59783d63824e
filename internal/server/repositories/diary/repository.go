// Package diary stores per-day journal entries.
package diary

import (
	"context"

	"github.com/dmitrijs2005/aroha/internal/server/models"
)

type Repository interface {
	// Upsert creates or replaces the entry for (UserID, EntryDate) and fills
	// in ID and timestamps.
	Upsert(ctx context.Context, e *models.DiaryEntry) (*models.DiaryEntry, error)
	// ListByUser returns entries newest date first.
	ListByUser(ctx context.Context, userID string) ([]models.DiaryEntry, error)
	// Get and Delete return common.ErrorNotFound for a missing date.
	Get(ctx context.Context, userID, date string) (*models.DiaryEntry, error)
	Delete(ctx context.Context, userID, date string) error
}
