// Package records stores PHQ-9 results per account.
package records

import (
	"context"

	"github.com/dmitrijs2005/aroha/internal/server/models"
)

type Repository interface {
	// Insert stores rec unless the account already holds a record with the
	// same CreatedAt, in which case it reports false and leaves the row alone.
	// On success rec.SyncedAt is set.
	Insert(ctx context.Context, rec *models.Record) (bool, error)
	// ListByUser returns the account's records, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Record, error)
}
