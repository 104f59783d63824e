// Package records stores screening records on the device.
package records

import (
	"context"

	"github.com/dmitrijs2005/aroha/internal/client/models"
)

// Repository is the durable on-device record log. Records come back in the
// order they were appended; duplicates of CreatedAt are allowed.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Record, error)
	Append(ctx context.Context, r *models.Record) error
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}
