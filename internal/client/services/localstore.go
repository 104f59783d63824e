package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/aroha/internal/client/models"
	"github.com/dmitrijs2005/aroha/internal/client/repositories/records"
	"github.com/dmitrijs2005/aroha/internal/common"
	"github.com/dmitrijs2005/aroha/internal/logging"
)

// LocalStore is the on-device record store. Reads never fail: an unreadable
// store is reported as empty.
type LocalStore struct {
	repo records.Repository
	log  logging.Logger
}

func NewLocalStore(repo records.Repository, log logging.Logger) *LocalStore {
	return &LocalStore{repo: repo, log: log}
}

// GetAll returns every stored record in insertion order. Any read error or
// invalid row makes the whole store read as empty.
func (s *LocalStore) GetAll(ctx context.Context) []models.Record {
	recs, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read local records", "error", err)
		return []models.Record{}
	}
	for _, r := range recs {
		if err := r.Validate(); err != nil {
			s.log.Error(ctx, "local store holds an invalid record", "key", r.Key(), "error", err)
			return []models.Record{}
		}
	}
	return recs
}

func (s *LocalStore) Count(ctx context.Context) int {
	n, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to count local records", "error", err)
		return 0
	}
	return n
}

func (s *LocalStore) Append(ctx context.Context, r *models.Record) error {
	if err := s.repo.Append(ctx, r); err != nil {
		return fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}
	return nil
}

func (s *LocalStore) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}
	return nil
}
