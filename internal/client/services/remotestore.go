package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/aroha/internal/client/client"
	"github.com/dmitrijs2005/aroha/internal/client/models"
	"github.com/dmitrijs2005/aroha/internal/common"
	"github.com/dmitrijs2005/aroha/internal/logging"
)

// RemoteStore is the account-scoped record store on the backend. Every call
// needs a signed-in Session.
type RemoteStore struct {
	client  client.Client
	session *Session
	log     logging.Logger
}

func NewRemoteStore(c client.Client, session *Session, log logging.Logger) *RemoteStore {
	return &RemoteStore{client: c, session: session, log: log}
}

// remoteError translates transport errors into ErrAuthRequired or
// ErrRemoteUnavailable, keeping the original in the chain.
func remoteError(err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", common.ErrAuthRequired, err)
	}
	return fmt.Errorf("%w: %w", common.ErrRemoteUnavailable, err)
}

// GetAllForCurrentUser returns the account's records newest first. Rows that
// fail validation are dropped.
func (s *RemoteStore) GetAllForCurrentUser(ctx context.Context) ([]models.Record, error) {
	accountID, ok := s.session.AccountID()
	if !ok {
		return nil, common.ErrAuthRequired
	}

	recs, err := s.client.ListRecords(ctx)
	if err != nil {
		return nil, remoteError(err)
	}

	res := make([]models.Record, 0, len(recs))
	for _, r := range recs {
		if err := r.Validate(); err != nil {
			s.log.Warn(ctx, "dropping invalid remote record", "account", accountID, "key", r.Key(), "error", err)
			continue
		}
		res = append(res, r)
	}
	models.SortNewestFirst(res)
	return res, nil
}

// Insert stores r for the signed-in account. It reports false when the
// account already has a record with the same key.
func (s *RemoteStore) Insert(ctx context.Context, r models.Record) (bool, error) {
	if !s.session.SignedIn() {
		return false, common.ErrAuthRequired
	}

	inserted, err := s.client.InsertRecord(ctx, r)
	if errors.Is(err, client.ErrAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, remoteError(err)
	}
	return inserted, nil
}

// InsertMany uploads recs one by one. Records whose key already exists
// remotely are skipped. A failed key lookup counts every record as an error.
// The batch never stops early.
func (s *RemoteStore) InsertMany(ctx context.Context, recs []models.Record) models.MigrationCounts {
	var counts models.MigrationCounts
	if len(recs) == 0 {
		return counts
	}

	existing, err := s.GetAllForCurrentUser(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to fetch existing remote keys", "error", err)
		counts.Errors = len(recs)
		return counts
	}

	seen := make(map[string]struct{}, len(existing)+len(recs))
	for _, r := range existing {
		seen[r.Key()] = struct{}{}
	}

	for _, r := range recs {
		key := r.Key()
		if _, ok := seen[key]; ok {
			counts.Skipped++
			continue
		}

		inserted, err := s.Insert(ctx, r)
		switch {
		case err != nil:
			s.log.Warn(ctx, "failed to upload record", "key", key, "error", err)
			counts.Errors++
		case !inserted:
			counts.Skipped++
		default:
			counts.Migrated++
		}
		if err == nil {
			seen[key] = struct{}{}
		}
	}
	return counts
}
