package client

import (
	"context"

	"github.com/dmitrijs2005/aroha/internal/client/models"
)

// Client is the backend API as seen by the on-device services.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, username string, salt []byte, verifier []byte) error
	GetSalt(ctx context.Context, username string) ([]byte, error)
	// Login authenticates and returns the account id.
	Login(ctx context.Context, username string, verifier []byte) (string, error)
	// Logout forgets the tokens held in memory.
	Logout()

	// InsertRecord reports false when the account already has a record with
	// the same creation time.
	InsertRecord(ctx context.Context, r models.Record) (bool, error)
	// ListRecords returns the account's records, newest first.
	ListRecords(ctx context.Context) ([]models.Record, error)

	SaveDiaryEntry(ctx context.Context, e models.DiaryEntry) (*models.DiaryEntry, error)
	ListDiaryEntries(ctx context.Context) ([]models.DiaryEntry, error)
	GetDiaryEntry(ctx context.Context, date string) (*models.DiaryEntry, error)
	DeleteDiaryEntry(ctx context.Context, date string) error

	// GetExportUploadURL returns an object key and a presigned PUT URL.
	GetExportUploadURL(ctx context.Context) (string, string, error)
}
