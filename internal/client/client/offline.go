package client

import (
	"context"

	"github.com/dmitrijs2005/aroha/internal/client/models"
)

// OfflineClient is used when no backend endpoint is configured. Every remote
// call fails with ErrUnavailable.
type OfflineClient struct{}

var _ Client = OfflineClient{}

func (OfflineClient) Close() error                                   { return nil }
func (OfflineClient) Ping(context.Context) error                     { return ErrUnavailable }
func (OfflineClient) Logout()                                        {}
func (OfflineClient) DeleteDiaryEntry(context.Context, string) error { return ErrUnavailable }

func (OfflineClient) Register(context.Context, string, []byte, []byte) error {
	return ErrUnavailable
}

func (OfflineClient) GetSalt(context.Context, string) ([]byte, error) {
	return nil, ErrUnavailable
}

func (OfflineClient) Login(context.Context, string, []byte) (string, error) {
	return "", ErrUnavailable
}

func (OfflineClient) InsertRecord(context.Context, models.Record) (bool, error) {
	return false, ErrUnavailable
}

func (OfflineClient) ListRecords(context.Context) ([]models.Record, error) {
	return nil, ErrUnavailable
}

func (OfflineClient) SaveDiaryEntry(context.Context, models.DiaryEntry) (*models.DiaryEntry, error) {
	return nil, ErrUnavailable
}

func (OfflineClient) ListDiaryEntries(context.Context) ([]models.DiaryEntry, error) {
	return nil, ErrUnavailable
}

func (OfflineClient) GetDiaryEntry(context.Context, string) (*models.DiaryEntry, error) {
	return nil, ErrUnavailable
}

func (OfflineClient) GetExportUploadURL(context.Context) (string, string, error) {
	return "", "", ErrUnavailable
}
