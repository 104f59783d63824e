package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/aroha/internal/client/client"
	"github.com/dmitrijs2005/aroha/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiary_RequiresSession(t *testing.T) {
	f := newFixture(t, true)
	svc := NewDiaryService(f.client, f.session)
	ctx := context.Background()

	_, err := svc.Save(ctx, "2025-03-01", "t", "c")
	require.ErrorIs(t, err, common.ErrAuthRequired)
	_, err = svc.List(ctx)
	require.ErrorIs(t, err, common.ErrAuthRequired)
	_, err = svc.Get(ctx, "2025-03-01")
	require.ErrorIs(t, err, common.ErrAuthRequired)
	require.ErrorIs(t, svc.Delete(ctx, "2025-03-01"), common.ErrAuthRequired)
}

func TestDiary_SaveListGetDelete(t *testing.T) {
	f := newFixture(t, true)
	svc := NewDiaryService(f.client, f.session)
	ctx := context.Background()
	f.session.SignIn(ctx, "acc")

	_, err := svc.Save(ctx, "2025-03-01", " first ", "hello")
	require.NoError(t, err)
	_, err = svc.Save(ctx, "2025-03-02", "second", "world")
	require.NoError(t, err)
	saved, err := svc.Save(ctx, "2025-03-01", "first", "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", saved.Content)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2025-03-02", list[0].EntryDate)
	assert.Equal(t, "first", list[1].Title)

	got, err := svc.Get(ctx, "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)

	require.NoError(t, svc.Delete(ctx, "2025-03-01"))
	_, err = svc.Get(ctx, "2025-03-01")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDiary_ValidatesInput(t *testing.T) {
	f := newFixture(t, true)
	svc := NewDiaryService(f.client, f.session)
	ctx := context.Background()
	f.session.SignIn(ctx, "acc")

	_, err := svc.Save(ctx, "01/03/2025", "t", "c")
	require.ErrorIs(t, err, common.ErrInvalidInput)
	_, err = svc.Save(ctx, "2025-03-01", "t", "   ")
	require.ErrorIs(t, err, common.ErrInvalidInput)
	require.ErrorIs(t, svc.Delete(ctx, "yesterday"), common.ErrInvalidInput)
}

func TestDiary_RemoteFailure(t *testing.T) {
	f := newFixture(t, true)
	svc := NewDiaryService(f.client, f.session)
	ctx := context.Background()
	f.session.SignIn(ctx, "acc")
	f.client.DiaryErr = client.ErrUnavailable

	_, err := svc.List(ctx)
	require.ErrorIs(t, err, common.ErrRemoteUnavailable)
}

func TestCloudExport_Upload(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	f.client.ExportKey = "exports/acc/2025/3/1/x.json"
	f.client.ExportURL = "https://bucket/put"

	orig := uploadFn
	t.Cleanup(func() { uploadFn = orig })
	var gotURL string
	var gotBody []byte
	uploadFn = func(_ context.Context, _ *http.Client, url string, body []byte, contentType string) error {
		gotURL, gotBody = url, body
		assert.Equal(t, "application/json", contentType)
		return nil
	}

	svc := NewCloudExportService(f.sync, f.client, f.session, nil)

	_, err := svc.Upload(ctx)
	require.ErrorIs(t, err, common.ErrAuthRequired)

	f.session.SignIn(ctx, "acc")
	key, err := svc.Upload(ctx)
	require.NoError(t, err)
	assert.Equal(t, "exports/acc/2025/3/1/x.json", key)
	assert.Equal(t, "https://bucket/put", gotURL)
	assert.Contains(t, string(gotBody), `"records"`)
}

func TestCloudExport_UploadFailure(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	f.session.SignIn(ctx, "acc")

	orig := uploadFn
	t.Cleanup(func() { uploadFn = orig })
	uploadFn = func(context.Context, *http.Client, string, []byte, string) error {
		return errors.New("upload failed: 403 Forbidden")
	}

	_, err := NewCloudExportService(f.sync, f.client, f.session, nil).Upload(ctx)
	require.ErrorIs(t, err, common.ErrRemoteUnavailable)

	f.client.ExportErr = client.ErrUnauthorized
	_, err = NewCloudExportService(f.sync, f.client, f.session, nil).Upload(ctx)
	require.ErrorIs(t, err, common.ErrAuthRequired)
}
