package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/aroha/internal/common"
	"github.com/dmitrijs2005/aroha/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiaryService(t *testing.T) (*DiaryService, *fakeDiaryRepo) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { _ = db.Close() })
	repo := newFakeDiaryRepo()
	return NewDiaryService(db, &fakeRepoManager{d: repo}), repo
}

func TestDiaryService_SaveListGetDelete(t *testing.T) {
	s, _ := newDiaryService(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, "u1", &models.DiaryEntry{EntryDate: "2026-01-02", Title: "walk", Content: "went to the beach"})
	require.NoError(t, err)
	assert.Equal(t, "u1", saved.UserID)
	assert.NotEmpty(t, saved.ID)

	_, err = s.Save(ctx, "u1", &models.DiaryEntry{EntryDate: "2026-01-05", Content: "rain"})
	require.NoError(t, err)

	list, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2026-01-05", list[0].EntryDate)

	got, err := s.Get(ctx, "u1", "2026-01-02")
	require.NoError(t, err)
	assert.Equal(t, "went to the beach", got.Content)

	require.NoError(t, s.Delete(ctx, "u1", "2026-01-02"))
	_, err = s.Get(ctx, "u1", "2026-01-02")
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.ErrorIs(t, s.Delete(ctx, "u1", "2026-01-02"), common.ErrorNotFound)
}

func TestDiaryService_SaveReplacesSameDate(t *testing.T) {
	s, repo := newDiaryService(t)
	ctx := context.Background()

	_, err := s.Save(ctx, "u1", &models.DiaryEntry{EntryDate: "2026-01-02", Content: "first"})
	require.NoError(t, err)
	_, err = s.Save(ctx, "u1", &models.DiaryEntry{EntryDate: "2026-01-02", Content: "second"})
	require.NoError(t, err)

	assert.Len(t, repo.rows, 1)
	got, err := s.Get(ctx, "u1", "2026-01-02")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Content)
}

func TestDiaryService_Validation(t *testing.T) {
	s, repo := newDiaryService(t)
	ctx := context.Background()

	_, err := s.Save(ctx, "u1", nil)
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = s.Save(ctx, "u1", &models.DiaryEntry{EntryDate: "02/01/2026", Content: "x"})
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = s.Save(ctx, "u1", &models.DiaryEntry{EntryDate: "2026-01-02", Content: "   "})
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = s.Get(ctx, "u1", "yesterday")
	require.ErrorIs(t, err, common.ErrInvalidInput)

	require.ErrorIs(t, s.Delete(ctx, "u1", "2026-13-01"), common.ErrInvalidInput)
	assert.Empty(t, repo.rows)
}

func TestDiaryService_RepositoryErrorsAreWrapped(t *testing.T) {
	s, repo := newDiaryService(t)
	repo.err = errBoom{}

	_, err := s.Save(context.Background(), "u1", &models.DiaryEntry{EntryDate: "2026-01-02", Content: "x"})
	require.ErrorContains(t, err, "error saving diary entry: boom")

	_, err = s.List(context.Background(), "u1")
	require.ErrorContains(t, err, "error listing diary entries: boom")
}
