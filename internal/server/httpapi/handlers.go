package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/aroha/internal/server/models"
	"go.uber.org/zap"
)

type recordLister interface {
	List(ctx context.Context, userID string) ([]models.Record, error)
}

type diaryLister interface {
	List(ctx context.Context, userID string) ([]models.DiaryEntry, error)
}

type recordDTO struct {
	ID        string    `json:"id"`
	Answers   []int     `json:"answers"`
	Total     int       `json:"total"`
	Severity  string    `json:"severity"`
	Locale    string    `json:"locale"`
	CreatedAt time.Time `json:"createdAt"`
	SyncedAt  time.Time `json:"syncedAt"`
}

type diaryDTO struct {
	ID        string    `json:"id"`
	EntryDate string    `json:"entryDate"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

type handler struct {
	records recordLister
	diary   diaryLister
	logger  *zap.Logger
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (h *handler) listRecords(w http.ResponseWriter, r *http.Request) {
	uid := userIDFrom(r.Context())
	recs, err := h.records.List(r.Context(), uid)
	if err != nil {
		h.logger.Error("list records failed", zap.String("user_id", uid), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]recordDTO, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recordDTO{
			ID:        rec.ID,
			Answers:   rec.Answers,
			Total:     rec.Total,
			Severity:  rec.Severity,
			Locale:    rec.Locale,
			CreatedAt: rec.CreatedAt,
			SyncedAt:  rec.SyncedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) listDiary(w http.ResponseWriter, r *http.Request) {
	uid := userIDFrom(r.Context())
	entries, err := h.diary.List(r.Context(), uid)
	if err != nil {
		h.logger.Error("list diary failed", zap.String("user_id", uid), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]diaryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, diaryDTO{
			ID:        e.ID,
			EntryDate: e.EntryDate,
			Title:     e.Title,
			Content:   e.Content,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
