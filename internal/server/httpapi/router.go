// Package httpapi serves a read-only JSON view of an account's data next to
// the gRPC API.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Options struct {
	Records        recordLister
	Diary          diaryLister
	JWTSecret      []byte
	AllowedOrigins []string
	Logger         *zap.Logger
}

func NewRouter(o Options) http.Handler {
	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handler{records: o.Records, diary: o.Diary, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(StructuredLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.health)
	r.Route("/api/v1", func(api chi.Router) {
		api.Use(RequireAuth(o.JWTSecret))
		api.Get("/records", h.listRecords)
		api.Get("/diary", h.listDiary)
	})

	return r
}
