// Package server wires the Aroha backend together: PostgreSQL storage, the
// gRPC API clients sync against and the HTTP read API.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/aroha/internal/logging"
	"github.com/dmitrijs2005/aroha/internal/server/config"
	"github.com/dmitrijs2005/aroha/internal/server/httpapi"
	"github.com/dmitrijs2005/aroha/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/aroha/internal/server/services"

	gs "github.com/dmitrijs2005/aroha/internal/server/grpc"
)

// seams for tests
var (
	newLogger = func(level string) (*logging.ZapLogger, error) { return logging.NewProductionZapLogger(level) }
	openDB    = repomanager.OpenPostgres
)

type App struct {
	config  *config.Config
	logger  *logging.ZapLogger
	db      *sql.DB
	users   *services.UserService
	records *services.RecordService
	diary   *services.DiaryService
	exports *services.ExportService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := newLogger(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	db, err := openDB(ctx, c.DatabaseDSN, m)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return &App{
		config:  c,
		logger:  logger,
		db:      db,
		users:   services.NewUserService(db, m, c),
		records: services.NewRecordService(db, m),
		diary:   services.NewDiaryService(db, m),
		exports: services.NewExportService(c),
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, gs.Services{
		Users:   app.users,
		Records: app.records,
		Diary:   app.diary,
		Exports: app.exports,
	}, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", err)
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	router := httpapi.NewRouter(httpapi.Options{
		Records:        app.records,
		Diary:          app.diary,
		JWTSecret:      []byte(app.config.SecretKey),
		AllowedOrigins: app.config.CORSAllowedOrigins,
		Logger:         app.logger.Zap(),
	})
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, router, app.logger.Zap())

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "HTTP server failed", "error", err)
		cancelFunc()
	}
}

// Run starts both servers and blocks until ctx is cancelled, a termination
// signal arrives or one of the servers fails. The database is closed on
// return.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing database", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
	_ = app.logger.Sync()
}
