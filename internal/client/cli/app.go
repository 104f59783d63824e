package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/aroha/internal/client/client"
	"github.com/dmitrijs2005/aroha/internal/client/config"
	"github.com/dmitrijs2005/aroha/internal/client/models"
	"github.com/dmitrijs2005/aroha/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/aroha/internal/client/repositories/records"
	"github.com/dmitrijs2005/aroha/internal/client/services"
	"github.com/dmitrijs2005/aroha/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

// recordService is what the CLI needs from services.SyncService.
type recordService interface {
	SubmitAssessment(ctx context.Context, answers []int) (*models.Record, error)
	GetHistory(ctx context.Context) []models.Record
	ExportAllAsJSON(ctx context.Context) ([]byte, error)
	DeleteAllData(ctx context.Context) error
	SetCloudSyncEnabled(ctx context.Context, enabled bool) (models.MigrationCounts, error)
	IsCloudSyncEnabled(ctx context.Context) bool
	PendingMigration() (models.MigrationOffer, bool)
	MigrateNow(ctx context.Context) (models.MigrationCounts, error)
	KeepLocal(ctx context.Context) error
}

type preferenceService interface {
	Language(ctx context.Context) models.Language
	SetLanguage(ctx context.Context, lang models.Language) error
	Consent(ctx context.Context) (*models.Consent, error)
	SetConsent(ctx context.Context, agreed bool, now time.Time) error
	BackendConfigured() bool
}

type diaryService interface {
	Save(ctx context.Context, date, title, content string) (*models.DiaryEntry, error)
	List(ctx context.Context) ([]models.DiaryEntry, error)
	Get(ctx context.Context, date string) (*models.DiaryEntry, error)
	Delete(ctx context.Context, date string) error
}

type cloudExporter interface {
	Upload(ctx context.Context) (string, error)
}

type App struct {
	config      *config.Config
	db          *sql.DB
	log         logging.Logger
	authService services.AuthService
	records     recordService
	prefs       preferenceService
	diary       diaryService
	cloudExport cloudExporter
	userName    string
	reader      *bufio.Reader
	out         io.Writer

	mu   sync.RWMutex
	Mode Mode
}

// NewApp opens the local database and wires the services. Without a server
// endpoint the app runs against an offline client.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	var apiClient client.Client = client.OfflineClient{}
	if c.BackendConfigured() {
		grpcClient, err := client.NewArohaClient(c.ServerEndpointAddr)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		apiClient = grpcClient
	}

	session := services.NewSession()
	prefs := services.NewPreferenceService(metadata.NewSQLiteRepository(db), c.BackendConfigured(), logger)
	local := services.NewLocalStore(records.NewSQLiteRepository(db), logger)
	remote := services.NewRemoteStore(apiClient, session, logger)
	syncService := services.NewSyncService(local, remote, prefs, session, logger)

	return &App{
		config:      c,
		db:          db,
		log:         logger,
		authService: services.NewAuthService(apiClient, db, session),
		records:     syncService,
		prefs:       prefs,
		diary:       services.NewDiaryService(apiClient, session),
		cloudExport: services.NewCloudExportService(syncService, apiClient, session, &http.Client{Timeout: 30 * time.Second}),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.mu.Unlock()

	if changed {
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.Mode
}

// Close releases the client connection and the database.
func (a *App) Close(ctx context.Context) {
	if a.authService != nil {
		_ = a.authService.Close(ctx)
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

// Run starts the interactive session and blocks until the user leaves.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.authService.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.mode() == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.mode() != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
