package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/crypto/bcrypt"

	"shared-task-tracker/config"
	"shared-task-tracker/internal/auth"
	authHTTP "shared-task-tracker/internal/auth/delivery/http"
	authUC "shared-task-tracker/internal/auth/usecase"
	"shared-task-tracker/internal/httpserver"
	"shared-task-tracker/internal/middleware"
	"shared-task-tracker/internal/model"
	"shared-task-tracker/internal/poller"
	tasklistHTTP "shared-task-tracker/internal/tasklist/delivery/http"
	"shared-task-tracker/internal/tasklist/repository"
	"shared-task-tracker/internal/tasklist/repository/githubfile"
	"shared-task-tracker/internal/tasklist/repository/localstore"
	"shared-task-tracker/internal/tasklist/repository/sheetapi"
	"shared-task-tracker/internal/tasklist/repository/sheetcsv"
	"shared-task-tracker/internal/tasklist/store"
	tasklistUC "shared-task-tracker/internal/tasklist/usecase"
	"shared-task-tracker/pkg/dateutil"
	"shared-task-tracker/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Shared Task Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task source: %s", cfg.Sync.Source)

	// 3. Clock
	clock, err := dateutil.NewClock(cfg.Date.UTCOffsetHours, cfg.Date.DisplayTimezone)
	if err != nil {
		logger.Error(ctx, "Failed to initialize clock: ", err)
		return
	}

	// 4. Durable snapshot store
	snapshots, err := localstore.Open(cfg.Sync.Local.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open snapshot store: ", err)
		return
	}
	defer snapshots.Close()

	// 5. Remote source
	source, err := buildSource(ctx, cfg, snapshots, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task source: ", err)
		return
	}

	// 6. Task list domain
	owners := make([]model.Owner, len(cfg.Sync.Owners))
	for i, o := range cfg.Sync.Owners {
		owners[i] = model.Owner(o)
	}
	taskUC := tasklistUC.New(logger, store.New(), source, snapshots, clock, owners, nil)

	// 7. Auth domain
	creds, err := buildCredentials(cfg.Auth.Users)
	if err != nil {
		logger.Error(ctx, "Failed to load credentials: ", err)
		return
	}
	authUseCase := authUC.New(logger, creds, cfg.Auth.SessionTTL, cfg.Auth.LoginRatePerMin, nil)

	// 8. HTTP server
	mw := middleware.New(logger, authUseCase)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		AuthHandler:     authHTTP.New(logger, authUseCase),
		TasklistHandler: tasklistHTTP.New(logger, taskUC, authUseCase),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Background refresh
	p := poller.New(logger, taskUC, cfg.Sync.PollInterval)
	go p.Run(ctx)

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// buildSource creates the configured task source. In local mode the
// snapshot store itself serves the reads.
func buildSource(ctx context.Context, cfg *config.Config, snapshots *localstore.Store, logger log.Logger) (repository.Source, error) {
	switch cfg.Sync.Source {
	case config.SourceSheetCSV:
		return sheetcsv.New(cfg.Sync.SheetCSV.URL, logger), nil
	case config.SourceSheetAPI:
		return sheetapi.NewFromCredentialsFile(ctx,
			cfg.Sync.SheetAPI.CredentialsPath,
			cfg.Sync.SheetAPI.SpreadsheetID,
			cfg.Sync.SheetAPI.ReadRange,
			logger)
	case config.SourceGitHub:
		client := githubfile.NewClient(
			cfg.Sync.GitHub.APIBaseURL,
			cfg.Sync.GitHub.RawBaseURL,
			cfg.Sync.GitHub.Owner,
			cfg.Sync.GitHub.Repo,
			cfg.Sync.GitHub.Branch,
			cfg.Sync.GitHub.Path,
		)
		return githubfile.New(client, logger), nil
	case config.SourceLocal:
		return snapshots, nil
	default:
		return nil, fmt.Errorf("unknown sync source %q", cfg.Sync.Source)
	}
}

// buildCredentials turns configured users into login credentials. A
// plaintext development password is hashed here and discarded.
func buildCredentials(users []config.UserConfig) ([]auth.Credential, error) {
	creds := make([]auth.Credential, 0, len(users))
	for _, u := range users {
		hash := u.PasswordHash
		if hash == "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("failed to hash password for %q: %w", u.Username, err)
			}
			hash = string(hashed)
		}
		creds = append(creds, auth.Credential{Username: u.Username, PasswordHash: hash})
	}
	return creds, nil
}
