// Package bootstrap prepares shared application dependencies: the model
// artifact, the limit table, database connectivity, services, and the router.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"water-backend/internal/assessments"
	"water-backend/internal/labreports"
	"water-backend/internal/reference"
	"water-backend/internal/services/health"
	"water-backend/internal/shared/config"
	"water-backend/internal/shared/server"
	"water-backend/internal/shared/storage/db"
	"water-backend/water/artifact"
	"water-backend/water/pipeline"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Model  artifact.Model
	Limits pipeline.Thresholds
	Engine *pipeline.Engine

	AssessmentsRepo    assessments.Repo
	AssessmentsService *assessments.Service
	AssessmentsHandler *assessments.Handler
	LabReportsHandler  *labreports.Handler
	ReferenceHandler   *reference.Handler
	Health             *health.Service
}

// Build prepares shared dependencies and wires the router. A missing or
// malformed model artifact is fatal: the service must not come up without a
// usable classifier.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	model, err := artifact.Load(cfg.ArtifactPath)
	if err != nil {
		return nil, fmt.Errorf("load model artifact: %w", err)
	}

	limits, err := pipeline.LoadThresholds(cfg.ThresholdsPath)
	if err != nil {
		return nil, fmt.Errorf("load thresholds: %w", err)
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Model:  model,
		Limits: limits,
		Engine: pipeline.NewEngine(model, limits),
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		Health:            app.Health,
		AssessmentHandler: app.AssessmentsHandler,
		LabReportsHandler: app.LabReportsHandler,
		ReferenceHandler:  app.ReferenceHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	var repo assessments.Repo
	if app.DB != nil {
		repo = &assessments.PGRepo{DB: app.DB}
	} else {
		repo = assessments.NewMemoryRepo()
	}

	svc := &assessments.Service{Repo: repo, Engine: app.Engine}

	app.AssessmentsRepo = repo
	app.AssessmentsService = svc
	app.AssessmentsHandler = assessments.NewHandler(svc)
	app.LabReportsHandler = labreports.NewHandler(app.Config.MaxReportBytes)
	app.ReferenceHandler = reference.NewHandler(app.Limits)
	app.Health = health.NewService(app.Model.Version())
}
