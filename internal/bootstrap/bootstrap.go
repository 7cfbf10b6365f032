// Package bootstrap wires configuration, the database, services, and the
// HTTP router into a running application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/studenthub/backend/internal/app/controllers"
	appMigrations "github.com/studenthub/backend/internal/app/migrations"
	"github.com/studenthub/backend/internal/app/models/dto"
	appRepos "github.com/studenthub/backend/internal/app/repositories"
	appRoutes "github.com/studenthub/backend/internal/app/routes"
	appServices "github.com/studenthub/backend/internal/app/services"
	"github.com/studenthub/backend/internal/config"
	"github.com/studenthub/backend/internal/db"
	appMiddleware "github.com/studenthub/backend/internal/middleware"
	pkgAuth "github.com/studenthub/backend/internal/pkg/auth"
	"github.com/studenthub/backend/internal/pkg/helpers"
	"github.com/studenthub/backend/internal/pkg/logger"
	"github.com/studenthub/backend/internal/seed"
)

// Dependencies holds the wired application components.
type Dependencies struct {
	Services              *appServices.Services
	AuthController        *appControllers.AuthController
	AchievementController *appControllers.AchievementController
	EventController       *appControllers.EventController
	PortfolioController   *appControllers.PortfolioController
	DashboardController   *appControllers.DashboardController
	InstitutionController *appControllers.InstitutionController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = filepath.Join("configs", "config.yaml")
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations, and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers, and
// middleware.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.AchievementController = appControllers.NewAchievementController(deps.Services.AchievementService)
	deps.EventController = appControllers.NewEventController(deps.Services.EventService)
	deps.PortfolioController = appControllers.NewPortfolioController(deps.Services.PortfolioService)
	deps.DashboardController = appControllers.NewDashboardController(deps.Services.DashboardService)
	deps.InstitutionController = appControllers.NewInstitutionController(deps.Services.InstitutionService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	router := newEngine(cfg, lgr)

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AchievementController,
		deps.EventController,
		deps.PortfolioController,
		deps.DashboardController,
		deps.InstitutionController,
		deps.AuthMiddleware,
	)

	return router
}

// SetupRequiredRouter builds the degraded router used when the database is
// not configured. The health endpoint reports the setup state; every other
// route answers 503 until credentials are provided.
func SetupRequiredRouter(cfg *config.Config, lgr zerolog.Logger) *gin.Engine {
	router := newEngine(cfg, lgr)

	router.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "setup_required"}))
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeSetupRequired,
				"Backend is not configured. Provide database credentials and restart.")))
	})

	lgr.Warn().Msg("Database is not configured; running in setup-required mode")
	return router
}

func newEngine(cfg *config.Config, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	return router
}
