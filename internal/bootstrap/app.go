package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	googleauth "traits-backend/internal/auth"
	"traits-backend/internal/insights"
	"traits-backend/internal/profiles"
	"traits-backend/internal/shared/config"
	"traits-backend/internal/shared/server"
	"traits-backend/internal/shared/server/middleware"
	"traits-backend/internal/shared/storage/db"
	"traits-backend/internal/users"
)

// App holds shared dependencies wired by Build.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Redis           *redis.Client
	ProfilesRepo    profiles.Repo
	GuestsRepo      profiles.Repo
	UsersRepo       users.Repo
	ProfilesService *profiles.Service
	InsightsService *insights.Service
	UsersService    *users.Service
	ProfileHandler  *profiles.Handler
	InsightHandler  *insights.Handler
	UsersHandler    *users.Handler
	GoogleAuth      *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := buildRedis(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Redis:  redisClient,
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		ProfileHandler: app.ProfileHandler,
		InsightHandler: app.InsightHandler,
		UserHandler:    app.UsersHandler,
		GoogleAuth:     app.GoogleAuth,
		RateLimiter:    middleware.NewRateLimiter(nil),
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
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			sqlDB.Close()
			return nil, nil
		}
		sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

func buildRedis(cfg config.Config) (*redis.Client, error) {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: invalid REDIS_URL; guest profiles share the primary store: %v", err)
			return nil, nil
		}
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	return redis.NewClient(opts), nil
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
	var profileRepo profiles.Repo
	var userRepo users.Repo

	if app.DB != nil {
		profileRepo = &profiles.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		profileRepo = profiles.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	// Guest profiles live in Redis with a TTL so abandoned sessions expire.
	// Without Redis they share the primary store.
	var guestRepo profiles.Repo
	if app.Redis != nil {
		guestRepo = profiles.NewRedisRepo(app.Redis, app.Config.GuestProfileTTL)
	} else {
		guestRepo = profileRepo
	}

	profileSvc := profiles.NewService(profileRepo, guestRepo)
	analyzer := insights.NewAnalyzer(insights.NewGenerator(nil))
	insightSvc := insights.NewService(profileSvc, analyzer)
	userSvc := users.NewService(userRepo)

	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.ProfilesRepo = profileRepo
	app.GuestsRepo = guestRepo
	app.UsersRepo = userRepo
	app.ProfilesService = profileSvc
	app.InsightsService = insightSvc
	app.UsersService = userSvc
	app.ProfileHandler = profiles.NewHandler(profileSvc)
	app.InsightHandler = insights.NewHandler(insightSvc)
	app.UsersHandler = users.NewHandler(userSvc)
	app.GoogleAuth = googleAuthSvc
}
