package container

import (
	"context"
	"fmt"
	"time"

	"djbooking-backend/internal/config"
	infraCache "djbooking-backend/internal/infrastructure/cache"
	"djbooking-backend/internal/infrastructure/database"
	"djbooking-backend/internal/shared/response"
	"djbooking-backend/pkg/cache"
	"djbooking-backend/pkg/jwt"
	"djbooking-backend/pkg/logger"

	artistHandler "djbooking-backend/internal/domains/artist/handler"
	artistRepo "djbooking-backend/internal/domains/artist/repository"
	artistService "djbooking-backend/internal/domains/artist/service"
	errorlogRepo "djbooking-backend/internal/domains/errorlog/repository"
	errorlogService "djbooking-backend/internal/domains/errorlog/service"
	eventHandler "djbooking-backend/internal/domains/event/handler"
	eventRepo "djbooking-backend/internal/domains/event/repository"
	eventService "djbooking-backend/internal/domains/event/service"
	styleHandler "djbooking-backend/internal/domains/style/handler"
	styleRepo "djbooking-backend/internal/domains/style/repository"
	styleService "djbooking-backend/internal/domains/style/service"
	userHandler "djbooking-backend/internal/domains/user/handler"
	userRepo "djbooking-backend/internal/domains/user/repository"
	userService "djbooking-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything is a
// singleton wired once at startup; construction order is config,
// infrastructure, repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Reporter   *response.Reporter

	UserRepo   userRepo.RepositoryInterface
	ArtistRepo artistRepo.RepositoryInterface
	EventRepo  eventRepo.RepositoryInterface
	StyleRepo  styleRepo.RepositoryInterface

	UserService   userService.ServiceInterface
	ArtistService artistService.ServiceInterface
	EventService  eventService.ServiceInterface
	StyleService  styleService.ServiceInterface

	UserHandler   *userHandler.UserHandler
	ArtistHandler *artistHandler.ArtistHandler
	EventHandler  *eventHandler.EventHandler
	StyleHandler  *styleHandler.StyleHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	// ========================================
	// CONFIGURATION
	// ========================================

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("config loaded", map[string]interface{}{"environment": cfg.App.Environment})

	// ========================================
	// INFRASTRUCTURE: POSTGRES
	// ========================================

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db
	logger.Info("database connected", map[string]interface{}{"host": dbConfig.Host})

	if err := database.RunMigrations(db.ConnectionString()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("migrations applied", nil)

	// ========================================
	// INFRASTRUCTURE: REDIS
	// ========================================

	// Redis being unreachable is not fatal; repositories treat every
	// cache miss or cache error as a pass-through to Postgres.
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn("redis unavailable, running without cache hits", map[string]interface{}{
			"host": cfg.Redis.Host,
		})
	} else {
		logger.Info("redis connected", map[string]interface{}{"host": cfg.Redis.Host})
	}
	c.Cache = redisCache

	// ========================================
	// INFRASTRUCTURE: JWT
	// ========================================

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	// ========================================
	// REPOSITORIES
	// ========================================

	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)
	c.ArtistRepo = artistRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.EventRepo = eventRepo.NewPostgresRepository(db.Pool)
	c.StyleRepo = styleRepo.NewPostgresRepository(db.Pool, c.Cache)

	// ========================================
	// SERVICES
	// ========================================

	c.StyleService = styleService.NewStyleService(c.StyleRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.ArtistService = artistService.NewArtistService(c.ArtistRepo, c.StyleService)
	c.EventService = eventService.NewEventService(c.EventRepo)

	// Every handler failure flows through the reporter, which records
	// the classified error before shaping the response.
	recorder := errorlogService.NewErrorLogService(errorlogRepo.NewPostgresRepository(db.Pool))
	c.Reporter = response.NewReporter(recorder)

	// ========================================
	// HANDLERS
	// ========================================

	c.UserHandler = userHandler.NewUserHandler(c.UserService, c.Reporter)
	c.ArtistHandler = artistHandler.NewArtistHandler(c.ArtistService, c.Reporter)
	c.EventHandler = eventHandler.NewEventHandler(c.EventService, c.Reporter)
	c.StyleHandler = styleHandler.NewStyleHandler(c.StyleService, c.Reporter)

	logger.Info("container initialized", nil)
	return c, nil
}

// Cleanup releases infrastructure resources in reverse order.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if closer, ok := c.Cache.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				logger.Error("failed to close redis", err)
			}
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	logger.Info("container cleaned up", nil)
}
