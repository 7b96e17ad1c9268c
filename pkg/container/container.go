package container

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/config"
	"blog-backend/internal/domains/author"
	authorHandler "blog-backend/internal/domains/author/handler"
	authorRepo "blog-backend/internal/domains/author/repository"
	authorService "blog-backend/internal/domains/author/service"
	"blog-backend/internal/domains/post"
	postHandler "blog-backend/internal/domains/post/handler"
	postRepo "blog-backend/internal/domains/post/repository"
	postService "blog-backend/internal/domains/post/service"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/cache"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     *database.PostgresDB // pgx pool
	SQL    *sql.DB              // database/sql view over DB.Pool, used by repositories
	Cache  cache.Cache          // Redis, or Noop when REDIS_ENABLED=false

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	AuthorRepo author.Repository
	PostRepo   post.Repository

	// ========================================
	// SERVICE LAYER
	// ========================================
	AuthorService author.Service
	PostService   post.Service

	// ========================================
	// HANDLER LAYER
	// ========================================
	AuthorHandler *authorHandler.AuthorHandler
	PostHandler   *postHandler.PostHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config
// 2. Infrastructure (DB, schema, Cache)
// 3. Repositories
// 4. Services
// 5. Handlers
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Info().Msg("Initializing DI container")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig(cfg.Database)
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

	sqlDB, err := db.OpenSQL()
	if err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to open sql handle: %w", err)
	}
	c.SQL = sqlDB

	if err := database.EnsureSchema(ctx, sqlDB); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	log.Info().Msg("Database connected, schema ready")

	// ========================================
	// STEP 2: CACHE
	// ========================================
	c.Cache = c.initCache(ctx)

	// ========================================
	// STEP 3-5: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("DI container initialized")
	return c, nil
}

// initCache returns Redis when enabled and reachable. Redis failure is
// not critical: reads fall through to Postgres.
func (c *Container) initCache(ctx context.Context) cache.Cache {
	rc := c.Config.Redis
	if !rc.Enabled {
		log.Info().Msg("Redis disabled, caching off")
		return cache.NewNoop()
	}

	client := infraCache.NewRedisClient(rc.Host, rc.Password, rc.DB)
	if err := client.Connect(ctx); err != nil {
		log.Warn().Err(err).Str("host", rc.Host).Msg("Redis connection failed (non-critical), caching off")
		_ = client.Close()
		return cache.NewNoop()
	}

	log.Info().Str("host", rc.Host).Msg("Redis connected")
	return client
}

func (c *Container) initRepositories() {
	ttl := c.Config.Redis.CacheTTL
	c.AuthorRepo = authorRepo.NewPostgresRepository(c.SQL, c.Cache, ttl)
	c.PostRepo = postRepo.NewPostgresRepository(c.SQL, c.Cache, ttl)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.PostService = postService.NewPostService(c.PostRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
}

// HealthCheck pings the database and the cache
func (c *Container) HealthCheck(ctx context.Context) map[string]error {
	return map[string]error{
		"database": c.DB.HealthCheck(ctx),
		"cache":    c.Cache.Ping(ctx),
	}
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources")

	if c.SQL != nil {
		if err := c.SQL.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close sql handle")
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisClient); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}
}
