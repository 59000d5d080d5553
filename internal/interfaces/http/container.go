package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ticketdesk/ticketdesk/internal/infrastructure/config"
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/ratelimit"
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/storage"
	"github.com/ticketdesk/ticketdesk/internal/interfaces/http/middleware"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

const redisPingTimeout = 3 * time.Second

// Container holds the infrastructure components, repositories, use cases and
// handlers, wired together. Shutdown releases what it opened.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client
	files  *storage.FileStore

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	uploadLimiter *middleware.RateLimiter
}

// NewContainer wires the application against the upload directory named in cfg.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	files, err := storage.NewOSFileStore(cfg.Storage.UploadDir)
	if err != nil {
		return nil, err
	}
	return NewContainerWithFiles(db, cfg, files, log), nil
}

// NewContainerWithFiles is NewContainer with an explicit file store.
func NewContainerWithFiles(db *gorm.DB, cfg *config.Config, files *storage.FileStore, log logger.Interface) *Container {
	engine := gin.New()
	engine.RedirectTrailingSlash = true

	c := &Container{
		engine: engine,
		db:     db,
		cfg:    cfg,
		log:    log,
		files:  files,
	}

	c.initRateLimiting()
	c.initRepositories()
	c.initUseCases()
	c.initHandlers()

	return c
}

// initRateLimiting uses Redis when enabled and reachable, and falls back to
// in-process counters otherwise.
func (c *Container) initRateLimiting() {
	var limiter ratelimit.RateLimiter = ratelimit.NewMemoryRateLimiter()

	if c.cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		err := client.Ping(ctx).Err()
		cancel()

		if err != nil {
			c.log.Warnw("redis unreachable, rate limiting in memory",
				"addr", c.cfg.Redis.GetAddr(),
				"error", err,
			)
			_ = client.Close()
		} else {
			c.log.Infow("redis connected", "addr", c.cfg.Redis.GetAddr())
			c.redis = client
			limiter = ratelimit.NewRedisRateLimiter(client)
		}
	}

	c.uploadLimiter = middleware.NewRateLimiter(limiter, "upload", ratelimit.RateLimitConfig{
		RequestsPerMinute: c.cfg.RateLimit.UploadPerMinute,
	}, c.log)
}

// Shutdown releases connections opened by the container. The database is
// owned by the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
