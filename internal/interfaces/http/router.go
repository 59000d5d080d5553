package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ticketdesk/ticketdesk/internal/application/user/dto"
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/config"
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/storage"
	"github.com/ticketdesk/ticketdesk/internal/interfaces/http/middleware"
	"github.com/ticketdesk/ticketdesk/internal/interfaces/http/routes"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"

	_ "github.com/ticketdesk/ticketdesk/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates the router with every dependency wired.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// NewRouterWithFiles is NewRouter with an explicit file store.
func NewRouterWithFiles(db *gorm.DB, cfg *config.Config, files *storage.FileStore, log logger.Interface) *Router {
	return &Router{Container: NewContainerWithFiles(db, cfg, files, log)}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.ErrorHandler(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	routes.SetupSystemRoutes(r.engine, &routes.SystemRouteConfig{
		SystemHandler: r.hdlrs.systemHandler,
		EnableSwagger: r.cfg.Server.Mode != gin.ReleaseMode,
	})

	routes.SetupVoiceNoteRoutes(r.engine, &routes.VoiceNoteRouteConfig{
		VoiceNoteHandler: r.hdlrs.voiceNoteHandler,
		UploadLimit:      r.uploadLimiter.Limit(),
		Files:            r.files.HTTPFileSystem(),
		PublicPrefix:     r.cfg.Storage.PublicPrefix,
	})

	// Tickets and drafts belong to the default user until authentication exists.
	owned := []gin.HandlerFunc{
		middleware.DefaultUser(r.ucs.ensureUserUC, r.defaultIdentity(), r.log),
		middleware.SanitizeFields("subject"),
	}

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler: r.hdlrs.ticketHandler,
		Middleware:    owned,
	})
	routes.SetupDraftRoutes(r.engine, &routes.DraftRouteConfig{
		DraftHandler: r.hdlrs.draftHandler,
		Middleware:   owned,
	})
}

// EnsureDefaultUser creates the default user ahead of the first request.
func (r *Router) EnsureDefaultUser(ctx context.Context) error {
	_, err := r.ucs.ensureUserUC.Execute(ctx, r.defaultIdentity())
	return err
}

func (r *Router) defaultIdentity() dto.EnsureUserRequest {
	return dto.EnsureUserRequest{
		Email:    r.cfg.DefaultUser.Email,
		Username: r.cfg.DefaultUser.Username,
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
