package routes

import (
	"github.com/gin-gonic/gin"

	drafthandlers "github.com/ticketdesk/ticketdesk/internal/interfaces/http/handlers/draft"
)

type DraftRouteConfig struct {
	DraftHandler *drafthandlers.Handler
	Middleware   []gin.HandlerFunc
}

func SetupDraftRoutes(engine *gin.Engine, config *DraftRouteConfig) {
	drafts := engine.Group("/drafts")
	drafts.Use(config.Middleware...)
	{
		drafts.POST("", config.DraftHandler.SaveDraft)
		drafts.GET("", config.DraftHandler.GetDraft)
		drafts.DELETE("", config.DraftHandler.DeleteDraft)
	}
}
