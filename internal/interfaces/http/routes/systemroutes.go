package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	systemhandlers "github.com/ticketdesk/ticketdesk/internal/interfaces/http/handlers/system"
)

type SystemRouteConfig struct {
	SystemHandler *systemhandlers.Handler
	EnableSwagger bool
}

func SetupSystemRoutes(engine *gin.Engine, config *SystemRouteConfig) {
	engine.GET("/", config.SystemHandler.Root)
	engine.GET("/health", config.SystemHandler.Health)

	if config.EnableSwagger {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
