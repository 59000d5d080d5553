package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/ticketdesk/ticketdesk/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
	// Middleware runs before every ticket route (default user, sanitising).
	Middleware []gin.HandlerFunc
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.Middleware...)
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// External identifier routes mirror the numeric ones.
		tickets.GET("/uuid/:uuid", config.TicketHandler.GetTicket)
		tickets.PUT("/uuid/:uuid", config.TicketHandler.UpdateTicket)
		tickets.PUT("/uuid/:uuid/status", config.TicketHandler.UpdateTicketStatus)
		tickets.DELETE("/uuid/:uuid", config.TicketHandler.DeleteTicket)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PUT("/:id", config.TicketHandler.UpdateTicket)
		tickets.PUT("/:id/status", config.TicketHandler.UpdateTicketStatus)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}
}
