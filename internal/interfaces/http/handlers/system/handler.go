package system

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticketdesk/ticketdesk/internal/application/system/usecases"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
	"github.com/ticketdesk/ticketdesk/internal/shared/utils"
)

const welcomeMessage = "Welcome to the Ticket System API"

type Handler struct {
	healthUC usecases.GetHealthExecutor
	version  string
	logger   logger.Interface
}

func NewHandler(healthUC usecases.GetHealthExecutor, version string, logger logger.Interface) *Handler {
	return &Handler{healthUC: healthUC, version: version, logger: logger}
}

// Root handles GET /
// @Summary Service banner
// @Tags system
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router / [get]
func (h *Handler) Root(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, welcomeMessage, gin.H{
		"message": welcomeMessage,
		"version": h.version,
	})
}

// Health handles GET /health
// @Summary Database connectivity and record counts
// @Tags system
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.SystemStatus}
// @Failure 503 {object} utils.APIResponse{data=dto.SystemStatus}
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	status, err := h.healthUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !status.Healthy() {
		c.JSON(http.StatusServiceUnavailable, utils.APIResponse{
			Success: false,
			Data:    status,
			Message: "Service unhealthy",
		})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", status)
}
