package ticket

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticketdesk/ticketdesk/internal/application/ticket/usecases"
	"github.com/ticketdesk/ticketdesk/internal/shared/constants"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
	"github.com/ticketdesk/ticketdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	updateStatusUC usecases.UpdateTicketStatusExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	updateStatusUC usecases.UpdateTicketStatusExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		updateTicketUC: updateTicketUC,
		updateStatusUC: updateStatusUC,
		deleteTicketUC: deleteTicketUC,
		logger:         logger,
	}
}

// CreateTicket handles POST /tickets
// @Summary Create a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body CreateTicketRequest true "Ticket"
// @Success 201 {object} utils.APIResponse{data=dto.TicketDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// ListTickets handles GET /tickets
// @Summary List tickets
// @Description Unknown sort_by falls back to created_at; unknown sort_order falls back to desc.
// @Tags tickets
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Param sort_by query string false "created_at, updated_at, subject, status or priority"
// @Param sort_order query string false "asc or desc"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	skip, err := utils.QueryInt(c, "skip", constants.DefaultOffset)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	limit, err := utils.QueryInt(c, "limit", constants.DefaultLimit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Offset:    skip,
		Limit:     limit,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Offset, result.Limit)
}

// GetTicket handles GET /tickets/:id and GET /tickets/uuid/:uuid
// @Summary Get a ticket
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=dto.TicketDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ref, err := parseTicketRef(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketRef: ref})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PUT /tickets/:id and PUT /tickets/uuid/:uuid
// @Summary Update a ticket
// @Description Only fields present in the body change. A non-empty voice_notes list replaces all notes.
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body UpdateTicketRequest true "Changes"
// @Success 200 {object} utils.APIResponse{data=dto.TicketDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ref, err := parseTicketRef(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ref))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// UpdateTicketStatus handles PUT /tickets/:id/status and PUT /tickets/uuid/:uuid/status.
// The status comes from the status query parameter or a JSON body.
// @Summary Change ticket status
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param status query string false "New status"
// @Success 200 {object} utils.APIResponse{data=dto.TicketDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id}/status [put]
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	ref, err := parseTicketRef(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	status := c.Query("status")
	if status == "" {
		var req UpdateTicketStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
			utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
			return
		}
		status = req.Status
	}
	if status == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("status is required"))
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateTicketStatusCommand{
		TicketRef: ref,
		Status:    status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

// DeleteTicket handles DELETE /tickets/:id and DELETE /tickets/uuid/:uuid
// @Summary Delete a ticket and its voice notes
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=usecases.DeleteTicketResult}
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ref, err := parseTicketRef(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketRef: ref})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", result)
}

// parseTicketRef reads the uuid route parameter when present, the numeric id otherwise.
func parseTicketRef(c *gin.Context) (usecases.TicketRef, error) {
	if c.Param("uuid") != "" {
		uuid, err := utils.ParseUUIDParam(c, "uuid", "ticket")
		if err != nil {
			return usecases.TicketRef{}, err
		}
		return usecases.TicketRef{UUID: uuid}, nil
	}

	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		return usecases.TicketRef{}, err
	}
	return usecases.TicketRef{ID: id}, nil
}
