package draft

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticketdesk/ticketdesk/internal/application/draft/usecases"
	"github.com/ticketdesk/ticketdesk/internal/interfaces/http/handlers/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
	"github.com/ticketdesk/ticketdesk/internal/shared/utils"
)

// SaveDraftRequest replaces the caller's draft wholesale.
type SaveDraftRequest struct {
	Subject     string                       `json:"subject" validate:"max=500"`
	Description string                       `json:"description"`
	Status      string                       `json:"status"`
	Priority    string                       `json:"priority"`
	Type        string                       `json:"type"`
	VoiceNotes  []voicenote.VoiceNoteRequest `json:"voice_notes" validate:"omitempty,dive"`
}

type Handler struct {
	saveDraftUC   usecases.SaveDraftExecutor
	getDraftUC    usecases.GetDraftExecutor
	deleteDraftUC usecases.DeleteDraftExecutor
	logger        logger.Interface
}

func NewHandler(
	saveDraftUC usecases.SaveDraftExecutor,
	getDraftUC usecases.GetDraftExecutor,
	deleteDraftUC usecases.DeleteDraftExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		saveDraftUC:   saveDraftUC,
		getDraftUC:    getDraftUC,
		deleteDraftUC: deleteDraftUC,
		logger:        logger,
	}
}

// SaveDraft handles POST /drafts
// @Summary Save the current user's draft
// @Description Any existing draft and its voice notes are discarded first.
// @Tags drafts
// @Accept json
// @Produce json
// @Param request body SaveDraftRequest true "Draft"
// @Success 200 {object} utils.APIResponse{data=dto.DraftDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /drafts [post]
func (h *Handler) SaveDraft(c *gin.Context) {
	var req SaveDraftRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for save draft", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.saveDraftUC.Execute(c.Request.Context(), usecases.SaveDraftCommand{
		OwnerID:     userID,
		Subject:     req.Subject,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Type:        req.Type,
		VoiceNotes:  voicenote.ToInputs(req.VoiceNotes),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Draft saved successfully", result)
}

// GetDraft handles GET /drafts
// @Summary Get the current user's draft
// @Description data is null when no draft exists.
// @Tags drafts
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.DraftDTO}
// @Router /drafts [get]
func (h *Handler) GetDraft(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getDraftUC.Execute(c.Request.Context(), usecases.GetDraftQuery{OwnerID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		utils.NullDataResponse(c, "No draft found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteDraft handles DELETE /drafts
// @Summary Delete the current user's draft
// @Tags drafts
// @Produce json
// @Success 200 {object} utils.APIResponse{data=usecases.DeleteDraftResult}
// @Failure 404 {object} utils.APIResponse
// @Router /drafts [delete]
func (h *Handler) DeleteDraft(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteDraftUC.Execute(c.Request.Context(), usecases.DeleteDraftCommand{OwnerID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Draft deleted successfully", result)
}
