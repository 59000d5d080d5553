package voicenote

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticketdesk/ticketdesk/internal/application/voicenote/usecases"
	"github.com/ticketdesk/ticketdesk/internal/shared/constants"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
	"github.com/ticketdesk/ticketdesk/internal/shared/utils"
)

type Handler struct {
	uploadUC    usecases.UploadVoiceNoteExecutor
	deleteUC    usecases.DeleteVoiceNoteExecutor
	maxFileSize int64
	logger      logger.Interface
}

func NewHandler(
	uploadUC usecases.UploadVoiceNoteExecutor,
	deleteUC usecases.DeleteVoiceNoteExecutor,
	maxFileSize int64,
	logger logger.Interface,
) *Handler {
	if maxFileSize <= 0 {
		maxFileSize = constants.DefaultMaxFileSize
	}
	return &Handler{
		uploadUC:    uploadUC,
		deleteUC:    deleteUC,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Upload handles POST /voice-notes/upload
// @Summary Upload a voice note
// @Description Stores an audio file as a standalone voice note that a ticket or draft can claim by filename.
// @Tags voice-notes
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file"
// @Success 201 {object} utils.APIResponse{data=dto.UploadResultDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /voice-notes/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.logger.Warnw("missing upload file", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("file is required"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file could not be read"))
		return
	}
	defer f.Close()

	// Read one byte past the cap so oversize uploads are detected without
	// buffering the whole body.
	data, err := io.ReadAll(io.LimitReader(f, h.maxFileSize+1))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file could not be read"))
		return
	}

	result, err := h.uploadUC.Execute(c.Request.Context(), usecases.UploadVoiceNoteCommand{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Voice note uploaded successfully")
}

// Delete handles DELETE /voice-notes/:filename
// @Summary Delete a stored voice note file
// @Tags voice-notes
// @Produce json
// @Param filename path string true "Stored filename"
// @Success 200 {object} utils.APIResponse{data=usecases.DeleteVoiceNoteResult}
// @Failure 404 {object} utils.APIResponse
// @Router /voice-notes/{filename} [delete]
func (h *Handler) Delete(c *gin.Context) {
	result, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteVoiceNoteCommand{
		Filename: c.Param("filename"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Voice note deleted successfully", result)
}
