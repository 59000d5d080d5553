package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	voicenotehandlers "github.com/ticketdesk/ticketdesk/internal/interfaces/http/handlers/voicenote"
)

type VoiceNoteRouteConfig struct {
	VoiceNoteHandler *voicenotehandlers.Handler
	// UploadLimit is applied to uploads only; nil disables limiting.
	UploadLimit gin.HandlerFunc
	// Files serves stored uploads under PublicPrefix.
	Files        http.FileSystem
	PublicPrefix string
}

func SetupVoiceNoteRoutes(engine *gin.Engine, config *VoiceNoteRouteConfig) {
	voiceNotes := engine.Group("/voice-notes")
	{
		upload := []gin.HandlerFunc{config.VoiceNoteHandler.Upload}
		if config.UploadLimit != nil {
			upload = append([]gin.HandlerFunc{config.UploadLimit}, upload...)
		}
		voiceNotes.POST("/upload", upload...)
		voiceNotes.DELETE("/:filename", config.VoiceNoteHandler.Delete)
	}

	if config.Files != nil && config.PublicPrefix != "" {
		engine.StaticFS(config.PublicPrefix, config.Files)
	}
}
