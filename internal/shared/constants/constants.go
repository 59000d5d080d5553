package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Env var prefix for configuration overrides (TICKETDESK_SERVER_PORT etc.)
	EnvPrefix = "TICKETDESK"

	// Listing defaults. There is deliberately no upper bound on the limit.
	DefaultOffset = 0
	DefaultLimit  = 100

	DefaultSortBy    = "created_at"
	DefaultSortOrder = "desc"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"

	HeaderXRequestID = "X-Request-ID"

	// Default user for the no-auth deployment
	DefaultUserEmail    = "admin@example.com"
	DefaultUserUsername = "admin"

	// Voice note storage
	DefaultUploadDir         = "uploads"
	DefaultPublicPrefix      = "/uploads"
	DefaultMaxFileSize       = 10 * 1024 * 1024
	DefaultVoiceNoteType     = "audio/wav"
	DefaultVoiceNoteExt      = ".wav"
	DefaultVoiceNoteFilename = "voice-note"

	// Database table names
	TableUsers      = "users"
	TableTickets    = "tickets"
	TableDrafts     = "drafts"
	TableVoiceNotes = "voice_notes"

	ErrMsgInternalServerError = "Internal server error occurred"
)

// DefaultAllowedContentTypes is the upload allow-list used when none is configured.
var DefaultAllowedContentTypes = []string{
	"audio/wav",
	"audio/mp3",
	"audio/m4a",
	"audio/ogg",
	"audio/webm",
}
