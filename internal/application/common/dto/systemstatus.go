// Package dto provides data transfer objects shared across domains.
package dto

// EntityCounts is the number of stored rows per aggregate.
type EntityCounts struct {
	Users                int64 `json:"users"`
	Tickets              int64 `json:"tickets"`
	Drafts               int64 `json:"drafts"`
	VoiceNotes           int64 `json:"voice_notes"`
	StandaloneVoiceNotes int64 `json:"standalone_voice_notes"`
}

// SystemStatus is reported by the health endpoint.
type SystemStatus struct {
	Status   string       `json:"status"`
	Database string       `json:"database"`
	Version  string       `json:"version,omitempty"`
	Counts   EntityCounts `json:"counts"`
	// Error is set when the database could not be reached.
	Error string `json:"error,omitempty"`
}

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// Healthy reports whether the service can serve requests.
func (s SystemStatus) Healthy() bool {
	return s.Status == StatusHealthy
}
