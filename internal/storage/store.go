package storage

import (
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/models"
)

// SessionStore defines the interface for per-channel session tracking. A
// channel maps to at most one active session; only session-start and
// session-end mutate the mapping.
type SessionStore interface {
	// Get returns the active session for a channel, if any.
	Get(channelID string) (*models.Session, bool)

	// Start records sessionID as the channel's active session,
	// unconditionally overwriting any prior value. The backend is the source
	// of truth for whether starting over is permitted, so no error is raised
	// for an already-active channel.
	Start(channelID, sessionID string) *models.Session

	// End clears the channel's active session. It is idempotent: ending a
	// channel with no session is a no-op.
	End(channelID string)

	// Active returns all currently tracked sessions (for monitoring).
	Active() []*models.Session
}
