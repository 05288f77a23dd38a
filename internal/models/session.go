package models

import "time"

// Session ties one conversation channel to an open workout session. The
// session id is issued by the workout backend on session_start; a channel
// holds at most one session at a time. Session state lives in process memory
// only and is rebuilt empty on restart.
type Session struct {
	ChannelID string    `json:"channel_id"`
	SessionID string    `json:"session_id"`
	StartedAt time.Time `json:"started_at"`
}
