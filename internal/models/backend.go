package models

// BackendReply is the JSON envelope every workout-backend operation answers
// with. Only the fields relevant to the submitted operation are populated.
// Field spellings, including the camelCase nextTarget, are the scripting
// backend's contract and must not be normalized.
type BackendReply struct {
	Success     bool            `json:"success"`
	Error       string          `json:"error,omitempty"`
	SessionID   string          `json:"session_id,omitempty"`
	Checklist   []ChecklistItem `json:"checklist,omitempty"`
	Exercises   []string        `json:"exercises,omitempty"`
	SummaryText string          `json:"summary_text,omitempty"`
	NextTarget  *NextTarget     `json:"nextTarget,omitempty"`
}
