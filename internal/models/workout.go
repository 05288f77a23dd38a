package models

// ChecklistItem is one planned exercise returned by the backend when a
// session starts. It is consumed once to build the session-start summary and
// never stored locally.
type ChecklistItem struct {
	Exercise     string   `json:"exercise"`
	TargetWeight *float64 `json:"target_weight,omitempty"`
	TargetReps   *int     `json:"target_reps,omitempty"`
}

// NextTarget is the backend's suggested weight/reps for the next set of the
// exercise that was just logged.
type NextTarget struct {
	TargetWeight *float64 `json:"target_weight,omitempty"`
	TargetReps   *int     `json:"target_reps,omitempty"`
}

// SetEntry carries the user-provided fields of a single logged set.
type SetEntry struct {
	Exercise string  `json:"exercise"`
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
	Notes    string  `json:"notes,omitempty"`
}
