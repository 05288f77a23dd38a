package models

// Event types delivered by the chat platform to the command webhook.
const (
	EventCommand      = "command"
	EventAutocomplete = "autocomplete"
	EventFormSubmit   = "form_submit"
)

// Command names understood by the bot.
const (
	CommandStart = "start"
	CommandLog   = "log"
	CommandEnd   = "end"
)

// CommandEvent is one inbound chat-platform event: a slash-command
// invocation, an autocomplete probe while the user is still typing, or the
// submission of a previously opened plan form.
type CommandEvent struct {
	Type      string         `json:"type"`
	ChannelID string         `json:"channel_id"`
	Command   string         `json:"command,omitempty"`
	Options   CommandOptions `json:"options"`
}

// CommandOptions carries the option values of a command invocation. Plan is
// a pointer so an omitted plan option (which opens the plan form) stays
// distinguishable from an explicitly empty plan.
type CommandOptions struct {
	Plan     *string `json:"plan,omitempty"`
	Exercise string  `json:"exercise,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Reps     int     `json:"reps,omitempty"`
	Notes    string  `json:"notes,omitempty"`
	Query    string  `json:"query,omitempty"`
}
