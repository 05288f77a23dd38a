package models

// Render instruction kinds understood by the chat-platform presentation
// layer.
const (
	RenderMessage     = "message"
	RenderSuggestions = "suggestions"
	RenderForm        = "form"
)

// RenderInstruction tells the presentation layer what to show in the
// requesting channel: a text message, an autocomplete suggestion list, or a
// request to open the workout-plan form.
type RenderInstruction struct {
	Type        string      `json:"type"`
	Text        string      `json:"text,omitempty"`
	Suggestions []string    `json:"suggestions,omitempty"`
	Form        *FormPrompt `json:"form,omitempty"`
}

// FormPrompt asks the platform to open a multi-line text input form. The
// submitted value is handed back as a form_submit event and treated exactly
// like an inline plan text.
type FormPrompt struct {
	Title       string `json:"title"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder,omitempty"`
}

// Message builds a plain text render instruction.
func Message(text string) *RenderInstruction {
	return &RenderInstruction{Type: RenderMessage, Text: text}
}

// Suggestions builds an autocomplete suggestion render instruction.
func Suggestions(names []string) *RenderInstruction {
	return &RenderInstruction{Type: RenderSuggestions, Suggestions: names}
}
