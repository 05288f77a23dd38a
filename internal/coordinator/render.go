package coordinator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/YousifAziz000/lifting-bot-rlbr/internal/backend"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/models"
)

// PlanForm asks the platform to open the multi-line plan input. The submitted
// text re-enters StartSession unchanged.
func (c *Coordinator) PlanForm() *models.RenderInstruction {
	return &models.RenderInstruction{
		Type: models.RenderForm,
		Form: &models.FormPrompt{
			Title:       "Plan today's workout",
			Label:       "One exercise per line, with optional target weight and reps",
			Placeholder: "Bench Press 100 5\nSquat 140 3",
		},
	}
}

// RenderError turns an operation error into the message shown to the user.
// Backend rejection messages are surfaced verbatim.
func (c *Coordinator) RenderError(err error) *models.RenderInstruction {
	var rejected *backend.RejectedError

	switch {
	case errors.Is(err, ErrNoActiveSession):
		return models.Message("❌ No active session. Start one with /workout start first.")
	case errors.As(err, &rejected):
		return models.Message("❌ " + rejected.Message)
	case errors.Is(err, backend.ErrTimeout):
		return models.Message("⏳ The workout service took too long to respond. Please try again.")
	case errors.Is(err, backend.ErrUnavailable):
		return models.Message("❌ Could not reach the workout service. Please try again in a moment.")
	}

	return models.Message("❌ Sorry, something went wrong. Please try again.")
}

func startMessage(items []models.ChecklistItem) string {
	if len(items) == 0 {
		return "💪 Session started! Log your first set when you're ready."
	}

	var b strings.Builder
	b.WriteString("💪 Session started!\n\n📋 Today's checklist:\n")
	for _, item := range items {
		b.WriteString(checklistRow(item))
		b.WriteString("\n")
	}
	b.WriteString("\nLog each set as you finish it.")
	return b.String()
}

func checklistRow(item models.ChecklistItem) string {
	switch {
	case item.TargetWeight != nil && item.TargetReps != nil:
		return fmt.Sprintf("• %s: %s kg × %d", item.Exercise, formatWeight(*item.TargetWeight), *item.TargetReps)
	case item.TargetWeight != nil:
		return fmt.Sprintf("• %s: %s kg", item.Exercise, formatWeight(*item.TargetWeight))
	case item.TargetReps != nil:
		return fmt.Sprintf("• %s: %d reps", item.Exercise, *item.TargetReps)
	}
	return "• " + item.Exercise
}

func logMessage(entry models.SetEntry, next *models.NextTarget) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Logged %s: %s kg × %d", entry.Exercise, formatWeight(entry.Weight), entry.Reps)
	if entry.Notes != "" {
		b.WriteString("\n📝 " + entry.Notes)
	}
	if hint := targetHint(next); hint != "" {
		b.WriteString("\n🎯 Next target: " + hint)
	}
	return b.String()
}

func targetHint(next *models.NextTarget) string {
	if next == nil {
		return ""
	}
	switch {
	case next.TargetWeight != nil && next.TargetReps != nil:
		return fmt.Sprintf("%s kg × %d", formatWeight(*next.TargetWeight), *next.TargetReps)
	case next.TargetWeight != nil:
		return formatWeight(*next.TargetWeight) + " kg"
	case next.TargetReps != nil:
		return fmt.Sprintf("%d reps", *next.TargetReps)
	}
	return ""
}

func endMessage(summary string) string {
	if summary == "" {
		return "🏁 Session complete. See you next time!"
	}
	return summary
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
