package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/YousifAziz000/lifting-bot-rlbr/internal/config"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/coordinator"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/models"
)

// CommandHandler handles chat platform webhook events
type CommandHandler struct {
	coordinator *coordinator.Coordinator
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(coord *coordinator.Coordinator) *CommandHandler {
	return &CommandHandler{coordinator: coord}
}

// HandleEvent processes one platform event. The render instruction travels
// back in the webhook response body; operation failures still answer 200 so
// the platform shows the rendered error to the user.
func (h *CommandHandler) HandleEvent(c *fiber.Ctx) error {
	var event models.CommandEvent

	if err := c.BodyParser(&event); err != nil {
		config.Logger.Warnf("Error parsing platform event: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event payload",
		})
	}

	if event.ChannelID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing channel_id",
		})
	}

	config.Logger.Infof("📱 %s event on channel %s", event.Type, event.ChannelID)

	switch event.Type {
	case models.EventAutocomplete:
		return c.JSON(h.coordinator.Autocomplete(event.Options.Query))
	case models.EventCommand:
		return c.JSON(h.runCommand(c.Context(), event))
	case models.EventFormSubmit:
		// The plan form posts back with the plan text filled in.
		return c.JSON(h.startSession(c.Context(), event.ChannelID, event.Options.Plan))
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Unknown event type",
	})
}

func (h *CommandHandler) runCommand(ctx context.Context, event models.CommandEvent) *models.RenderInstruction {
	switch event.Command {
	case models.CommandStart:
		// No plan option means the user wants the form.
		if event.Options.Plan == nil {
			return h.coordinator.PlanForm()
		}
		return h.startSession(ctx, event.ChannelID, event.Options.Plan)

	case models.CommandLog:
		entry := models.SetEntry{
			Exercise: event.Options.Exercise,
			Weight:   event.Options.Weight,
			Reps:     event.Options.Reps,
			Notes:    event.Options.Notes,
		}
		instruction, err := h.coordinator.LogSet(ctx, event.ChannelID, entry)
		if err != nil {
			return h.coordinator.RenderError(err)
		}
		return instruction

	case models.CommandEnd:
		instruction, err := h.coordinator.EndSession(ctx, event.ChannelID)
		if err != nil {
			return h.coordinator.RenderError(err)
		}
		return instruction
	}

	return models.Message("❌ Unknown command. Try /workout start, log or end.")
}

func (h *CommandHandler) startSession(ctx context.Context, channelID string, plan *string) *models.RenderInstruction {
	text := ""
	if plan != nil {
		text = *plan
	}

	instruction, err := h.coordinator.StartSession(ctx, channelID, text)
	if err != nil {
		return h.coordinator.RenderError(err)
	}
	return instruction
}

// HandleTestEvent processes platform events without signature validation
// (for development)
func (h *CommandHandler) HandleTestEvent(c *fiber.Ctx) error {
	var event models.CommandEvent

	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid test payload",
		})
	}

	config.Logger.Infof("🧪 Test %s event on channel %s", event.Type, event.ChannelID)

	if event.Type == models.EventAutocomplete {
		return c.JSON(fiber.Map{
			"success":     true,
			"instruction": h.coordinator.Autocomplete(event.Options.Query),
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"instruction": h.runCommand(c.Context(), event),
	})
}
