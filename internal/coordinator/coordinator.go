package coordinator

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/YousifAziz000/lifting-bot-rlbr/internal/backend"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/catalog"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/config"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/models"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/ranker"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/storage"
)

// ErrNoActiveSession signals a log or end command on a channel with no open
// session. The check is local and never reaches the backend.
var ErrNoActiveSession = errors.New("no active session")

// Coordinator drives the three user-visible workout operations by combining
// the session store, the backend client and the catalog cache, and decides
// what is shown to the user.
type Coordinator struct {
	sessions storage.SessionStore
	backend  backend.Submitter
	catalog  *catalog.Cache
}

// New creates a coordinator over the given collaborators.
func New(sessions storage.SessionStore, b backend.Submitter, cat *catalog.Cache) *Coordinator {
	return &Coordinator{
		sessions: sessions,
		backend:  b,
		catalog:  cat,
	}
}

// StartSession submits session_start with the plan text (possibly empty) and
// on success records the returned session id, superseding any prior session
// on the channel. The rendered checklist keeps only entries whose exercise
// is present in the catalog snapshot; unknown names from free-text plan
// parsing are dropped silently. A failed start leaves the channel with no
// recorded session at all.
func (c *Coordinator) StartSession(ctx context.Context, channelID, plan string) (*models.RenderInstruction, error) {
	reply, err := c.backend.Submit(ctx, "session_start", map[string]any{
		"channel_id": channelID,
		"plan":       plan,
	})
	if err != nil {
		c.sessions.End(channelID)
		config.Logger.Warnf("Session start failed for channel %s: %v", channelID, err)
		return nil, err
	}

	c.sessions.Start(channelID, reply.SessionID)
	config.Logger.WithFields(logrus.Fields{
		"channel": channelID,
		"session": reply.SessionID,
	}).Info("Session started")

	return models.Message(startMessage(c.filterChecklist(reply.Checklist))), nil
}

// LogSet submits one set against the channel's active session and renders
// the confirmation plus the backend's next-target hint when present.
func (c *Coordinator) LogSet(ctx context.Context, channelID string, entry models.SetEntry) (*models.RenderInstruction, error) {
	session, ok := c.sessions.Get(channelID)
	if !ok {
		return nil, ErrNoActiveSession
	}

	reply, err := c.backend.Submit(ctx, "log_set", map[string]any{
		"session_id": session.SessionID,
		"exercise":   entry.Exercise,
		"weight":     entry.Weight,
		"reps":       entry.Reps,
		"notes":      entry.Notes,
	})
	if err != nil {
		config.Logger.Warnf("Log set failed for channel %s: %v", channelID, err)
		return nil, err
	}

	return models.Message(logMessage(entry, reply.NextTarget)), nil
}

// EndSession submits session_end and on success clears the channel's session
// and surfaces the backend summary verbatim. On failure the session stays
// active so the user can retry ending it.
func (c *Coordinator) EndSession(ctx context.Context, channelID string) (*models.RenderInstruction, error) {
	session, ok := c.sessions.Get(channelID)
	if !ok {
		return nil, ErrNoActiveSession
	}

	reply, err := c.backend.Submit(ctx, "session_end", map[string]any{
		"session_id": session.SessionID,
	})
	if err != nil {
		config.Logger.Warnf("Session end failed for channel %s: %v", channelID, err)
		return nil, err
	}

	c.sessions.End(channelID)
	config.Logger.WithFields(logrus.Fields{
		"channel": channelID,
		"session": session.SessionID,
	}).Info("Session ended")

	return models.Message(endMessage(reply.SummaryText)), nil
}

// Autocomplete ranks the current catalog snapshot against the partial query.
// It never fails and never blocks on network I/O.
func (c *Coordinator) Autocomplete(query string) *models.RenderInstruction {
	names := ranker.Rank(query, c.catalog.CurrentNames(), config.MaxAutocompleteSuggestions)
	return models.Suggestions(names)
}

// filterChecklist keeps the items whose exercise appears in one consistent
// catalog snapshot, preserving backend order.
func (c *Coordinator) filterChecklist(items []models.ChecklistItem) []models.ChecklistItem {
	if len(items) == 0 {
		return nil
	}

	known := make(map[string]struct{})
	for _, name := range c.catalog.CurrentNames() {
		known[name] = struct{}{}
	}

	var visible []models.ChecklistItem
	for _, item := range items {
		if _, ok := known[item.Exercise]; ok {
			visible = append(visible, item)
		}
	}
	return visible
}
