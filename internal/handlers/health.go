package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/YousifAziz000/lifting-bot-rlbr/internal/catalog"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/storage"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	Version    string
	store      storage.SessionStore
	catalog    *catalog.Cache
	backendURL string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string, store storage.SessionStore, cache *catalog.Cache, backendURL string) *HealthHandler {
	return &HealthHandler{
		Version:    version,
		store:      store,
		catalog:    cache,
		backendURL: backendURL,
	}
}

// Check returns the health status of the service
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	catalogInfo := fiber.Map{
		"size":      h.catalog.Size(),
		"refreshed": h.catalog.Refreshed(),
	}
	if t := h.catalog.FetchedAt(); !t.IsZero() {
		catalogInfo["fetched_at"] = t.UTC().Format(time.RFC3339)
	}

	return c.JSON(fiber.Map{
		"status":  "OK",
		"service": "Lifting Bot",
		"version": h.Version,
		"backend": fiber.Map{
			"configured": h.backendURL != "",
		},
		"catalog":         catalogInfo,
		"active_sessions": len(h.store.Active()),
	})
}
