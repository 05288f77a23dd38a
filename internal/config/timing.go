package config

import "time"

// Default timing and sizing values used throughout the bot.
const (
	// CatalogRefreshTimeout bounds one list_exercises round trip; on expiry
	// the cache keeps serving its previous snapshot.
	CatalogRefreshTimeout = 2 * time.Second

	// CatalogRefreshInterval is how often the exercise catalog is re-fetched
	// in the background, independent of user traffic.
	CatalogRefreshInterval = 5 * time.Minute

	// MaxAutocompleteSuggestions is the chat platform's hard ceiling on the
	// length of a suggestion list.
	MaxAutocompleteSuggestions = 25
)
