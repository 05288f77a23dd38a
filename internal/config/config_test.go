package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("fails without BACKEND_URL", func(t *testing.T) {
		t.Setenv("BACKEND_URL", "")
		t.Setenv("BACKEND_TOKEN", "token")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("fails without BACKEND_TOKEN", func(t *testing.T) {
		t.Setenv("BACKEND_URL", "http://localhost:9000")
		t.Setenv("BACKEND_TOKEN", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("applies defaults for port and environment", func(t *testing.T) {
		t.Setenv("BACKEND_URL", "http://localhost:9000")
		t.Setenv("BACKEND_TOKEN", "token")
		t.Setenv("PORT", "")
		t.Setenv("ENVIRONMENT", "")

		settings, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", settings.Port)
		assert.Equal(t, "development", settings.Environment)
	})

	t.Run("explicit values win over defaults", func(t *testing.T) {
		t.Setenv("BACKEND_URL", "http://backend:9000")
		t.Setenv("BACKEND_TOKEN", "token")
		t.Setenv("PORT", "3000")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("PLATFORM_SIGNING_SECRET", "shh")

		settings, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "3000", settings.Port)
		assert.Equal(t, "production", settings.Environment)
		assert.Equal(t, "http://backend:9000", settings.BackendURL)
		assert.Equal(t, "shh", settings.SigningSecret)
	})
}

func TestSkipWebhookValidation(t *testing.T) {
	t.Run("development skips validation", func(t *testing.T) {
		t.Setenv("DISABLE_WEBHOOK_VALIDATION", "")
		s := &Settings{Environment: "development"}
		assert.True(t, s.SkipWebhookValidation())
	})

	t.Run("production validates", func(t *testing.T) {
		t.Setenv("DISABLE_WEBHOOK_VALIDATION", "")
		s := &Settings{Environment: "production"}
		assert.False(t, s.SkipWebhookValidation())
	})

	t.Run("the override flag skips validation anywhere", func(t *testing.T) {
		t.Setenv("DISABLE_WEBHOOK_VALIDATION", "true")
		s := &Settings{Environment: "production"}
		assert.True(t, s.SkipWebhookValidation())
	})
}
