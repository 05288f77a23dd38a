package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"github.com/gofiber/fiber/v2"

	"github.com/YousifAziz000/lifting-bot-rlbr/internal/config"
)

// ValidateSignature validates that a webhook request was signed by the chat
// platform. The platform signs the raw request body with HMAC-SHA256 and
// sends the base64 digest in X-Liftbot-Signature.
func ValidateSignature(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get("X-Liftbot-Signature")
		if signature == "" {
			return c.Status(401).JSON(fiber.Map{
				"error": "Missing platform signature",
			})
		}

		if secret == "" {
			// Log error but don't expose to client
			config.Logger.Error("PLATFORM_SIGNING_SECRET not set")
			return c.Status(500).JSON(fiber.Map{
				"error": "Server configuration error",
			})
		}

		expected := calculateSignature(secret, c.Body())
		if !hmac.Equal([]byte(signature), []byte(expected)) {
			return c.Status(401).JSON(fiber.Map{
				"error": "Invalid signature",
			})
		}

		return c.Next()
	}
}

// calculateSignature computes the base64 HMAC-SHA256 digest of the body.
func calculateSignature(secret string, body []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
