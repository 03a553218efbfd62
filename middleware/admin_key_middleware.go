package middleware

import (
	"crypto/subtle"

	"f1viz-backend/config"
	apimodels "f1viz-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

// AdminKeyRequired protects the ingest endpoints with a static API key.
func AdminKeyRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		key := config.Conf.App.AdminAPIKey
		if key == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("admin API is disabled"))
		}
		provided := ctx.Get("X-Api-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			return ctx.SendStatus(fiber.StatusUnauthorized)
		}
		return ctx.Next()
	}
}
