package controller

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

// healthEnvKeys are reported by presence only, never by value.
var healthEnvKeys = []string{
	"DB_CONNECTION_STRING",
	"OWNER_ID",
	"OPENAI_API_KEY",
	"SESSION_SECRET",
	"PASSPHRASE_HASH",
	"SMTP_HOST",
}

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Check(ctx *fiber.Ctx) error
}

type healthController struct{}

func NewHealthController() IHealthController {
	return &healthController{}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Check)
	r.All("/health", methodNotAllowed)
}

func (c *healthController) Check(ctx *fiber.Ctx) error {
	present := make(map[string]bool, len(healthEnvKeys))
	for _, key := range healthEnvKeys {
		present[key] = os.Getenv(key) != ""
	}
	return ctx.JSON(fiber.Map{
		"ok":      true,
		"present": present,
	})
}
