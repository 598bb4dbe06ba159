package handler

import "github.com/gofiber/fiber/v3"

// LivenessMessage is the body served at the root path.
const LivenessMessage = "Workflow Tracker API is live and running!"

// Live answers the liveness check without touching storage.
func Live(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString(LivenessMessage)
}
