package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dtroode/workflow-tracker-server/internal/apierror"
	"github.com/dtroode/workflow-tracker-server/internal/logger"
)

// messageResponse is the body of every non-listing response.
type messageResponse struct {
	Message string `json:"message"`
}

// handleError writes err to the client. Errors without a client-facing
// message become 500 with fallback as the body.
func handleError(c fiber.Ctx, err error, fallback string) error {
	if apiErr, ok := apierror.As(err); ok {
		return c.Status(apiErr.Status).JSON(messageResponse{Message: apiErr.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(messageResponse{Message: fallback})
}

// logFailure logs rejected client input at debug level and everything else
// at error level.
func logFailure(l *logger.Logger, msg string, err error, args ...any) {
	args = append(args, "error", err.Error())
	if _, ok := apierror.As(err); ok {
		l.Debug(msg, args...)
		return
	}
	l.Error(msg, args...)
}
