package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/dtroode/workflow-tracker-server/internal/logger"
)

// WorkflowService defines workflow log operations.
type WorkflowService interface {
	Submit(ctx context.Context, email, entry string) error
	List(ctx context.Context, email string) ([]string, error)
}

// Workflow handles HTTP endpoints for workflow entries.
type Workflow struct {
	workflowService WorkflowService
	logger          *logger.Logger
}

// NewWorkflow creates a new Workflow handler.
func NewWorkflow(workflowService WorkflowService, logger *logger.Logger) *Workflow {
	return &Workflow{
		workflowService: workflowService,
		logger:          logger,
	}
}

type submitRequest struct {
	Email string `json:"email"`
	Entry string `json:"entry"`
}

type listResponse struct {
	Workflows []string `json:"workflows"`
}

// Submit appends an entry to the caller's workflow log.
func (h *Workflow) Submit(c fiber.Ctx) error {
	var req submitRequest
	if err := c.Bind().JSON(&req); err != nil {
		h.logger.Debug("Workflow handler: unreadable submit body",
			"error", err.Error())
		req = submitRequest{}
	}

	err := h.workflowService.Submit(c.Context(), req.Email, req.Entry)
	if err != nil {
		logFailure(h.logger, "Workflow handler: submit failed", err,
			"email", req.Email)
		return handleError(c, err, "Error saving workflow")
	}

	return c.Status(fiber.StatusOK).JSON(messageResponse{Message: "Workflow submitted and saved!"})
}

// List returns the formatted entries for the email query parameter.
func (h *Workflow) List(c fiber.Ctx) error {
	email := c.Query("email")

	workflows, err := h.workflowService.List(c.Context(), email)
	if err != nil {
		logFailure(h.logger, "Workflow handler: list failed", err,
			"email", email)
		return handleError(c, err, "Failed to retrieve workflows")
	}

	if workflows == nil {
		workflows = []string{}
	}

	return c.Status(fiber.StatusOK).JSON(listResponse{Workflows: workflows})
}
