package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/dtroode/workflow-tracker-server/internal/logger"
)

// AccountService defines account registration and login operations.
type AccountService interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) error
}

// Account handles HTTP endpoints for accounts.
type Account struct {
	accountService AccountService
	logger         *logger.Logger
}

// NewAccount creates a new Account handler.
func NewAccount(accountService AccountService, logger *logger.Logger) *Account {
	return &Account{
		accountService: accountService,
		logger:         logger,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account from name, email and password.
func (h *Account) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().JSON(&req); err != nil {
		h.logger.Debug("Account handler: unreadable register body",
			"error", err.Error())
		req = registerRequest{}
	}

	err := h.accountService.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		logFailure(h.logger, "Account handler: registration failed", err,
			"email", req.Email)
		return handleError(c, err, "Registration failed")
	}

	return c.Status(fiber.StatusOK).JSON(messageResponse{Message: "User registered successfully!"})
}

// Login checks email and password against stored accounts.
func (h *Account) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().JSON(&req); err != nil {
		h.logger.Debug("Account handler: unreadable login body",
			"error", err.Error())
		req = loginRequest{}
	}

	err := h.accountService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		logFailure(h.logger, "Account handler: login failed", err,
			"email", req.Email)
		return handleError(c, err, "Login failed")
	}

	return c.Status(fiber.StatusOK).JSON(messageResponse{Message: "Login successful!"})
}
