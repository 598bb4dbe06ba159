package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"github.com/dtroode/workflow-tracker-server/internal/api/http/handler"
	"github.com/dtroode/workflow-tracker-server/internal/api/http/middleware"
	"github.com/dtroode/workflow-tracker-server/internal/logger"
)

// Router represents the HTTP router of the workflow tracker.
// It wires handlers and middleware into a fiber application.
type Router struct {
	accountService  handler.AccountService
	workflowService handler.WorkflowService
	logger          *logger.Logger
}

// New creates new Router instance.
func New(
	accountService handler.AccountService,
	workflowService handler.WorkflowService,
	logger *logger.Logger,
) *Router {
	return &Router{
		accountService:  accountService,
		workflowService: workflowService,
		logger:          logger,
	}
}

// Register builds the fiber application with request logging, CORS and all routes.
func (r *Router) Register() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "workflow-tracker",
	})

	logging := middleware.NewLogging(r.logger)
	app.Use(logging.Handle)
	app.Use(cors.New())

	app.Get("/", handler.Live)
	r.registerAccountRoutes(app)
	r.registerWorkflowRoutes(app)

	return app
}

func (r *Router) registerAccountRoutes(app *fiber.App) {
	accountHandler := handler.NewAccount(r.accountService, r.logger)
	app.Post("/register", accountHandler.Register)
	app.Post("/login", accountHandler.Login)
}

func (r *Router) registerWorkflowRoutes(app *fiber.App) {
	workflowHandler := handler.NewWorkflow(r.workflowService, r.logger)
	app.Post("/submit-workflow", workflowHandler.Submit)
	app.Get("/get-workflows", workflowHandler.List)
}
