package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dtroode/workflow-tracker-server/internal/api/http/router"
	httpServer "github.com/dtroode/workflow-tracker-server/internal/api/http/server"
	"github.com/dtroode/workflow-tracker-server/internal/config"
	"github.com/dtroode/workflow-tracker-server/internal/listener"
	"github.com/dtroode/workflow-tracker-server/internal/logger"
	"github.com/dtroode/workflow-tracker-server/internal/model"
	"github.com/dtroode/workflow-tracker-server/internal/repository/dynamo"
	"github.com/dtroode/workflow-tracker-server/internal/repository/postgres"
	"github.com/dtroode/workflow-tracker-server/internal/service"
)

const storeInitTimeout = 30 * time.Second

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	accountStore, workflowStore, closeStore, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer closeStore()

	location, err := cfg.Workflow.Location()
	if err != nil {
		logger.Fatal("failed to load workflow time zone", "error", err)
	}

	accountService := service.NewAccount(accountStore, cfg.Database.QueryTimeout, logger)
	workflowService := service.NewWorkflow(workflowStore, cfg.Database.QueryTimeout, cfg.Workflow.TimeLayout, location, logger)

	app := router.New(accountService, workflowService, logger).Register()
	srv := httpServer.NewHTTPServer(app, fmt.Sprintf(":%s", cfg.Port))

	sl := listener.FromConfig(cfg.HTTP)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

// openStores builds the account and workflow stores for the configured driver.
// An unreachable backend is logged and the stores are still returned, so the
// server keeps answering liveness checks while storage calls fail.
func openStores(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.AccountStore, model.WorkflowStore, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverDynamoDB:
		client, err := dynamo.NewClient(ctx, dynamo.Options{
			Region:    cfg.DynamoDB.Region,
			Endpoint:  cfg.DynamoDB.Endpoint,
			AccessKey: cfg.DynamoDB.AccessKey,
			SecretKey: cfg.DynamoDB.SecretKey,
		})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create dynamodb client: %w", err)
		}
		logger.Info("using dynamodb record store", "table", cfg.DynamoDB.Table)

		if cfg.DynamoDB.CreateTable {
			initCtx, cancel := context.WithTimeout(ctx, storeInitTimeout)
			defer cancel()

			if err := dynamo.EnsureTable(initCtx, client, cfg.DynamoDB.Table); err != nil {
				logger.Error("dynamodb table is not ready, requests will fail until it is", "error", err)
			}
		}

		return dynamo.NewAccountRepository(client, cfg.DynamoDB.Table),
			dynamo.NewWorkflowRepository(client, cfg.DynamoDB.Table),
			func() {},
			nil
	default:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, nil, err
		}

		initCtx, cancel := context.WithTimeout(ctx, storeInitTimeout)
		defer cancel()

		if err := db.Init(initCtx); err != nil {
			logger.Error("database is not ready, requests will fail until it is", "error", err)
		} else {
			logger.Info("connected to postgres record store")
		}

		return postgres.NewAccountRepository(db),
			postgres.NewWorkflowRepository(db),
			func() { _ = db.Close() },
			nil
	}
}
