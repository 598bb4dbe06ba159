package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/workflow-tracker-server/internal/apierror"
	"github.com/dtroode/workflow-tracker-server/internal/logger"
	"github.com/dtroode/workflow-tracker-server/internal/model"
)

// DefaultTimeLayout renders time of day the way an en-US locale does.
const DefaultTimeLayout = "3:04:05 PM"

// Workflow appends and lists workflow entries.
type Workflow struct {
	workflowStore model.WorkflowStore
	queryTimeout  time.Duration
	layout        string
	location      *time.Location
	now           func() time.Time
	logger        *logger.Logger
}

// NewWorkflow creates a Workflow service. Listed timestamps are rendered with
// layout in location; empty layout and nil location fall back to
// DefaultTimeLayout and time.Local.
func NewWorkflow(
	workflowStore model.WorkflowStore,
	queryTimeout time.Duration,
	layout string,
	location *time.Location,
	logger *logger.Logger,
) *Workflow {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	if location == nil {
		location = time.Local
	}

	return &Workflow{
		workflowStore: workflowStore,
		queryTimeout:  queryTimeout,
		layout:        layout,
		location:      location,
		now:           time.Now,
		logger:        logger,
	}
}

// Submit stores entry for email stamped with the current time.
func (w *Workflow) Submit(ctx context.Context, email, entry string) error {
	if email == "" || entry == "" {
		return apierror.NewErrValidation("Missing email or entry")
	}

	record := model.WorkflowEntry{
		ID:        uuid.New(),
		Email:     email,
		Entry:     entry,
		Timestamp: w.now(),
	}

	_, err := withTimeout(ctx, w.queryTimeout, func(ctx context.Context) (model.WorkflowEntry, error) {
		return w.workflowStore.Create(ctx, record)
	})
	if err != nil {
		w.logger.Error("Workflow service: failed to save entry",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to save workflow entry: %w", err)
	}

	w.logger.Info("Workflow service: entry saved",
		"email", email,
		"entry_id", record.ID)

	return nil
}

// List returns email's entries newest first, each formatted as "<time> - <entry>".
func (w *Workflow) List(ctx context.Context, email string) ([]string, error) {
	if email == "" {
		return nil, apierror.NewErrValidation("Missing email")
	}

	entries, err := withTimeout(ctx, w.queryTimeout, func(ctx context.Context) ([]model.WorkflowEntry, error) {
		return w.workflowStore.GetByEmail(ctx, email)
	})
	if err != nil {
		w.logger.Error("Workflow service: failed to list entries",
			"email", email,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list workflow entries: %w", err)
	}

	formatted := make([]string, 0, len(entries))
	for _, entry := range entries {
		formatted = append(formatted, w.format(entry))
	}

	return formatted, nil
}

func (w *Workflow) format(entry model.WorkflowEntry) string {
	return fmt.Sprintf("%s - %s", entry.Timestamp.In(w.location).Format(w.layout), entry.Entry)
}
