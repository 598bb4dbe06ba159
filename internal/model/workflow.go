package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// WorkflowStore defines persistence operations for workflow entries.
type WorkflowStore interface {
	Create(ctx context.Context, entry WorkflowEntry) (WorkflowEntry, error)
	// GetByEmail returns all entries owned by email, newest first.
	GetByEmail(ctx context.Context, email string) ([]WorkflowEntry, error)
}

// WorkflowEntry is a timestamped free-text note owned by an account email.
type WorkflowEntry struct {
	ID        uuid.UUID
	Email     string
	Entry     string
	Timestamp time.Time
}
