package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/workflow-tracker-server/internal/model"
)

var _ model.WorkflowStore = (*WorkflowRepository)(nil)

type WorkflowRepository struct {
	db *Connection
}

func NewWorkflowRepository(db *Connection) *WorkflowRepository {
	return &WorkflowRepository{
		db: db,
	}
}

func (r *WorkflowRepository) Create(ctx context.Context, entry model.WorkflowEntry) (model.WorkflowEntry, error) {
	if err := r.db.EnsureSchema(ctx); err != nil {
		return model.WorkflowEntry{}, err
	}

	query := `INSERT INTO workflow_entries (id, email, entry, timestamp)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, email, entry, timestamp`

	var saved model.WorkflowEntry
	err := r.db.QueryRow(ctx, query, entry.ID, entry.Email, entry.Entry, entry.Timestamp).Scan(
		&saved.ID, &saved.Email, &saved.Entry, &saved.Timestamp,
	)
	if err != nil {
		return model.WorkflowEntry{}, fmt.Errorf("failed to create workflow entry: %w", err)
	}

	return saved, nil
}

func (r *WorkflowRepository) GetByEmail(ctx context.Context, email string) ([]model.WorkflowEntry, error) {
	if err := r.db.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT w.id, w.email, w.entry, w.timestamp
		FROM workflow_entries w
		WHERE w.email = $1
		ORDER BY w.timestamp DESC`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query workflow entries: %w", err)
	}
	defer rows.Close()

	entries := []model.WorkflowEntry{}
	for rows.Next() {
		var entry model.WorkflowEntry
		if err := rows.Scan(&entry.ID, &entry.Email, &entry.Entry, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan workflow entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workflow entries: %w", err)
	}

	return entries, nil
}
