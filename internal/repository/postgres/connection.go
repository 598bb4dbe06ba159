package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dtroode/workflow-tracker-server/database"
)

// Connection is the process-wide PostgreSQL pool shared by repositories.
type Connection struct {
	*pgxpool.Pool
	dsn string

	migrate     func(ctx context.Context, dsn string) error
	schemaMu    sync.Mutex
	schemaReady bool
}

// NewConnection creates a connection pool for dsn. The pool connects lazily,
// so an unreachable server is reported by Init, not here.
func NewConnection(ctx context.Context, dsn string) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	return &Connection{
		Pool:    pool,
		dsn:     dsn,
		migrate: database.Migrate,
	}, nil
}

// Init checks connectivity and applies schema migrations.
func (s *Connection) Init(ctx context.Context) error {
	if err := s.Ping(ctx); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}

	return s.EnsureSchema(ctx)
}

// EnsureSchema applies migrations until they succeed once. Repositories call
// it before every query, so a database that was down at startup gets its
// schema on the first request after it comes up.
func (s *Connection) EnsureSchema(ctx context.Context) error {
	s.schemaMu.Lock()
	defer s.schemaMu.Unlock()

	if s.schemaReady {
		return nil
	}

	migrate := s.migrate
	if migrate == nil {
		migrate = database.Migrate
	}

	if err := migrate(ctx, s.dsn); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	s.schemaReady = true

	return nil
}

func (s *Connection) Close() error {
	if s.Pool != nil {
		s.Pool.Close()
	}
	return nil
}

func (s *Connection) Ping(ctx context.Context) error {
	if s.Pool == nil {
		return fmt.Errorf("connection pool is nil")
	}
	return s.Pool.Ping(ctx)
}
