//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/workflow-tracker-server/internal/model"
	repo "github.com/dtroode/workflow-tracker-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "workflow_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/workflow_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func openConnection(t *testing.T) *repo.Connection {
	t.Helper()

	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool {
		return conn.Init(ctx) == nil
	}, 30*time.Second, 500*time.Millisecond)

	return conn
}

func TestAccountRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn := openConnection(t)
	ar := repo.NewAccountRepository(conn)

	account := model.Account{
		ID:        uuid.New(),
		Name:      "Ada",
		Email:     "ada@example.com",
		Password:  "secret",
		CreatedAt: time.Now(),
	}
	saved, err := ar.Create(ctx, account)
	require.NoError(t, err)
	require.Equal(t, account.ID, saved.ID)

	byEmail, err := ar.GetByEmail(ctx, account.Email)
	require.NoError(t, err)
	require.Equal(t, account.ID, byEmail.ID)
	require.Equal(t, "Ada", byEmail.Name)

	byCreds, err := ar.GetByCredentials(ctx, account.Email, "secret")
	require.NoError(t, err)
	require.Equal(t, account.ID, byCreds.ID)

	_, err = ar.GetByCredentials(ctx, account.Email, "wrong")
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = ar.GetByEmail(ctx, "ADA@example.com")
	require.ErrorIs(t, err, model.ErrNotFound)

	account.ID = uuid.New()
	_, err = ar.Create(ctx, account)
	require.ErrorIs(t, err, model.ErrAlreadyExists)
}

func TestWorkflowRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	conn := openConnection(t)
	wr := repo.NewWorkflowRepository(conn)

	empty, err := wr.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	base := time.Now().UTC().Truncate(time.Microsecond)
	for i, text := range []string{"first", "second", "third"} {
		_, err := wr.Create(ctx, model.WorkflowEntry{
			ID:        uuid.New(),
			Email:     "owner@example.com",
			Entry:     text,
			Timestamp: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}
	_, err = wr.Create(ctx, model.WorkflowEntry{
		ID:        uuid.New(),
		Email:     "other@example.com",
		Entry:     "not mine",
		Timestamp: base,
	})
	require.NoError(t, err)

	list, err := wr.GetByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "third", list[0].Entry)
	require.Equal(t, "second", list[1].Entry)
	require.Equal(t, "first", list[2].Entry)
}

func TestConnection_SchemaCreatedAfterFailedInit(t *testing.T) {
	ctx := context.Background()
	admin := openConnection(t)
	_, err := admin.Exec(ctx, "CREATE DATABASE workflow_late")
	require.NoError(t, err)

	lateDSN := strings.Replace(dsn, "/workflow_test?", "/workflow_late?", 1)
	conn, err := repo.NewConnection(ctx, lateDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	unavailable, cancel := context.WithCancel(ctx)
	cancel()
	require.Error(t, conn.Init(unavailable))

	ar := repo.NewAccountRepository(conn)
	_, err = ar.Create(ctx, model.Account{
		ID:        uuid.New(),
		Name:      "Grace",
		Email:     "grace@example.com",
		Password:  "secret",
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	got, err := ar.GetByEmail(ctx, "grace@example.com")
	require.NoError(t, err)
	require.Equal(t, "Grace", got.Name)
}
