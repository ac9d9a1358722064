//go:build integration

// Package testhelper gives integration tests an isolated, migrated PostgreSQL
// database. One container serves the whole run; every test gets its own
// database cloned from a migrated template.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/trendplan-backend/migrations"
)

const (
	pgUser     = "trendplan"
	pgPassword = "trendplan"
	templateDB = "trendplan_template"
)

var (
	startOnce sync.Once
	server    string // host:port of the shared container
	startErr  error
	dbSeq     atomic.Int64
)

// SetupTestDB returns a pool on a fresh database holding the full schema.
// The database is dropped when the test ends.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	startOnce.Do(func() { server, startErr = startServer() })
	if startErr != nil {
		t.Fatalf("testhelper: start postgres: %v", startErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	name := fmt.Sprintf("test_%d_%d", time.Now().UnixNano(), dbSeq.Add(1))
	ident := pgx.Identifier{name}.Sanitize()

	if err := admin(ctx, "CREATE DATABASE "+ident+" TEMPLATE "+templateDB); err != nil {
		t.Fatalf("testhelper: create %s: %v", name, err)
	}

	pool, err := pgxpool.New(ctx, dsn(name))
	if err != nil {
		t.Fatalf("testhelper: connect %s: %v", name, err)
	}

	t.Cleanup(func() {
		pool.Close()
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer dropCancel()
		if err := admin(dropCtx, "DROP DATABASE IF EXISTS "+ident+" WITH (FORCE)"); err != nil {
			t.Logf("testhelper: drop %s: %v", name, err)
		}
	})

	return pool
}

func dsn(db string) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", pgUser, pgPassword, server, db)
}

// admin runs a statement over a short-lived connection to the maintenance
// database. CREATE/DROP DATABASE cannot run inside a transaction or a pool
// that holds the target open.
func admin(ctx context.Context, stmt string) error {
	conn, err := pgx.Connect(ctx, dsn("postgres"))
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	_, err = conn.Exec(ctx, stmt)
	return err
}

func startServer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       templateDB,
			},
			// The entrypoint restarts postgres once after init.
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			).WithDeadline(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("mapped port: %w", err)
	}
	server = fmt.Sprintf("%s:%s", host, port.Port())

	if err := migrateTemplate(ctx); err != nil {
		return "", err
	}
	return server, nil
}

// migrateTemplate applies every migration to the template database and
// disconnects so it can be cloned.
func migrateTemplate(ctx context.Context) error {
	db, err := sql.Open("pgx", dsn(templateDB))
	if err != nil {
		return fmt.Errorf("open template: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("goose up: no migrations applied")
	}
	return nil
}
