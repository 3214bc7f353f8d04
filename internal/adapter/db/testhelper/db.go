// Package testhelper starts a throwaway PostgreSQL for integration tests.
package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	dbadapter "todoboard/internal/adapter/db"
	"todoboard/internal/config"
)

var (
	once         sync.Once
	sharedConfig *config.Config
	initErr      error
)

// SetupTestDB starts a shared PostgreSQL container once per test binary, applies the
// migrations and returns a fresh connection with an empty todos table.
// Tests are skipped when no container runtime is reachable.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	once.Do(func() {
		sharedConfig, initErr = startContainer()
	})
	if initErr != nil {
		t.Skipf("testhelper: postgres container unavailable: %v", initErr)
	}

	db, err := dbadapter.ConnectDB(sharedConfig)
	if err != nil {
		t.Fatalf("testhelper: connect: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := dbadapter.Migrate(ctx, db); err != nil {
		t.Fatalf("testhelper: migrate: %v", err)
	}
	if _, err := db.ExecContext(ctx, "TRUNCATE TABLE todos"); err != nil {
		t.Fatalf("testhelper: truncate: %v", err)
	}

	return db
}

func startContainer() (*config.Config, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	return &config.Config{
		DbDriver:          config.DriverPostgres,
		DbHost:            host,
		DbPort:            port.Port(),
		DbUser:            "testuser",
		DbPassword:        "testpass",
		DbName:            "testdb",
		DbSSLMode:         "disable",
		DbMaxOpenConns:    5,
		DbMaxIdleConns:    2,
		DbConnMaxLifetime: time.Minute,
	}, nil
}
