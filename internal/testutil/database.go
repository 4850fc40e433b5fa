// Package testutil provides database fixtures for integration tests.
//
// Tests that need a real store read TEST_DATABASE_URL and skip when it is
// unset, so the unit suite stays runnable without infrastructure. Each
// fixture creates a uniquely named database, migrates it, and drops it on
// cleanup so tests never share state.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/chonost/manuscript-os/internal/config"
	"github.com/chonost/manuscript-os/internal/migrate"
)

// NewTestConfig returns a config suitable for repository construction in
// tests, without touching the environment.
func NewTestConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			QueryTimeout: 10 * time.Second,
		},
	}
}

// NewTestDB creates a fresh migrated database and returns a bun handle
// bound to it. The database is dropped when the test finishes.
func NewTestDB(t *testing.T) *bun.DB {
	t.Helper()

	baseURL := os.Getenv("TEST_DATABASE_URL")
	if baseURL == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database test")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		t.Fatalf("parse TEST_DATABASE_URL: %v", err)
	}

	dbName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	admin, err := sql.Open("pgx", baseURL)
	if err != nil {
		t.Fatalf("open admin connection: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := admin.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE %s", dbName)); err != nil {
		admin.Close()
		t.Fatalf("create test database: %v", err)
	}

	parsed.Path = "/" + dbName
	sqldb, err := sql.Open("pgx", parsed.String())
	if err != nil {
		admin.Close()
		t.Fatalf("open test database: %v", err)
	}

	if err := migrate.RunWithDB(ctx, sqldb); err != nil {
		sqldb.Close()
		admin.Close()
		t.Fatalf("migrate test database: %v", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	t.Cleanup(func() {
		db.Close()

		dropCtx, dropCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer dropCancel()

		if _, err := admin.ExecContext(dropCtx, fmt.Sprintf("DROP DATABASE IF EXISTS %s WITH (FORCE)", dbName)); err != nil {
			t.Logf("drop test database %s: %v", dbName, err)
		}
		admin.Close()
	})

	return db
}
