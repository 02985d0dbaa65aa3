// Package pgtest provides a migrated postgres pool for store tests.
package pgtest

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/taskvault/taskvault/infrastructure/postgresdb"
	"github.com/taskvault/taskvault/sdk/logger"
)

// EnvDatabaseURL names the variable holding the test database connection.
const EnvDatabaseURL = "TEST_DATABASE_URL"

// NewPool connects to the database in TEST_DATABASE_URL and applies the
// embedded migrations. The test is skipped when the variable is unset or the
// database cannot be reached.
func NewPool(t *testing.T) *postgresdb.Pool {
	t.Helper()

	url := os.Getenv(EnvDatabaseURL)
	if url == "" {
		t.Skipf("Skipping test: %s not set", EnvDatabaseURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgresdb.NewTestDB(ctx, url, postgresdb.WithConnectTimeout(5*time.Second))
	if err != nil {
		t.Skipf("Skipping test: database not available: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := postgresdb.Migrate(ctx, pool, logger.NewDiscard().Logger); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return pool
}

// UniqueEmail returns an email address no other test run will use.
func UniqueEmail() string {
	return fmt.Sprintf("test-%s@example.com", uuid.NewString())
}
