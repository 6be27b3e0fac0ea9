package db

import (
	"os"
	"path/filepath"
	"testing"

	constant "liyu1981.xyz/inventory-alert-service/pkg/common"
)

func TestWithEnvPath(t *testing.T) {
	constant.SetTestLoggerNop()

	if os.Getenv(constant.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}

	testPath := filepath.Join(t.TempDir(), "test.db")

	t.Setenv(constant.EnvKeyDbPath, testPath)

	instance, err := Open(UseSqliteDialector())
	if err != nil || instance == nil || instance.Conn == nil {
		t.Fatalf("Expected non-nil DB connection, got error: %v", err)
	}

	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Errorf("Expected database file to be created at %s", testPath)
	}
}

func TestWithPostgres(t *testing.T) {
	constant.SetTestLoggerNop()

	dsn := os.Getenv(constant.EnvKeyPostgresDSN)
	if os.Getenv(constant.EnvKeyRunIntegrationTests) != "true" || dsn == "" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS or ALERTS_POSTGRES_DSN not set")
	}

	instance, err := Open(UsePostgresDialector(dsn))
	if err != nil {
		t.Fatalf("Expected postgres connection, got error: %v", err)
	}

	if !instance.Conn.Migrator().HasTable("alerts") {
		t.Error("Expected alerts table after migration")
	}
}
