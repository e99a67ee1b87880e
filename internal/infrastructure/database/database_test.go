package database

import (
	"context"
	"path/filepath"
	"testing"
)

// testConfig returns a database config pointing at a temp file.
func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Path:        filepath.Join(t.TempDir(), "test.db"),
		WALMode:     true,
		BusyTimeout: 5,
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, testConfig(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if db.Path() == "" {
		t.Error("Path() should not be empty")
	}
}

func TestOpen_BadDirectory(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, Config{
		Path:        "/proc/nonexistent/cannot/create/test.db",
		BusyTimeout: 1,
	})
	if err == nil {
		t.Fatal("Open() should fail for uncreatable directory")
	}
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, testConfig(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if err := db.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck() error = %v, want nil", err)
	}
}

func TestHealthCheck_Closed(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, testConfig(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	db.Close()

	if err := db.HealthCheck(ctx); err == nil {
		t.Error("HealthCheck() should fail on closed database")
	}
}

func TestClose_Nil(t *testing.T) {
	db := &DB{}
	if err := db.Close(); err != nil {
		t.Errorf("Close() on zero DB error = %v, want nil", err)
	}
}

func TestWALMode(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, testConfig(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	var mode string
	if err := db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("querying journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want %q", mode, "wal")
	}
}

func TestForeignKeys(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, testConfig(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	var enabled int
	if err := db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
		t.Fatalf("querying foreign_keys: %v", err)
	}
	if enabled != 1 {
		t.Error("foreign_keys pragma should be enabled")
	}
}
