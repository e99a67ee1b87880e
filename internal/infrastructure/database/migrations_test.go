package database

import (
	"context"
	"embed"
	"testing"
)

//go:embed testdata/*.sql
var testMigrationsFS embed.FS

// withTestMigrations points the package at the test fixtures and restores
// the previous registration when the test completes.
func withTestMigrations(t *testing.T) {
	t.Helper()

	prevFS, prevDir := MigrationsFS, MigrationsDir
	MigrationsFS = testMigrationsFS
	MigrationsDir = "testdata"
	t.Cleanup(func() {
		MigrationsFS = prevFS
		MigrationsDir = prevDir
	})
}

func TestMigrate(t *testing.T) {
	withTestMigrations(t)
	ctx := context.Background()

	db, err := Open(ctx, testConfig(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	// The fixture creates a widgets table
	var name string
	err = db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='table' AND name='widgets'").Scan(&name)
	if err != nil {
		t.Fatalf("migrated table missing: %v", err)
	}

	// Version should be recorded
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("querying schema_migrations: %v", err)
	}
	if count != 1 {
		t.Errorf("schema_migrations count = %d, want 1", count)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	withTestMigrations(t)
	ctx := context.Background()

	db, err := Open(ctx, testConfig(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("first Migrate() error = %v", err)
	}
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("querying schema_migrations: %v", err)
	}
	if count != 1 {
		t.Errorf("schema_migrations count = %d after re-run, want 1", count)
	}
}

func TestLoadMigrations_Parsing(t *testing.T) {
	withTestMigrations(t)

	migrations, err := loadMigrations()
	if err != nil {
		t.Fatalf("loadMigrations() error = %v", err)
	}

	if len(migrations) != 1 {
		t.Fatalf("len(migrations) = %d, want 1", len(migrations))
	}

	m := migrations[0]
	if m.Version != "20260801_120000" {
		t.Errorf("Version = %q, want %q", m.Version, "20260801_120000")
	}
	if m.Name != "widgets" {
		t.Errorf("Name = %q, want %q", m.Name, "widgets")
	}
	if m.UpSQL == "" {
		t.Error("UpSQL should not be empty")
	}
	if m.DownSQL == "" {
		t.Error("DownSQL should be loaded when the .down.sql file exists")
	}
}
