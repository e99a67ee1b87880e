package auth

import (
	"context"
	"testing"

	"github.com/nerrad567/panelgate/internal/infrastructure/logging"
)

func TestSeedAdmin_EmptyDatabase(t *testing.T) {
	repo := NewOperatorRepository(testDB(t))
	ctx := context.Background()

	created, err := SeedAdmin(ctx, repo, logging.Default())
	if err != nil {
		t.Fatalf("SeedAdmin() error = %v", err)
	}
	if !created {
		t.Fatal("SeedAdmin() = false on empty database, want true")
	}

	op, err := repo.GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetByUsername(admin) error = %v", err)
	}
	if op.Role != RoleAdmin {
		t.Errorf("seeded role = %q, want %q", op.Role, RoleAdmin)
	}
	if op.PINHash == "" {
		t.Error("seeded operator has no PIN hash")
	}
}

func TestSeedAdmin_ExistingOperators(t *testing.T) {
	repo := NewOperatorRepository(testDB(t))
	ctx := context.Background()

	mustCreate(t, repo, "alice", RoleGuest)

	created, err := SeedAdmin(ctx, repo, logging.Default())
	if err != nil {
		t.Fatalf("SeedAdmin() error = %v", err)
	}
	if created {
		t.Error("SeedAdmin() = true with existing operators, want false")
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d after no-op seed, want 1", count)
	}
}
