package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/nerrad567/panelgate/internal/infrastructure/database"
)

// testDB opens a fresh SQLite database in a temp directory with the
// operators table applied.
func testDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open(context.Background(), database.Config{
		Path:        filepath.Join(t.TempDir(), "test.db"),
		WALMode:     true,
		BusyTimeout: 5000,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE operators (
			id         TEXT PRIMARY KEY,
			username   TEXT NOT NULL UNIQUE,
			pin_hash   TEXT NOT NULL,
			role       TEXT NOT NULL DEFAULT 'guest',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		) STRICT`)
	if err != nil {
		t.Fatalf("creating operators table: %v", err)
	}

	return db
}

func mustCreate(t *testing.T, repo *SQLiteOperatorRepository, username string, role Role) *Operator {
	t.Helper()

	hash, err := HashPIN("1234")
	if err != nil {
		t.Fatalf("HashPIN() error = %v", err)
	}

	op := &Operator{Username: username, PINHash: hash, Role: role}
	if err := repo.Create(context.Background(), op); err != nil {
		t.Fatalf("Create(%q) error = %v", username, err)
	}
	return op
}

func TestOperatorRepository_CreateAndGet(t *testing.T) {
	repo := NewOperatorRepository(testDB(t))
	ctx := context.Background()

	created := mustCreate(t, repo, "alice", RoleAdmin)
	if created.ID == "" {
		t.Error("Create() did not assign an ID")
	}

	got, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}

	if got.ID != created.ID {
		t.Errorf("ID = %q, want %q", got.ID, created.ID)
	}
	if got.Role != RoleAdmin {
		t.Errorf("Role = %q, want %q", got.Role, RoleAdmin)
	}
	if got.PINHash != created.PINHash {
		t.Error("PINHash not round-tripped")
	}
}

func TestOperatorRepository_GetUnknown(t *testing.T) {
	repo := NewOperatorRepository(testDB(t))

	_, err := repo.GetByUsername(context.Background(), "nobody")
	if !errors.Is(err, ErrOperatorNotFound) {
		t.Errorf("GetByUsername() error = %v, want ErrOperatorNotFound", err)
	}
}

func TestOperatorRepository_DuplicateUsername(t *testing.T) {
	repo := NewOperatorRepository(testDB(t))
	mustCreate(t, repo, "alice", RoleGuest)

	dup := &Operator{Username: "alice", PINHash: "$argon2id$v=19$m=65536,t=3,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g", Role: RoleGuest}
	if err := repo.Create(context.Background(), dup); !errors.Is(err, ErrUsernameExists) {
		t.Errorf("Create() duplicate error = %v, want ErrUsernameExists", err)
	}
}

func TestOperatorRepository_InvalidInput(t *testing.T) {
	repo := NewOperatorRepository(testDB(t))
	ctx := context.Background()

	tests := []struct {
		name string
		op   *Operator
	}{
		{"empty username", &Operator{Username: "", PINHash: "h", Role: RoleGuest}},
		{"username with spaces", &Operator{Username: "a b", PINHash: "h", Role: RoleGuest}},
		{"unknown role", &Operator{Username: "carol", PINHash: "h", Role: Role("superuser")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.Create(ctx, tt.op); err == nil {
				t.Error("Create() expected error, got nil")
			}
		})
	}
}

func TestOperatorRepository_ListAndCount(t *testing.T) {
	repo := NewOperatorRepository(testDB(t))
	ctx := context.Background()

	mustCreate(t, repo, "bob", RoleGuest)
	mustCreate(t, repo, "alice", RoleAdmin)

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}

	ops, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("List() returned %d operators, want 2", len(ops))
	}
	if ops[0].Username != "alice" || ops[1].Username != "bob" {
		t.Errorf("List() order = [%s, %s], want [alice, bob]", ops[0].Username, ops[1].Username)
	}
}

func TestOperatorRepository_UpdatePINHash(t *testing.T) {
	repo := NewOperatorRepository(testDB(t))
	ctx := context.Background()

	op := mustCreate(t, repo, "alice", RoleAdmin)

	newHash, err := HashPIN("5678")
	if err != nil {
		t.Fatalf("HashPIN() error = %v", err)
	}
	if err := repo.UpdatePINHash(ctx, op.ID, newHash); err != nil {
		t.Fatalf("UpdatePINHash() error = %v", err)
	}

	got, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if got.PINHash != newHash {
		t.Error("PIN hash not updated")
	}

	if err := repo.UpdatePINHash(ctx, "no-such-id", newHash); !errors.Is(err, ErrOperatorNotFound) {
		t.Errorf("UpdatePINHash() unknown id error = %v, want ErrOperatorNotFound", err)
	}
}

func TestCredentialStore_Verify(t *testing.T) {
	repo := NewOperatorRepository(testDB(t))
	store := NewCredentialStore(repo)
	ctx := context.Background()

	mustCreate(t, repo, "alice", RoleAdmin) // PIN 1234

	t.Run("correct credentials", func(t *testing.T) {
		op, err := store.Verify(ctx, "alice", "1234")
		if err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
		if op.Username != "alice" || op.Role != RoleAdmin {
			t.Errorf("Verify() = %s/%s, want alice/admin", op.Username, op.Role)
		}
	})

	t.Run("wrong pin", func(t *testing.T) {
		if _, err := store.Verify(ctx, "alice", "9999"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Verify() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		// Same sentinel as a wrong PIN: no username enumeration.
		if _, err := store.Verify(ctx, "mallory", "1234"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Verify() error = %v, want ErrInvalidCredentials", err)
		}
	})
}
