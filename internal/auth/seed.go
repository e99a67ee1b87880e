package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/nerrad567/panelgate/internal/infrastructure/logging"
)

// seedPINBytes is the entropy of the generated first-boot admin PIN.
const seedPINBytes = 12

// SeedAdmin creates the initial admin operator on first boot.
//
// If any operator already exists this is a no-op. Otherwise an "admin"
// operator is created with a random PIN, which is printed to stdout
// exactly once. There is no way to recover it later; the expectation is
// that the installer notes it down and changes it.
//
// Returns true if an admin was created.
func SeedAdmin(ctx context.Context, repo OperatorRepository, logger *logging.Logger) (bool, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("checking operator count: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	raw := make([]byte, seedPINBytes)
	if _, err := rand.Read(raw); err != nil {
		return false, fmt.Errorf("generating admin pin: %w", err)
	}
	pin := base64.RawURLEncoding.EncodeToString(raw)

	hash, err := HashPIN(pin)
	if err != nil {
		return false, fmt.Errorf("hashing admin pin: %w", err)
	}

	op := &Operator{
		Username: "admin",
		PINHash:  hash,
		Role:     RoleAdmin,
	}
	if err := repo.Create(ctx, op); err != nil {
		return false, fmt.Errorf("creating admin operator: %w", err)
	}

	logger.Info("seeded initial admin operator", "operator_id", op.ID)

	// Printed once, never logged: log files outlive the bootstrap window.
	fmt.Printf("\n=== FIRST BOOT ===\nInitial admin credentials:\n  username: admin\n  pin:      %s\nChange this PIN after first login.\n==================\n\n", pin)

	return true, nil
}
