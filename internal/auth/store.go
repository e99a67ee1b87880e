package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nerrad567/panelgate/internal/infrastructure/database"
)

// OperatorRepository defines storage operations for operators.
type OperatorRepository interface {
	Create(ctx context.Context, op *Operator) error
	GetByUsername(ctx context.Context, username string) (*Operator, error)
	List(ctx context.Context) ([]*Operator, error)
	Count(ctx context.Context) (int, error)
	UpdatePINHash(ctx context.Context, id, pinHash string) error
}

// SQLiteOperatorRepository implements OperatorRepository using SQLite.
type SQLiteOperatorRepository struct {
	db *database.DB
}

// NewOperatorRepository creates an operator repository backed by SQLite.
func NewOperatorRepository(db *database.DB) *SQLiteOperatorRepository {
	return &SQLiteOperatorRepository{db: db}
}

// Create inserts a new operator. The ID is generated if empty.
func (r *SQLiteOperatorRepository) Create(ctx context.Context, op *Operator) error {
	if !IsValidUsername(op.Username) {
		return fmt.Errorf("invalid username %q", op.Username)
	}
	if !IsValidRole(op.Role) {
		return fmt.Errorf("invalid role %q", op.Role)
	}
	if op.ID == "" {
		op.ID = uuid.NewString()
	}

	now := time.Now().UTC()
	op.CreatedAt = now
	op.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO operators (id, username, pin_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		op.ID, op.Username, op.PINHash, string(op.Role),
		op.CreatedAt.Format(time.RFC3339), op.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrUsernameExists
		}
		return fmt.Errorf("inserting operator: %w", err)
	}

	return nil
}

// GetByUsername retrieves an operator by username.
// Returns ErrOperatorNotFound if no such operator exists.
func (r *SQLiteOperatorRepository) GetByUsername(ctx context.Context, username string) (*Operator, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, pin_hash, role, created_at, updated_at
		FROM operators WHERE username = ?`, username)

	return scanOperator(row)
}

// List returns all operators ordered by username.
func (r *SQLiteOperatorRepository) List(ctx context.Context) ([]*Operator, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, pin_hash, role, created_at, updated_at
		FROM operators ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("querying operators: %w", err)
	}
	defer rows.Close()

	var operators []*Operator
	for rows.Next() {
		op, err := scanOperator(rows)
		if err != nil {
			return nil, err
		}
		operators = append(operators, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating operators: %w", err)
	}

	return operators, nil
}

// Count returns the number of operators.
func (r *SQLiteOperatorRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM operators`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting operators: %w", err)
	}
	return count, nil
}

// UpdatePINHash replaces an operator's PIN hash.
func (r *SQLiteOperatorRepository) UpdatePINHash(ctx context.Context, id, pinHash string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE operators SET pin_hash = ?, updated_at = ? WHERE id = ?`,
		pinHash, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating pin hash: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return ErrOperatorNotFound
	}

	return nil
}

// scanner abstracts sql.Row and sql.Rows for scanOperator.
type scanner interface {
	Scan(dest ...any) error
}

func scanOperator(s scanner) (*Operator, error) {
	var op Operator
	var role, createdAt, updatedAt string

	err := s.Scan(&op.ID, &op.Username, &op.PINHash, &role, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOperatorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning operator: %w", err)
	}

	op.Role = Role(role)
	if op.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if op.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &op, nil
}

// CredentialStore verifies operator credentials against stored hashes.
type CredentialStore struct {
	repo OperatorRepository
}

// NewCredentialStore creates a credential store over the given repository.
func NewCredentialStore(repo OperatorRepository) *CredentialStore {
	return &CredentialStore{repo: repo}
}

// Verify checks a username and PIN pair.
//
// Returns the matching operator on success and ErrInvalidCredentials on
// any mismatch. Unknown usernames and wrong PINs are indistinguishable
// to the caller: both return the same error, and an unknown username
// still pays for a full argon2 verification against a dummy hash so
// response timing does not leak which usernames exist.
func (s *CredentialStore) Verify(ctx context.Context, username, pin string) (*Operator, error) {
	op, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, ErrOperatorNotFound) {
		_, _ = VerifyPIN(pin, DummyHash())
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("looking up operator: %w", err)
	}

	ok, err := VerifyPIN(pin, op.PINHash)
	if err != nil {
		return nil, fmt.Errorf("verifying pin: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return op, nil
}
