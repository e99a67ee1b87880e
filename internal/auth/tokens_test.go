package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "test-secret-at-least-32-characters-long"

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService(testSecret, 30*time.Minute)

	token, err := svc.Issue("alice", RoleAdmin)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if claims.Subject != "alice" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "alice")
	}
	if claims.Role != RoleAdmin {
		t.Errorf("Role = %q, want %q", claims.Role, RoleAdmin)
	}
	if claims.ID == "" {
		t.Error("token ID is empty, want unique jti")
	}
}

func TestTokenService_Expiry(t *testing.T) {
	svc := NewTokenService(testSecret, 30*time.Minute)

	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue("bob", RoleGuest)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Just inside the window
	svc.now = func() time.Time { return issuedAt.Add(29 * time.Minute) }
	if _, err := svc.Verify(token); err != nil {
		t.Errorf("Verify() before expiry error = %v, want nil", err)
	}

	// Just past it
	svc.now = func() time.Time { return issuedAt.Add(31 * time.Minute) }
	if _, err := svc.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Verify() after expiry error = %v, want ErrTokenExpired", err)
	}
}

func TestTokenService_TamperedToken(t *testing.T) {
	svc := NewTokenService(testSecret, 30*time.Minute)

	token, err := svc.Issue("alice", RoleGuest)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Flip a character in the payload segment. The signature no longer
	// matches, so this must read as invalid, never expired.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := svc.Verify(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify() of tampered token error = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService(testSecret, 30*time.Minute)
	verifier := NewTokenService("different-secret-also-32-chars-long!", 30*time.Minute)

	token, err := issuer.Issue("alice", RoleAdmin)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify() with wrong secret error = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService(testSecret, 30*time.Minute)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "hello world"},
		{"two segments", "aaaa.bbbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Verify(tt.token); !errors.Is(err, ErrTokenInvalid) {
				t.Errorf("Verify(%q) error = %v, want ErrTokenInvalid", tt.token, err)
			}
		})
	}
}
