package auth

import (
	"strings"
	"testing"
)

func TestHashPIN_Format(t *testing.T) {
	hash, err := HashPIN("1234")
	if err != nil {
		t.Fatalf("HashPIN() error = %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Errorf("HashPIN() = %q, want PHC argon2id prefix", hash)
	}
	if parts := strings.Split(hash, "$"); len(parts) != 6 {
		t.Errorf("HashPIN() has %d parts, want 6", len(parts))
	}
}

func TestHashPIN_UniqueSalts(t *testing.T) {
	h1, err := HashPIN("1234")
	if err != nil {
		t.Fatalf("HashPIN() error = %v", err)
	}
	h2, err := HashPIN("1234")
	if err != nil {
		t.Fatalf("HashPIN() error = %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same PIN are identical, salts not random")
	}
}

func TestVerifyPIN(t *testing.T) {
	hash, err := HashPIN("correct-horse")
	if err != nil {
		t.Fatalf("HashPIN() error = %v", err)
	}

	tests := []struct {
		name string
		pin  string
		want bool
	}{
		{"correct pin", "correct-horse", true},
		{"wrong pin", "battery-staple", false},
		{"empty pin", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerifyPIN(tt.pin, hash)
			if err != nil {
				t.Fatalf("VerifyPIN() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("VerifyPIN() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifyPIN_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not phc", "plaintext"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=3,p=1$c2FsdA$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=65536,t=3,p=1"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=3,p=1$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifyPIN("1234", tt.hash); err == nil {
				t.Errorf("VerifyPIN() with hash %q: expected error, got nil", tt.hash)
			}
		})
	}
}

func TestDummyHash(t *testing.T) {
	h := DummyHash()

	if h != DummyHash() {
		t.Error("DummyHash() not stable across calls")
	}

	ok, err := VerifyPIN("any-guess", h)
	if err != nil {
		t.Fatalf("VerifyPIN() against dummy hash error = %v", err)
	}
	if ok {
		t.Error("arbitrary PIN verified against dummy hash")
	}
}
