package service

import (
	"strconv"
	"strings"
	"testing"

	"github.com/coursebay/coursebay-backend/internal/config"
)

func testAuthService() *AuthService {
	return NewAuthService(&config.Config{
		JWTSecret:  "test-secret-for-unit-tests-32ch!",
		BcryptCost: 5,
	})
}

func TestHashAndCheckPassword(t *testing.T) {
	s := testAuthService()

	hash, err := s.HashPassword("pass1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "pass1" {
		t.Error("hash must not equal the plaintext")
	}

	if err := s.CheckPassword(hash, "pass1"); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}
	if err := s.CheckPassword(hash, "wrong"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	s := testAuthService()

	token, err := s.GenerateAdminToken(42)
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.AdminID != 42 {
		t.Errorf("expected admin_id 42, got %d", claims.AdminID)
	}
	if claims.Subject != strconv.Itoa(42) {
		t.Errorf("expected subject %q, got %q", "42", claims.Subject)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	s := testAuthService()

	token, err := s.GenerateAdminToken(7)
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := s.ValidateToken(tampered); err == nil {
		t.Error("expected tampered token to fail validation")
	}
}

func TestForeignSignatureRejected(t *testing.T) {
	s := testAuthService()
	other := NewAuthService(&config.Config{
		JWTSecret:  "a-completely-different-secret!!!",
		BcryptCost: 5,
	})

	token, err := other.GenerateAdminToken(7)
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}

	if _, err := s.ValidateToken(token); err == nil {
		t.Error("expected token signed with another secret to fail validation")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	s := testAuthService()

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := s.ValidateToken(tok); err == nil {
			t.Errorf("expected %q to fail validation", tok)
		}
	}
}
