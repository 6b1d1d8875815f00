package auth

import "testing"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("testpass")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if hash == "" || hash == "testpass" {
		t.Error("Expected a non-empty hash distinct from the plaintext")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("testpass")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !VerifyPassword(hash, "testpass") {
		t.Error("Expected matching password to verify")
	}
	if VerifyPassword(hash, "wrongpass") {
		t.Error("Expected mismatched password to fail")
	}
}
