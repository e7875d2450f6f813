package service

import (
	"errors"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plain text")
	}
	if err := CheckPassword(hash, "s3cret-pass"); err != nil {
		t.Fatalf("CheckPassword should accept the right password: %v", err)
	}
	if err := CheckPassword(hash, "wrong-pass"); err == nil {
		t.Fatal("CheckPassword should reject a wrong password")
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	t.Parallel()
	if err := ValidatePasswordStrength("short"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword, got %v", err)
	}
	if err := ValidatePasswordStrength("long-enough-pass"); err != nil {
		t.Fatalf("valid password rejected: %v", err)
	}
}

func TestComputeRefreshHashDeterministic(t *testing.T) {
	t.Parallel()
	a := ComputeRefreshHash("raw-token", "secret-1")
	b := ComputeRefreshHash("raw-token", "secret-1")
	if a != b {
		t.Fatal("same input must hash identically")
	}
	if a == ComputeRefreshHash("raw-token", "secret-2") {
		t.Fatal("different secrets must produce different hashes")
	}
	if a == ComputeRefreshHash("other-token", "secret-1") {
		t.Fatal("different tokens must produce different hashes")
	}
}
