package service

import (
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	for _, password := range []string{"", "a", "correct horse battery staple", "páss wörd"} {
		digest, err := HashPassword(password)
		if err != nil {
			t.Fatalf("HashPassword(%q) failed: %v", password, err)
		}
		if !strings.HasPrefix(digest, "$argon2id$") {
			t.Fatalf("unexpected digest format: %s", digest)
		}
		if !VerifyPassword(password, digest) {
			t.Fatalf("VerifyPassword(%q) = false for its own digest", password)
		}
	}
}

func TestVerifyPasswordMismatch(t *testing.T) {
	digest, err := HashPassword("right")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if VerifyPassword("wrong", digest) {
		t.Fatal("VerifyPassword accepted the wrong password")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	second, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password were identical - salt is not applied")
	}
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	for _, digest := range []string{
		"",
		"plainsha256hex",
		"$argon2id$v=19$m=65536,t=1,p=4$notbase64!!!$hash",
		"$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
	} {
		if VerifyPassword("anything", digest) {
			t.Fatalf("VerifyPassword accepted malformed digest %q", digest)
		}
	}
}
