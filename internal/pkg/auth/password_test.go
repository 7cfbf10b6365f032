package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hashed == "secret1" {
		t.Fatal("hash must differ from the plain password")
	}

	if !CheckPassword(hashed, "secret1") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hashed, "wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	second, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if first == second {
		t.Fatal("hashing the same password twice must yield different hashes")
	}
}
