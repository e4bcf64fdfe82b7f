package services

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Run("ProducesSaltDollarHash", func(t *testing.T) {
		hash, err := HashPassword("hunter2")
		if err != nil {
			t.Fatalf("HashPassword: %v", err)
		}
		if strings.Count(hash, "$") != 1 {
			t.Errorf("unexpected format: %q", hash)
		}
	})

	t.Run("EmptyPasswordRejected", func(t *testing.T) {
		if _, err := HashPassword(""); err == nil {
			t.Error("expected error for empty password")
		}
	})

	t.Run("SaltsDiffer", func(t *testing.T) {
		a, err := HashPassword("hunter2")
		if err != nil {
			t.Fatalf("HashPassword: %v", err)
		}
		b, err := HashPassword("hunter2")
		if err != nil {
			t.Fatalf("HashPassword: %v", err)
		}
		if a == b {
			t.Error("two hashes of the same password are identical")
		}
	})
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	t.Run("Match", func(t *testing.T) {
		ok, err := VerifyPassword(hash, "hunter2")
		if err != nil {
			t.Fatalf("VerifyPassword: %v", err)
		}
		if !ok {
			t.Error("correct password rejected")
		}
	})

	t.Run("Mismatch", func(t *testing.T) {
		ok, err := VerifyPassword(hash, "wrong")
		if err != nil {
			t.Fatalf("VerifyPassword: %v", err)
		}
		if ok {
			t.Error("wrong password accepted")
		}
	})

	t.Run("MalformedStoredHash", func(t *testing.T) {
		for _, stored := range []string{"", "nodollar", "a$b$c"} {
			if _, err := VerifyPassword(stored, "x"); err == nil {
				t.Errorf("no error for stored hash %q", stored)
			}
		}
	})
}

func TestComparePasswords(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !ComparePasswords(hash, "hunter2") {
		t.Error("correct password rejected")
	}
	if ComparePasswords(hash, "wrong") {
		t.Error("wrong password accepted")
	}
	if ComparePasswords("garbage", "x") {
		t.Error("garbage hash accepted")
	}
}
