package utils

import (
	"encoding/hex"
	"testing"

	"github.com/google/uuid"
)

func TestNormalizeEmail(t *testing.T) {
	tests := map[string]string{
		"jan@example.com":         "jan@example.com",
		"  Jan.Kowalski@Mail.PL ": "jan.kowalski@mail.pl",
		"":                        "",
	}

	for in, want := range tests {
		if got := NormalizeEmail(in); got != want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerateOneTimeToken(t *testing.T) {
	first, err := GenerateOneTimeToken()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(first) != 64 {
		t.Errorf("expected 64 characters, got %d", len(first))
	}
	if _, err := hex.DecodeString(first); err != nil {
		t.Errorf("expected hex string, got %q", first)
	}

	second, err := GenerateOneTimeToken()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if first == second {
		t.Error("expected two different tokens")
	}
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected valid uuid, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
	if id == g.Generate() {
		t.Error("expected unique ids")
	}
}
