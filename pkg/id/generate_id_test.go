package id

import (
	"encoding/hex"
	"testing"
)

func TestNewID32_TokenShape(t *testing.T) {
	tok := NewID32()

	if len(tok) != 32 {
		t.Fatalf("token length = %d, want 32 (%q)", len(tok), tok)
	}
	raw, err := hex.DecodeString(tok)
	if err != nil {
		t.Fatalf("token is not hex: %v (%q)", err, tok)
	}
	if len(raw) != 16 {
		t.Fatalf("token decodes to %d bytes, want 16", len(raw))
	}
	for _, r := range tok {
		if r >= 'A' && r <= 'Z' {
			t.Fatalf("token must be lowercase hex: %q", tok)
		}
	}
}

func TestNewID32_NoCollisions(t *testing.T) {
	seen := make(map[string]struct{}, 500)
	for i := 0; i < 500; i++ {
		tok := NewID32()
		if _, dup := seen[tok]; dup {
			t.Fatalf("collision after %d tokens: %q", i, tok)
		}
		seen[tok] = struct{}{}
	}
}
