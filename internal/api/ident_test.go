package api

import (
	"errors"
	"testing"
)

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{"height", "840000", "840000", false},
		{"zero", "0", "0", false},
		{"padded height", "  42 ", "42", false},
		{"hash", "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f", "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f", false},
		{"upper hash", "000000000019D6689C085AE165831E934FF763AE46A2A6C172B3F1B60A8CE26F", "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f", false},
		{"0x hex", "0xAbC123", "0xabc123", false},
		{"0x empty", "0x", "", true},
		{"0x non hex", "0xzz", "", true},
		{"empty", "", "", true},
		{"spaces only", "   ", "", true},
		{"slash", "../rawtx/1", "", true},
		{"query", "1?format=hex", "", true},
		{"inner space", "84 0000", "", true},
		{"short hash", "19d6689c085ae165831e934ff763ae46", "", true},
		{"64 non hex", "zz0000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if tt.wantErr {
				var idErr *IdentifierError
				if !errors.As(err, &idErr) {
					t.Errorf("error type = %T, want *IdentifierError", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("NormalizeID(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestNormalizeHash(t *testing.T) {
	hash := "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"
	if got, err := NormalizeHash(hash); err != nil || got != hash {
		t.Errorf("NormalizeHash(hash) = %q, %v", got, err)
	}
	for _, id := range []string{"840000", "0x" + hash[2:], "abc"} {
		if _, err := NormalizeHash(id); err == nil {
			t.Errorf("NormalizeHash(%q) should fail", id)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		id   string
		want string
	}{
		{"https://blockchain.info/rawblock", "840000", "https://blockchain.info/rawblock/840000"},
		{"https://blockchain.info/rawblock/", "840000", "https://blockchain.info/rawblock/840000"},
		{"https://api.blockchain.com/transaction", "0xABCD", "https://api.blockchain.com/transaction/0xabcd"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := BuildURL(tt.base, tt.id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("BuildURL() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := BuildURL("https://blockchain.info/rawblock", "1/../../admin"); err == nil {
		t.Error("BuildURL should reject path traversal")
	}
}
