package api

import (
	"net/url"
	"strings"

	"github.com/bsv-blockchain/go-sdk/chainhash"
)

// NormalizeID validates a block or transaction identifier and returns the
// canonical form that is placed in the request path.
//
// Accepted forms:
//   - decimal height or index: "0", "840000"
//   - 64-character chain hash: "000000000019d6...8ce26f" (lowercased)
//   - 0x-prefixed hex, as used by the simple flavor: "0xAbC1" -> "0xabc1"
//
// Everything else, including anything containing '/', '?' or whitespace,
// is an IdentifierError.
func NormalizeID(id string) (string, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return "", &IdentifierError{ID: id, Reason: "empty"}
	}

	if isDecimal(trimmed) {
		return trimmed, nil
	}

	if rest, ok := strings.CutPrefix(strings.ToLower(trimmed), "0x"); ok {
		if rest == "" || !isHex(rest) {
			return "", &IdentifierError{ID: id, Reason: "0x prefix must be followed by hex digits"}
		}
		return "0x" + rest, nil
	}

	if len(trimmed) == chainhash.MaxHashStringSize {
		h, err := chainhash.NewHashFromHex(trimmed)
		if err != nil {
			return "", &IdentifierError{ID: id, Reason: err.Error()}
		}
		return h.String(), nil
	}

	return "", &IdentifierError{ID: id, Reason: "expected a height, a 64-character hash or 0x-prefixed hex"}
}

// NormalizeHash is NormalizeID restricted to 64-character chain hashes.
func NormalizeHash(id string) (string, error) {
	norm, err := NormalizeID(id)
	if err != nil {
		return "", err
	}
	if len(norm) != chainhash.MaxHashStringSize || strings.HasPrefix(norm, "0x") {
		return "", &IdentifierError{ID: id, Reason: "expected a 64-character hash"}
	}
	return norm, nil
}

// BuildURL appends the normalized identifier to base as an escaped path segment.
func BuildURL(base, id string) (string, error) {
	norm, err := NormalizeID(id)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(norm), nil
}

func isDecimal(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
