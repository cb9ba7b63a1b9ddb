package jsonv

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Digest computes a domain-separated SHA-256 over the canonical form of v.
// Format: SHA256(domain + 0x00 + canonical JSON).
// The null byte separator prevents domain/data boundary ambiguity.
func Digest(domain string, v Value) (string, error) {
	canonical, err := MarshalCanonical(v)
	if err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(canonical)
	return hex.EncodeToString(h.Sum(nil)), nil
}
