package stream

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// StateHash computes SHA-256 of a canonical document encoding.
// Use this with the emitter output, never with hand-authored text.
func StateHash(canonical []byte) [32]byte {
	return sha256.Sum256(canonical)
}

// VerifyHash checks if the current state hash matches the expected one.
func VerifyHash(current, expected [32]byte) bool {
	return current == expected
}

// HashToHex converts a 32-byte hash to a lowercase hex string.
func HashToHex(h [32]byte) string {
	return hex.EncodeToString(h[:])
}

// HexToHash parses a 64-character hex string to a 32-byte hash.
// An optional "sha256:" prefix is accepted.
func HexToHash(s string) ([32]byte, bool) {
	var h [32]byte
	s = strings.TrimPrefix(s, "sha256:")
	if len(s) != 64 {
		return h, false
	}
	if _, err := hex.Decode(h[:], []byte(s)); err != nil {
		return h, false
	}
	return h, true
}
