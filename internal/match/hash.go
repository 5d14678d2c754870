package match

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefix for content-addressed state identity. The version suffix
// enables future algorithm migration without colliding with old hashes.
const domainState = "willow/state/v1"

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data). The null byte prevents domain/data
// boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// StateHash computes the content-addressed identity of a MatchState.
//
// Two states with equal canonical serializations hash identically, so the
// hash doubles as a cheap deep-equality check: the determinism validator
// compares hashes first and only walks the canonical maps on mismatch.
func StateHash(s *MatchState) (string, error) {
	canonical, err := MarshalCanonical(s.CanonicalMap())
	if err != nil {
		return "", fmt.Errorf("state hash: %w", err)
	}
	return hashWithDomain(domainState, canonical), nil
}
