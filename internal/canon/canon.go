// Package canon computes the stable, hash-based identity of nodes and
// edges (spec.md §4.5). The node hash is the cryptographic hash of an
// entity's canonical form string; the edge hash is the cryptographic hash
// of a canonical JSON encoding of the edge's data dictionary.
//
// spec.md §9 permits any SHA-512-or-equivalent cryptographic hash; this
// uses golang.org/x/crypto/blake2b's 512-bit variant rather than
// crypto/sha512 so the repository's cryptography dependency (pulled from
// the pack's SSH-client usage elsewhere) is exercised by the core domain
// instead of dropped.
package canon

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Hash is a hex-encoded 512-bit digest, used as node and edge identity.
type Hash string

// HashString returns the hash of s's UTF-8 bytes.
func HashString(s string) Hash {
	sum := blake2b.Sum512([]byte(s))
	return Hash(hex.EncodeToString(sum[:]))
}

// HashBytes returns the hash of b.
func HashBytes(b []byte) Hash {
	sum := blake2b.Sum512(b)
	return Hash(hex.EncodeToString(sum[:]))
}
