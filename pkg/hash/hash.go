// Package hash holds the fixed-size digests used across the bridge:
// SHA-256 content hashes and Keccak-256 hashes as produced on Ethereum.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/snowfork/go-substrate-rpc-client/v4/scale"
	"golang.org/x/crypto/sha3"
)

// Size is the length in bytes of every digest in this package.
const Size = 32

// Hash is a SHA-256 digest.
type Hash [Size]byte

// Sha256 returns the SHA-256 digest of data.
func Sha256(data []byte) Hash {
	return sha256.Sum256(data)
}

// ParseHash parses a 64 character hex string, with or without a 0x prefix.
func ParseHash(s string) (Hash, error) {
	var h Hash
	if err := decodeHex(h[:], s); err != nil {
		return Hash{}, fmt.Errorf("invalid hash %q: %w", s, err)
	}
	return h, nil
}

// Bytes returns a copy of the digest as a slice.
func (h Hash) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, h[:])
	return out
}

// String returns the lower-case hex form without prefix.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether every byte is zero.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := ParseHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// Encode writes the raw 32 bytes.
func (h Hash) Encode(encoder scale.Encoder) error {
	return encoder.Write(h[:])
}

// Decode reads the raw 32 bytes.
func (h *Hash) Decode(decoder scale.Decoder) error {
	return decoder.Read(h[:])
}

// KeccakHash is a Keccak-256 digest, the hash function used by Ethereum
// contracts (e.g. for validator set commitments).
type KeccakHash [Size]byte

// Keccak256 returns the legacy Keccak-256 digest of data.
func Keccak256(data ...[]byte) KeccakHash {
	hasher := sha3.NewLegacyKeccak256()
	for _, d := range data {
		hasher.Write(d)
	}
	var out KeccakHash
	hasher.Sum(out[:0])
	return out
}

// ParseKeccakHash parses a 64 character hex string, with or without a 0x prefix.
func ParseKeccakHash(s string) (KeccakHash, error) {
	var h KeccakHash
	if err := decodeHex(h[:], s); err != nil {
		return KeccakHash{}, fmt.Errorf("invalid keccak hash %q: %w", s, err)
	}
	return h, nil
}

// String returns the 0x-prefixed lower-case hex form.
func (h KeccakHash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

func (h KeccakHash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *KeccakHash) UnmarshalText(text []byte) error {
	parsed, err := ParseKeccakHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// Encode writes the raw 32 bytes.
func (h KeccakHash) Encode(encoder scale.Encoder) error {
	return encoder.Write(h[:])
}

// Decode reads the raw 32 bytes.
func (h *KeccakHash) Decode(decoder scale.Decoder) error {
	return decoder.Read(h[:])
}

func decodeHex(dst []byte, s string) error {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 2*len(dst) {
		return fmt.Errorf("expected %d hex characters, got %d", 2*len(dst), len(s))
	}
	_, err := hex.Decode(dst, []byte(s))
	return err
}
