// Package address models an account address on the native ledger.
//
// The bridge treats native addresses as opaque: it only needs to construct,
// compare and encode them. Parsing performs a shape check, not a full
// address decoding.
package address

import (
	"errors"
	"fmt"
	"strings"

	"github.com/snowfork/go-substrate-rpc-client/v4/scale"
)

// MaxLength bounds the textual size of an address.
const MaxLength = 128

// ErrInvalidAddress is returned for strings that cannot be native addresses.
var ErrInvalidAddress = errors.New("invalid native address")

// Address is a native ledger address in its canonical textual form.
type Address struct {
	raw string
}

// Parse validates s as a native address. Addresses are lower-case ASCII
// alphanumerics, e.g. "atest1v4ehgw36xvcyyvejgvenxs34g3zygv3jxqunjd6rxyeyys3sxy6rwvfkx4qnj33hg9qnvse4lsfctw".
func Parse(s string) (Address, error) {
	if s == "" || len(s) > MaxLength {
		return Address{}, fmt.Errorf("%w %q: length must be between 1 and %d", ErrInvalidAddress, s, MaxLength)
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return Address{}, fmt.Errorf("%w %q: unexpected character %q", ErrInvalidAddress, s, c)
		}
	}
	return Address{raw: s}, nil
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the canonical textual form.
func (a Address) String() string {
	return a.raw
}

// IsZero reports whether a is the unset address.
func (a Address) IsZero() bool {
	return a.raw == ""
}

// Compare orders addresses by their canonical bytes.
func (a Address) Compare(b Address) int {
	return strings.Compare(a.raw, b.raw)
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.raw), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Encode writes the address as a length-prefixed string.
func (a Address) Encode(encoder scale.Encoder) error {
	if a.IsZero() {
		return fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}
	return encoder.Encode(a.raw)
}

// Decode reads a length-prefixed string and validates it.
func (a *Address) Decode(decoder scale.Decoder) error {
	var raw string
	if err := decoder.Decode(&raw); err != nil {
		return err
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
