package ethbridge

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/snowfork/go-substrate-rpc-client/v4/scale"
)

// Uint is a 256-bit unsigned integer laid out like Ethereum's native word:
// four 64-bit words, word 0 least significant.
//
// Ordering is numeric. Never compare the arrays element by element: word 0
// is the least significant one.
type Uint [4]uint64

// NewUint zero-extends v.
func NewUint(v uint64) Uint {
	return Uint{v}
}

// UintFromBig converts a non-negative big.Int of at most 256 bits.
func UintFromBig(b *big.Int) (Uint, error) {
	if b == nil {
		return Uint{}, fmt.Errorf("nil integer")
	}
	if b.Sign() < 0 {
		return Uint{}, fmt.Errorf("negative integer %s", b)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return Uint{}, fmt.Errorf("integer %s exceeds 256 bits", b)
	}
	return Uint(*v), nil
}

// ParseUint parses a decimal string, or a hex string with a 0x prefix.
func ParseUint(s string) (Uint, error) {
	var (
		v   *uint256.Int
		err error
	)
	if s == "" {
		return Uint{}, fmt.Errorf("invalid uint256: empty string")
	}
	if strings.HasPrefix(s, "0x") {
		v, err = uint256.FromHex(s)
	} else {
		v, err = uint256.FromDecimal(s)
	}
	if err != nil {
		return Uint{}, fmt.Errorf("invalid uint256 %q: %w", s, err)
	}
	return Uint(*v), nil
}

func (u Uint) word() *uint256.Int {
	v := uint256.Int(u)
	return &v
}

// LittleEndianBytes returns the 32-byte little-endian representation.
func (u Uint) LittleEndianBytes() [32]byte {
	var out [32]byte
	for i, w := range u {
		binary.LittleEndian.PutUint64(out[i*8:], w)
	}
	return out
}

// UintFromLittleEndian is the inverse of LittleEndianBytes.
func UintFromLittleEndian(b [32]byte) Uint {
	var u Uint
	for i := range u {
		u[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return u
}

// Cmp compares numerically, most significant word first.
func (u Uint) Cmp(other Uint) int {
	return u.word().Cmp(other.word())
}

func (u Uint) Equal(other Uint) bool {
	return u == other
}

func (u Uint) IsZero() bool {
	return u == Uint{}
}

// Uint64 returns the value if it fits in 64 bits.
func (u Uint) Uint64() (uint64, bool) {
	return u[0], u[1] == 0 && u[2] == 0 && u[3] == 0
}

// Big returns the value as a big.Int.
func (u Uint) Big() *big.Int {
	return u.word().ToBig()
}

// Add returns u+other and whether the addition overflowed 256 bits.
func (u Uint) Add(other Uint) (Uint, bool) {
	var z uint256.Int
	_, overflow := z.AddOverflow(u.word(), other.word())
	return Uint(z), overflow
}

// Next returns u+1, wrapping to zero on overflow.
func (u Uint) Next() Uint {
	next, _ := u.Add(NewUint(1))
	return next
}

// String returns the decimal form.
func (u Uint) String() string {
	return u.word().Dec()
}

func (u Uint) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint) UnmarshalText(text []byte) error {
	parsed, err := ParseUint(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Encode writes the 32 little-endian bytes.
func (u Uint) Encode(encoder scale.Encoder) error {
	b := u.LittleEndianBytes()
	return encoder.Write(b[:])
}

// Decode reads 32 little-endian bytes.
func (u *Uint) Decode(decoder scale.Decoder) error {
	var b [32]byte
	if err := decoder.Read(b[:]); err != nil {
		return err
	}
	*u = UintFromLittleEndian(b)
	return nil
}
