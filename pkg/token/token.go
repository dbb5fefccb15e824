// Package token provides the native token amount used in bridge payloads.
package token

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/snowfork/go-substrate-rpc-client/v4/scale"
)

// Decimals is the number of fractional digits of the native token.
const Decimals = 6

// ErrInvalidAmount is returned when an amount string cannot be represented.
var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a quantity of a token expressed in micro units.
// The zero value is a valid zero amount.
type Amount struct {
	micro uint64
}

// NewAmount creates an amount from micro units.
func NewAmount(micro uint64) Amount {
	return Amount{micro: micro}
}

// ParseAmount parses a decimal string such as "12.5" or "0.000001".
// At most Decimals fractional digits are accepted.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w %q: %v", ErrInvalidAmount, s, err)
	}
	if d.Sign() < 0 {
		return Amount{}, fmt.Errorf("%w %q: negative", ErrInvalidAmount, s)
	}
	micro := d.Shift(Decimals)
	if !micro.IsInteger() {
		return Amount{}, fmt.Errorf("%w %q: more than %d decimal places", ErrInvalidAmount, s, Decimals)
	}
	bi := micro.BigInt()
	if !bi.IsUint64() {
		return Amount{}, fmt.Errorf("%w %q: out of range", ErrInvalidAmount, s)
	}
	return Amount{micro: bi.Uint64()}, nil
}

// Micro returns the raw micro unit value.
func (a Amount) Micro() uint64 {
	return a.micro
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.micro == 0
}

// Add returns a+b, failing on overflow.
func (a Amount) Add(b Amount) (Amount, error) {
	if a.micro > math.MaxUint64-b.micro {
		return Amount{}, fmt.Errorf("%w: %s + %s overflows", ErrInvalidAmount, a, b)
	}
	return Amount{micro: a.micro + b.micro}, nil
}

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b.
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.micro < b.micro:
		return -1
	case a.micro > b.micro:
		return 1
	default:
		return 0
	}
}

// Decimal returns the amount in whole token units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(a.micro), -Decimals)
}

// String formats the amount with exactly Decimals fractional digits.
func (a Amount) String() string {
	return a.Decimal().StringFixed(Decimals)
}

func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Encode writes the micro units as a little-endian uint64.
func (a Amount) Encode(encoder scale.Encoder) error {
	return encoder.Encode(a.micro)
}

// Decode reads a little-endian uint64.
func (a *Amount) Decode(decoder scale.Decoder) error {
	return decoder.Decode(&a.micro)
}
