package ethbridge

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/snowfork/go-substrate-rpc-client/v4/scale"

	"github.com/chainsafe/ethbridge-events/pkg/storage"
)

// EthAddressLength is the size of an Ethereum address in bytes.
const EthAddressLength = 20

var errMissingPrefix = errors.New("missing 0x prefix")

// EthAddress is an Ethereum account or contract address: the last 20 bytes
// of the Keccak hash of the controlling public key, or a contract address.
// Any 20 bytes are valid.
type EthAddress [EthAddressLength]byte

// ParseEthAddress parses "0x" followed by 40 hex digits. Lower-case and
// EIP-55 checksummed input are both accepted; checksum casing is not
// verified.
func ParseEthAddress(s string) (EthAddress, error) {
	if !strings.HasPrefix(s, "0x") {
		return EthAddress{}, &AddressParseError{Input: s, Err: errMissingPrefix}
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return EthAddress{}, &AddressParseError{Input: s, Err: err}
	}
	if len(b) != EthAddressLength {
		return EthAddress{}, &AddressParseError{
			Input: s,
			Err:   fmt.Errorf("expected %d bytes, got %d", EthAddressLength, len(b)),
		}
	}
	var a EthAddress
	copy(a[:], b)
	return a, nil
}

// MustParseEthAddress is like ParseEthAddress but panics on error.
func MustParseEthAddress(s string) EthAddress {
	a, err := ParseEthAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// EthAddressFromCommon converts a go-ethereum address.
func EthAddressFromCommon(a common.Address) EthAddress {
	return EthAddress(a)
}

// Common converts to a go-ethereum address.
func (a EthAddress) Common() common.Address {
	return common.Address(a)
}

// Canonical is the form used in storage keys and serialization:
// "0x" + 40 lower-case hex digits,
// e.g. "0x6b175474e89094c44da98b954eedeac495271d0f".
func (a EthAddress) Canonical() string {
	return hexutil.Encode(a[:])
}

// Checksummed returns the EIP-55 mixed-case form.
func (a EthAddress) Checksummed() string {
	return a.Common().Hex()
}

func (a EthAddress) String() string {
	return a.Canonical()
}

// Compare orders addresses by their raw bytes.
func (a EthAddress) Compare(b EthAddress) int {
	return bytes.Compare(a[:], b[:])
}

func (a EthAddress) Equal(b EthAddress) bool {
	return a == b
}

func (a EthAddress) MarshalText() ([]byte, error) {
	return []byte(a.Canonical()), nil
}

func (a *EthAddress) UnmarshalText(text []byte) error {
	parsed, err := ParseEthAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Raw implements storage.KeySeg.
func (a EthAddress) Raw() string {
	return a.Canonical()
}

// ToDBKey implements storage.KeySeg.
func (a EthAddress) ToDBKey() storage.DbKeySeg {
	return storage.DbKeySeg(a.Raw())
}

// ParseEthAddressKeySeg decodes an address stored as a key segment. Failures
// are reported as *storage.ParseKeySegError rather than *AddressParseError.
func ParseEthAddressKeySeg(raw string) (EthAddress, error) {
	a, err := ParseEthAddress(raw)
	if err != nil {
		cause := err
		var parseErr *AddressParseError
		if errors.As(err, &parseErr) {
			cause = parseErr.Err
		}
		return EthAddress{}, &storage.ParseKeySegError{Segment: raw, Err: cause}
	}
	return a, nil
}

// Encode writes the 20 raw bytes.
func (a EthAddress) Encode(encoder scale.Encoder) error {
	return encoder.Write(a[:])
}

// Decode reads 20 raw bytes.
func (a *EthAddress) Decode(decoder scale.Decoder) error {
	return decoder.Read(a[:])
}
