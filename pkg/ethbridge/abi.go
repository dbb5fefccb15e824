package ethbridge

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var uint256Arguments = func() abi.Arguments {
	t, err := abi.NewType("uint256", "", nil)
	if err != nil {
		panic(err)
	}
	return abi.Arguments{{Name: "value", Type: t}}
}()

// ABIArguments describes u as a single Solidity uint256 argument.
func (u Uint) ABIArguments() abi.Arguments {
	return uint256Arguments
}

// PackABI returns the 32-byte big-endian ABI word the bridge contracts
// expect, e.g. when a nonce is signed over.
func (u Uint) PackABI() ([]byte, error) {
	return uint256Arguments.Pack(u.Big())
}

// UnpackABIUint decodes a word produced by PackABI.
func UnpackABIUint(data []byte) (Uint, error) {
	values, err := uint256Arguments.Unpack(data)
	if err != nil {
		return Uint{}, fmt.Errorf("unpack uint256: %w", err)
	}
	v, ok := values[0].(*big.Int)
	if !ok {
		return Uint{}, fmt.Errorf("unpack uint256: unexpected type %T", values[0])
	}
	return UintFromBig(v)
}
