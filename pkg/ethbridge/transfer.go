package ethbridge

import (
	"github.com/snowfork/go-substrate-rpc-client/v4/scale"

	"github.com/chainsafe/ethbridge-events/pkg/address"
	"github.com/chainsafe/ethbridge-events/pkg/token"
)

// TransferToNamada moves value from Ethereum to the native ledger.
type TransferToNamada struct {
	// Quantity of the ERC20 token in the transfer
	Amount token.Amount `json:"amount"`
	// Address of the smart contract issuing the token
	Asset EthAddress `json:"asset"`
	// The address receiving wrapped assets on the native ledger
	Receiver address.Address `json:"receiver"`
}

// Compare orders transfers field by field in declaration order.
func (t TransferToNamada) Compare(o TransferToNamada) int {
	if c := t.Amount.Cmp(o.Amount); c != 0 {
		return c
	}
	if c := t.Asset.Compare(o.Asset); c != 0 {
		return c
	}
	return t.Receiver.Compare(o.Receiver)
}

func (t TransferToNamada) Equal(o TransferToNamada) bool {
	return t == o
}

func (t TransferToNamada) Encode(encoder scale.Encoder) error {
	if err := t.Amount.Encode(encoder); err != nil {
		return err
	}
	if err := t.Asset.Encode(encoder); err != nil {
		return err
	}
	return t.Receiver.Encode(encoder)
}

func (t *TransferToNamada) Decode(decoder scale.Decoder) error {
	if err := t.Amount.Decode(decoder); err != nil {
		return err
	}
	if err := t.Asset.Decode(decoder); err != nil {
		return err
	}
	return t.Receiver.Decode(decoder)
}

// TransferToEthereum moves value from the native ledger to Ethereum. The gas
// fields record the fee paid in the native token and who paid it; they are
// not validated here.
type TransferToEthereum struct {
	// Quantity of wrapped asset in the transfer
	Amount token.Amount `json:"amount"`
	// Address of the smart contract issuing the token
	Asset EthAddress `json:"asset"`
	// The address receiving assets on Ethereum
	Receiver EthAddress `json:"receiver"`
	// The amount of fees paid in the native token
	GasAmount token.Amount `json:"gas_amount"`
	// The account of the fee payer
	GasPayer address.Address `json:"gas_payer"`
}

// Compare orders transfers field by field in declaration order.
func (t TransferToEthereum) Compare(o TransferToEthereum) int {
	if c := t.Amount.Cmp(o.Amount); c != 0 {
		return c
	}
	if c := t.Asset.Compare(o.Asset); c != 0 {
		return c
	}
	if c := t.Receiver.Compare(o.Receiver); c != 0 {
		return c
	}
	if c := t.GasAmount.Cmp(o.GasAmount); c != 0 {
		return c
	}
	return t.GasPayer.Compare(o.GasPayer)
}

func (t TransferToEthereum) Equal(o TransferToEthereum) bool {
	return t == o
}

func (t TransferToEthereum) Encode(encoder scale.Encoder) error {
	if err := t.Amount.Encode(encoder); err != nil {
		return err
	}
	if err := t.Asset.Encode(encoder); err != nil {
		return err
	}
	if err := t.Receiver.Encode(encoder); err != nil {
		return err
	}
	if err := t.GasAmount.Encode(encoder); err != nil {
		return err
	}
	return t.GasPayer.Encode(encoder)
}

func (t *TransferToEthereum) Decode(decoder scale.Decoder) error {
	if err := t.Amount.Decode(decoder); err != nil {
		return err
	}
	if err := t.Asset.Decode(decoder); err != nil {
		return err
	}
	if err := t.Receiver.Decode(decoder); err != nil {
		return err
	}
	if err := t.GasAmount.Decode(decoder); err != nil {
		return err
	}
	return t.GasPayer.Decode(decoder)
}

// TokenWhitelist allows an Ethereum token across the bridge, capping the
// amount of it the bridge may hold.
type TokenWhitelist struct {
	// Address of the Ethereum smart contract issuing the token
	Token EthAddress `json:"token"`
	// Maximum amount of the token allowed on the bridge
	Cap token.Amount `json:"cap"`
}

func (w TokenWhitelist) Compare(o TokenWhitelist) int {
	if c := w.Token.Compare(o.Token); c != 0 {
		return c
	}
	return w.Cap.Cmp(o.Cap)
}

func (w TokenWhitelist) Equal(o TokenWhitelist) bool {
	return w == o
}

func (w TokenWhitelist) Encode(encoder scale.Encoder) error {
	if err := w.Token.Encode(encoder); err != nil {
		return err
	}
	return w.Cap.Encode(encoder)
}

func (w *TokenWhitelist) Decode(decoder scale.Decoder) error {
	if err := w.Token.Decode(decoder); err != nil {
		return err
	}
	return w.Cap.Decode(decoder)
}
