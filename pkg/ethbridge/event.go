package ethbridge

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/snowfork/go-substrate-rpc-client/v4/scale"

	"github.com/chainsafe/ethbridge-events/pkg/hash"
)

// maxDecodeLen bounds sequence and string lengths read from untrusted input.
const maxDecodeLen = 1 << 20

// EventKind identifies an Event variant. The numeric value is the variant
// tag written by EncodeEvent.
type EventKind uint8

const (
	KindTransfersToNamada EventKind = iota
	KindTransfersToEthereum
	KindValidatorSetUpdate
	KindNewContract
	KindUpgradedContract
	KindUpdateBridgeWhitelist
)

var kindNames = [...]string{
	KindTransfersToNamada:     "transfers_to_namada",
	KindTransfersToEthereum:   "transfers_to_ethereum",
	KindValidatorSetUpdate:    "validator_set_update",
	KindNewContract:           "new_contract",
	KindUpgradedContract:      "upgraded_contract",
	KindUpdateBridgeWhitelist: "update_bridge_whitelist",
}

// EventKinds lists every kind in tag order.
func EventKinds() []EventKind {
	kinds := make([]EventKind, len(kindNames))
	for i := range kindNames {
		kinds[i] = EventKind(i)
	}
	return kinds
}

func (k EventKind) Valid() bool {
	return int(k) < len(kindNames)
}

func (k EventKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseEventKind is the inverse of EventKind.String.
func ParseEventKind(s string) (EventKind, error) {
	for i, name := range kindNames {
		if name == s {
			return EventKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEventKind, s)
}

func (k EventKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEventKind, uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *EventKind) UnmarshalText(text []byte) error {
	parsed, err := ParseEventKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Event is an Ethereum event as observed by a validator. The set of
// variants is closed; the types in this package are the only
// implementations.
type Event interface {
	Kind() EventKind
	isEthereumEvent()
}

// TransfersToNamada is a batch of transfers from Ethereum into the native
// ledger.
type TransfersToNamada struct {
	// Monotonically increasing nonce
	Nonce Uint `json:"nonce"`
	// The batch of transfers
	Transfers []TransferToNamada `json:"transfers"`
}

// TransfersToEthereum is a batch of transfers out of the native ledger that
// the bridge contract has executed.
type TransfersToEthereum struct {
	Nonce     Uint                 `json:"nonce"`
	Transfers []TransferToEthereum `json:"transfers"`
}

// ValidatorSetUpdate records a change of the validator sets held by the
// bridge and governance contracts.
type ValidatorSetUpdate struct {
	Nonce Uint `json:"nonce"`
	// Hash of the validators in the bridge contract
	BridgeValidatorHash hash.KeccakHash `json:"bridge_validator_hash"`
	// Hash of the validators in the governance contract
	GovernanceValidatorHash hash.KeccakHash `json:"governance_validator_hash"`
}

// NewContract records a newly deployed contract.
type NewContract struct {
	Name    string     `json:"name"`
	Address EthAddress `json:"address"`
}

// UpgradedContract records a contract replacing an existing one of the
// same name.
type UpgradedContract struct {
	Name    string     `json:"name"`
	Address EthAddress `json:"address"`
}

// UpdateBridgeWhitelist changes the set of tokens allowed over the bridge.
type UpdateBridgeWhitelist struct {
	Nonce     Uint             `json:"nonce"`
	Whitelist []TokenWhitelist `json:"whitelist"`
}

func (TransfersToNamada) Kind() EventKind     { return KindTransfersToNamada }
func (TransfersToEthereum) Kind() EventKind   { return KindTransfersToEthereum }
func (ValidatorSetUpdate) Kind() EventKind    { return KindValidatorSetUpdate }
func (NewContract) Kind() EventKind           { return KindNewContract }
func (UpgradedContract) Kind() EventKind      { return KindUpgradedContract }
func (UpdateBridgeWhitelist) Kind() EventKind { return KindUpdateBridgeWhitelist }

func (TransfersToNamada) isEthereumEvent()     {}
func (TransfersToEthereum) isEthereumEvent()   {}
func (ValidatorSetUpdate) isEthereumEvent()    {}
func (NewContract) isEthereumEvent()           {}
func (UpgradedContract) isEthereumEvent()      {}
func (UpdateBridgeWhitelist) isEthereumEvent() {}

// asValue dereferences pointer variants so callers can switch on value
// types only.
func asValue(ev Event) (Event, error) {
	switch e := ev.(type) {
	case nil:
		return nil, ErrNilEvent
	case *TransfersToNamada:
		if e == nil {
			return nil, ErrNilEvent
		}
		return *e, nil
	case *TransfersToEthereum:
		if e == nil {
			return nil, ErrNilEvent
		}
		return *e, nil
	case *ValidatorSetUpdate:
		if e == nil {
			return nil, ErrNilEvent
		}
		return *e, nil
	case *NewContract:
		if e == nil {
			return nil, ErrNilEvent
		}
		return *e, nil
	case *UpgradedContract:
		if e == nil {
			return nil, ErrNilEvent
		}
		return *e, nil
	case *UpdateBridgeWhitelist:
		if e == nil {
			return nil, ErrNilEvent
		}
		return *e, nil
	default:
		return ev, nil
	}
}

// KindOf returns the variant of ev, or false for a nil event.
func KindOf(ev Event) (EventKind, bool) {
	v, err := asValue(ev)
	if err != nil {
		return 0, false
	}
	return v.Kind(), true
}

// EncodeEvent produces the canonical encoding of ev: the variant tag as one
// byte followed by the variant's fields in declaration order.
func EncodeEvent(ev Event) ([]byte, error) {
	v, err := asValue(ev)
	if err != nil {
		return nil, &EncodingError{Op: "encode", Err: err}
	}

	var buf bytes.Buffer
	encoder := *scale.NewEncoder(&buf)
	if err := encoder.PushByte(byte(v.Kind())); err != nil {
		return nil, &EncodingError{Op: "encode", Err: err}
	}

	switch e := v.(type) {
	case TransfersToNamada:
		err = encodeNonceAndSeq(encoder, e.Nonce, e.Transfers)
	case TransfersToEthereum:
		err = encodeNonceAndSeq(encoder, e.Nonce, e.Transfers)
	case ValidatorSetUpdate:
		err = encodeValidatorSetUpdate(encoder, e)
	case NewContract:
		err = encodeContract(encoder, e.Name, e.Address)
	case UpgradedContract:
		err = encodeContract(encoder, e.Name, e.Address)
	case UpdateBridgeWhitelist:
		err = encodeNonceAndSeq(encoder, e.Nonce, e.Whitelist)
	default:
		err = fmt.Errorf("%w: %T", ErrUnknownEventKind, ev)
	}
	if err != nil {
		return nil, &EncodingError{Op: "encode", Err: err}
	}
	return buf.Bytes(), nil
}

// HashEvent returns the SHA-256 digest of the canonical encoding.
func HashEvent(ev Event) (hash.Hash, error) {
	encoded, err := EncodeEvent(ev)
	if err != nil {
		return hash.Hash{}, err
	}
	return hash.Sha256(encoded), nil
}

func encodeNonceAndSeq[T scale.Encodeable](encoder scale.Encoder, nonce Uint, items []T) error {
	if err := nonce.Encode(encoder); err != nil {
		return err
	}
	if err := encodeLength(encoder, len(items)); err != nil {
		return err
	}
	for i, item := range items {
		if err := item.Encode(encoder); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func encodeValidatorSetUpdate(encoder scale.Encoder, e ValidatorSetUpdate) error {
	if err := e.Nonce.Encode(encoder); err != nil {
		return err
	}
	if err := e.BridgeValidatorHash.Encode(encoder); err != nil {
		return err
	}
	return e.GovernanceValidatorHash.Encode(encoder)
}

func encodeContract(encoder scale.Encoder, name string, addr EthAddress) error {
	if !utf8.ValidString(name) {
		return fmt.Errorf("contract name %q is not valid UTF-8", name)
	}
	if err := encodeLength(encoder, len(name)); err != nil {
		return err
	}
	if err := encoder.Write([]byte(name)); err != nil {
		return err
	}
	return addr.Encode(encoder)
}

func encodeLength(encoder scale.Encoder, n int) error {
	return encoder.EncodeUintCompact(*new(big.Int).SetUint64(uint64(n)))
}

// DecodeEvent is the inverse of EncodeEvent. Unknown tags, truncated input
// and trailing bytes are errors.
func DecodeEvent(data []byte) (Event, error) {
	reader := bytes.NewReader(data)
	decoder := *scale.NewDecoder(reader)

	ev, err := decodeEvent(decoder)
	if err != nil {
		return nil, &EncodingError{Op: "decode", Err: err}
	}
	if reader.Len() != 0 {
		return nil, &EncodingError{
			Op:  "decode",
			Err: fmt.Errorf("%w: %d", ErrTrailingBytes, reader.Len()),
		}
	}
	return ev, nil
}

func decodeEvent(decoder scale.Decoder) (Event, error) {
	tag, err := decoder.ReadOneByte()
	if err != nil {
		return nil, fmt.Errorf("reading tag: %w", err)
	}

	switch EventKind(tag) {
	case KindTransfersToNamada:
		var e TransfersToNamada
		if err := e.Nonce.Decode(decoder); err != nil {
			return nil, err
		}
		e.Transfers, err = decodeSeq[TransferToNamada](decoder)
		return e, err
	case KindTransfersToEthereum:
		var e TransfersToEthereum
		if err := e.Nonce.Decode(decoder); err != nil {
			return nil, err
		}
		e.Transfers, err = decodeSeq[TransferToEthereum](decoder)
		return e, err
	case KindValidatorSetUpdate:
		var e ValidatorSetUpdate
		if err := e.Nonce.Decode(decoder); err != nil {
			return nil, err
		}
		if err := e.BridgeValidatorHash.Decode(decoder); err != nil {
			return nil, err
		}
		if err := e.GovernanceValidatorHash.Decode(decoder); err != nil {
			return nil, err
		}
		return e, nil
	case KindNewContract:
		name, addr, err := decodeContract(decoder)
		return NewContract{Name: name, Address: addr}, err
	case KindUpgradedContract:
		name, addr, err := decodeContract(decoder)
		return UpgradedContract{Name: name, Address: addr}, err
	case KindUpdateBridgeWhitelist:
		var e UpdateBridgeWhitelist
		if err := e.Nonce.Decode(decoder); err != nil {
			return nil, err
		}
		e.Whitelist, err = decodeSeq[TokenWhitelist](decoder)
		return e, err
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownEventKind, tag)
	}
}

func decodeSeq[T any, PT interface {
	*T
	scale.Decodeable
}](decoder scale.Decoder) ([]T, error) {
	n, err := decodeLength(decoder)
	if err != nil {
		return nil, err
	}
	items := make([]T, n)
	for i := range items {
		if err := PT(&items[i]).Decode(decoder); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return items, nil
}

func decodeContract(decoder scale.Decoder) (string, EthAddress, error) {
	n, err := decodeLength(decoder)
	if err != nil {
		return "", EthAddress{}, err
	}
	name := make([]byte, n)
	if n > 0 {
		if err := decoder.Read(name); err != nil {
			return "", EthAddress{}, err
		}
	}
	if !utf8.Valid(name) {
		return "", EthAddress{}, errors.New("contract name is not valid UTF-8")
	}
	var addr EthAddress
	if err := addr.Decode(decoder); err != nil {
		return "", EthAddress{}, err
	}
	return string(name), addr, nil
}

func decodeLength(decoder scale.Decoder) (int, error) {
	n, err := decoder.DecodeUintCompact()
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() || n.Uint64() > maxDecodeLen {
		return 0, fmt.Errorf("length %s exceeds %d", n, maxDecodeLen)
	}
	return int(n.Uint64()), nil
}

// CompareEvents orders events by variant tag, then by fields in declaration
// order. Sequences compare element-wise; a strict prefix sorts first.
// A nil event sorts before any other event.
func CompareEvents(a, b Event) int {
	av, aerr := asValue(a)
	bv, berr := asValue(b)
	switch {
	case aerr != nil && berr != nil:
		return 0
	case aerr != nil:
		return -1
	case berr != nil:
		return 1
	}
	if c := int(av.Kind()) - int(bv.Kind()); c != 0 {
		if c < 0 {
			return -1
		}
		return 1
	}

	switch x := av.(type) {
	case TransfersToNamada:
		y := bv.(TransfersToNamada)
		if c := x.Nonce.Cmp(y.Nonce); c != 0 {
			return c
		}
		return slices.CompareFunc(x.Transfers, y.Transfers, TransferToNamada.Compare)
	case TransfersToEthereum:
		y := bv.(TransfersToEthereum)
		if c := x.Nonce.Cmp(y.Nonce); c != 0 {
			return c
		}
		return slices.CompareFunc(x.Transfers, y.Transfers, TransferToEthereum.Compare)
	case ValidatorSetUpdate:
		y := bv.(ValidatorSetUpdate)
		if c := x.Nonce.Cmp(y.Nonce); c != 0 {
			return c
		}
		if c := bytes.Compare(x.BridgeValidatorHash[:], y.BridgeValidatorHash[:]); c != 0 {
			return c
		}
		return bytes.Compare(x.GovernanceValidatorHash[:], y.GovernanceValidatorHash[:])
	case NewContract:
		y := bv.(NewContract)
		if c := strings.Compare(x.Name, y.Name); c != 0 {
			return c
		}
		return x.Address.Compare(y.Address)
	case UpgradedContract:
		y := bv.(UpgradedContract)
		if c := strings.Compare(x.Name, y.Name); c != 0 {
			return c
		}
		return x.Address.Compare(y.Address)
	case UpdateBridgeWhitelist:
		y := bv.(UpdateBridgeWhitelist)
		if c := x.Nonce.Cmp(y.Nonce); c != 0 {
			return c
		}
		return slices.CompareFunc(x.Whitelist, y.Whitelist, TokenWhitelist.Compare)
	}
	return 0
}

// EqualEvents reports whether a and b are the same variant with equal fields.
// Equal events always have equal encodings.
func EqualEvents(a, b Event) bool {
	return CompareEvents(a, b) == 0
}

// NonceOf returns the event's nonce. Contract events carry none.
func NonceOf(ev Event) (Uint, bool) {
	v, err := asValue(ev)
	if err != nil {
		return Uint{}, false
	}
	switch e := v.(type) {
	case TransfersToNamada:
		return e.Nonce, true
	case TransfersToEthereum:
		return e.Nonce, true
	case ValidatorSetUpdate:
		return e.Nonce, true
	case UpdateBridgeWhitelist:
		return e.Nonce, true
	}
	return Uint{}, false
}

// Assets returns the distinct token contracts an event refers to, in order
// of first appearance.
func Assets(ev Event) []EthAddress {
	v, err := asValue(ev)
	if err != nil {
		return nil
	}
	var (
		out  []EthAddress
		seen = map[EthAddress]struct{}{}
	)
	add := func(a EthAddress) {
		if _, ok := seen[a]; ok {
			return
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	switch e := v.(type) {
	case TransfersToNamada:
		for _, t := range e.Transfers {
			add(t.Asset)
		}
	case TransfersToEthereum:
		for _, t := range e.Transfers {
			add(t.Asset)
		}
	case UpdateBridgeWhitelist:
		for _, w := range e.Whitelist {
			add(w.Token)
		}
	}
	return out
}
