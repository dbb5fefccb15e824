package ethbridge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// The JSON form of an event is an object with a "kind" member naming the
// variant and the variant's fields alongside it:
//
//	{"kind":"transfers_to_namada","nonce":"123","transfers":[...]}
//
// It exists for APIs and tooling only. Hashing always uses EncodeEvent.

type transfersToNamadaJSON struct {
	Kind EventKind `json:"kind"`
	TransfersToNamada
}

type transfersToEthereumJSON struct {
	Kind EventKind `json:"kind"`
	TransfersToEthereum
}

type validatorSetUpdateJSON struct {
	Kind EventKind `json:"kind"`
	ValidatorSetUpdate
}

type newContractJSON struct {
	Kind EventKind `json:"kind"`
	NewContract
}

type upgradedContractJSON struct {
	Kind EventKind `json:"kind"`
	UpgradedContract
}

type updateBridgeWhitelistJSON struct {
	Kind EventKind `json:"kind"`
	UpdateBridgeWhitelist
}

var requiredJSONKeys = map[EventKind][]string{
	KindTransfersToNamada:     {"nonce", "transfers"},
	KindTransfersToEthereum:   {"nonce", "transfers"},
	KindValidatorSetUpdate:    {"nonce", "bridge_validator_hash", "governance_validator_hash"},
	KindNewContract:           {"name", "address"},
	KindUpgradedContract:      {"name", "address"},
	KindUpdateBridgeWhitelist: {"nonce", "whitelist"},
}

// requiredElementKeys lists, per kind, the sequence member and the members
// every element of it must carry.
var requiredElementKeys = map[EventKind]struct {
	seq  string
	keys []string
}{
	KindTransfersToNamada:     {"transfers", []string{"amount", "asset", "receiver"}},
	KindTransfersToEthereum:   {"transfers", []string{"amount", "asset", "receiver", "gas_amount", "gas_payer"}},
	KindUpdateBridgeWhitelist: {"whitelist", []string{"token", "cap"}},
}

var jsonNull = []byte("null")

func checkRequired(members map[string]json.RawMessage, keys []string, where string) error {
	for _, key := range keys {
		raw, ok := members[key]
		if !ok {
			return fmt.Errorf("%s: missing %q", where, key)
		}
		if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
			return fmt.Errorf("%s: %q must not be null", where, key)
		}
	}
	return nil
}

func checkElements(kind EventKind, members map[string]json.RawMessage) error {
	req, ok := requiredElementKeys[kind]
	if !ok {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(members[req.seq], &elems); err != nil {
		return fmt.Errorf("%s: %q: %w", kind, req.seq, err)
	}
	for i, raw := range elems {
		var elem map[string]json.RawMessage
		if err := json.Unmarshal(raw, &elem); err != nil {
			return fmt.Errorf("%s: %s[%d]: %w", kind, req.seq, i, err)
		}
		if elem == nil {
			return fmt.Errorf("%s: %s[%d] must not be null", kind, req.seq, i)
		}
		if err := checkRequired(elem, req.keys, fmt.Sprintf("%s: %s[%d]", kind, req.seq, i)); err != nil {
			return err
		}
	}
	return nil
}

// MarshalEventJSON renders ev with its "kind" member.
func MarshalEventJSON(ev Event) ([]byte, error) {
	v, err := asValue(ev)
	if err != nil {
		return nil, &EncodingError{Op: "marshal", Err: err}
	}
	var env any
	switch e := v.(type) {
	case TransfersToNamada:
		if e.Transfers == nil {
			e.Transfers = []TransferToNamada{}
		}
		env = transfersToNamadaJSON{Kind: e.Kind(), TransfersToNamada: e}
	case TransfersToEthereum:
		if e.Transfers == nil {
			e.Transfers = []TransferToEthereum{}
		}
		env = transfersToEthereumJSON{Kind: e.Kind(), TransfersToEthereum: e}
	case ValidatorSetUpdate:
		env = validatorSetUpdateJSON{Kind: e.Kind(), ValidatorSetUpdate: e}
	case NewContract:
		env = newContractJSON{Kind: e.Kind(), NewContract: e}
	case UpgradedContract:
		env = upgradedContractJSON{Kind: e.Kind(), UpgradedContract: e}
	case UpdateBridgeWhitelist:
		if e.Whitelist == nil {
			e.Whitelist = []TokenWhitelist{}
		}
		env = updateBridgeWhitelistJSON{Kind: e.Kind(), UpdateBridgeWhitelist: e}
	default:
		return nil, &EncodingError{Op: "marshal", Err: fmt.Errorf("%w: %T", ErrUnknownEventKind, ev)}
	}
	out, err := json.Marshal(env)
	if err != nil {
		return nil, &EncodingError{Op: "marshal", Err: err}
	}
	return out, nil
}

// UnmarshalEventJSON parses the form produced by MarshalEventJSON. Every
// field of the variant, and of every transfer or whitelist element, must be
// present and non-null; unknown members are rejected.
// Malformed Ethereum addresses surface as *AddressParseError.
func UnmarshalEventJSON(data []byte) (Event, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, &EncodingError{Op: "unmarshal", Err: err}
	}
	rawKind, ok := members["kind"]
	if !ok {
		return nil, &EncodingError{Op: "unmarshal", Err: errors.New(`missing "kind"`)}
	}
	var kind EventKind
	if err := json.Unmarshal(rawKind, &kind); err != nil {
		return nil, &EncodingError{Op: "unmarshal", Err: err}
	}
	if err := checkRequired(members, requiredJSONKeys[kind], kind.String()); err != nil {
		return nil, &EncodingError{Op: "unmarshal", Err: err}
	}
	if err := checkElements(kind, members); err != nil {
		return nil, &EncodingError{Op: "unmarshal", Err: err}
	}

	ev, err := unmarshalVariant(kind, data)
	if err != nil {
		var addrErr *AddressParseError
		if errors.As(err, &addrErr) {
			return nil, addrErr
		}
		return nil, &EncodingError{Op: "unmarshal", Err: err}
	}
	return ev, nil
}

func unmarshalVariant(kind EventKind, data []byte) (Event, error) {
	switch kind {
	case KindTransfersToNamada:
		var env transfersToNamadaJSON
		if err := strictUnmarshal(data, &env); err != nil {
			return nil, err
		}
		return env.TransfersToNamada, nil
	case KindTransfersToEthereum:
		var env transfersToEthereumJSON
		if err := strictUnmarshal(data, &env); err != nil {
			return nil, err
		}
		return env.TransfersToEthereum, nil
	case KindValidatorSetUpdate:
		var env validatorSetUpdateJSON
		if err := strictUnmarshal(data, &env); err != nil {
			return nil, err
		}
		return env.ValidatorSetUpdate, nil
	case KindNewContract:
		var env newContractJSON
		if err := strictUnmarshal(data, &env); err != nil {
			return nil, err
		}
		return env.NewContract, nil
	case KindUpgradedContract:
		var env upgradedContractJSON
		if err := strictUnmarshal(data, &env); err != nil {
			return nil, err
		}
		return env.UpgradedContract, nil
	case KindUpdateBridgeWhitelist:
		var env updateBridgeWhitelistJSON
		if err := strictUnmarshal(data, &env); err != nil {
			return nil, err
		}
		return env.UpdateBridgeWhitelist, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownEventKind, uint8(kind))
}

func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// EventJSON adapts an Event to encoding/json, for use inside request and
// response bodies.
type EventJSON struct {
	Event
}

func (e EventJSON) MarshalJSON() ([]byte, error) {
	return MarshalEventJSON(e.Event)
}

func (e *EventJSON) UnmarshalJSON(data []byte) error {
	ev, err := UnmarshalEventJSON(data)
	if err != nil {
		return err
	}
	e.Event = ev
	return nil
}
