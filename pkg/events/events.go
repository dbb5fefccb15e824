// Package events holds the request and response types of the events API.
package events

import (
	"github.com/chainsafe/ethbridge-events/pkg/ethbridge"
	"github.com/chainsafe/ethbridge-events/pkg/hash"
)

// EventRequest carries a single event in its tagged JSON form:
//
//	{"event": {"kind": "transfers_to_namada", "nonce": "123", "transfers": [...]}}
type EventRequest struct {
	Event *ethbridge.EventJSON `json:"event" validate:"required"`
}

// HashRequest names a stored event by the hex SHA-256 of its canonical encoding.
type HashRequest struct {
	Hash string `validate:"required,len=64,hexadecimal"`
}

// AddressRequest carries an Ethereum address taken from the URL.
type AddressRequest struct {
	Address string `validate:"required,startswith=0x"`
}

// HashResponse is the canonical form of an event.
type HashResponse struct {
	Hash     hash.Hash           `json:"hash"`
	Kind     ethbridge.EventKind `json:"kind"`
	Nonce    *ethbridge.Uint     `json:"nonce,omitempty"`
	Encoding string              `json:"encoding"`
}

// StoreResponse reports the outcome of storing an event.
type StoreResponse struct {
	Hash    hash.Hash           `json:"hash"`
	Kind    ethbridge.EventKind `json:"kind"`
	Created bool                `json:"created"`
}

// EventResponse is a stored event.
type EventResponse struct {
	Hash     hash.Hash           `json:"hash"`
	Event    ethbridge.EventJSON `json:"event"`
	Encoding string              `json:"encoding"`
}

// AssetEventsResponse lists the stored events referring to a token contract.
type AssetEventsResponse struct {
	Asset  ethbridge.EthAddress `json:"asset"`
	Hashes []hash.Hash          `json:"hashes"`
}

// AddressResponse shows both text forms of an Ethereum address.
type AddressResponse struct {
	Canonical   string `json:"canonical"`
	Checksummed string `json:"checksummed"`
}
