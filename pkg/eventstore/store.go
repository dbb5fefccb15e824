// Package eventstore persists observed Ethereum events by the hash of their
// canonical encoding.
package eventstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainsafe/ethbridge-events/pkg/ethbridge"
	"github.com/chainsafe/ethbridge-events/pkg/hash"
)

var (
	// ErrNotFound is returned when no event is stored under a hash.
	ErrNotFound = errors.New("ethereum event not found")
	// ErrCorrupt is returned when a stored encoding no longer matches its key.
	ErrCorrupt = errors.New("stored ethereum event is corrupt")
)

// Store defines event persistence. Implementations are safe for concurrent use.
type Store interface {
	// Put stores ev under its hash. Storing an event that is already present
	// returns the existing record with Created false.
	Put(ctx context.Context, ev ethbridge.Event) (*Record, error)
	Get(ctx context.Context, h hash.Hash) (*Record, error)
	Has(ctx context.Context, h hash.Hash) (bool, error)
	// ListByAsset returns the hashes of stored events referring to asset,
	// ordered by hash.
	ListByAsset(ctx context.Context, asset ethbridge.EthAddress) ([]hash.Hash, error)
	Close() error
}

// Record is a stored event together with its canonical form.
type Record struct {
	Hash     hash.Hash
	Event    ethbridge.Event
	Encoding []byte
	// Created is set by Put when the event was not stored before.
	Created bool
}

// Kind returns the variant of the stored event.
func (r *Record) Kind() ethbridge.EventKind {
	return r.Event.Kind()
}

// NewRecord encodes and hashes ev.
func NewRecord(ev ethbridge.Event) (*Record, error) {
	encoded, err := ethbridge.EncodeEvent(ev)
	if err != nil {
		return nil, err
	}
	decoded, err := ethbridge.DecodeEvent(encoded)
	if err != nil {
		return nil, err
	}
	return &Record{
		Hash:     hash.Sha256(encoded),
		Event:    decoded,
		Encoding: encoded,
	}, nil
}

// RecordFromEncoding rebuilds a record read back from storage and checks
// that the encoding still hashes to h.
func RecordFromEncoding(h hash.Hash, encoded []byte) (*Record, error) {
	if got := hash.Sha256(encoded); got != h {
		return nil, fmt.Errorf("%w: %s hashes to %s", ErrCorrupt, h, got)
	}
	ev, err := ethbridge.DecodeEvent(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, h, err)
	}
	return &Record{Hash: h, Event: ev, Encoding: encoded}, nil
}
