// Package kv implements eventstore.Store on a cometbft-db key-value database.
//
// Layout:
//
//	eth_events/<hash>                        -> canonical encoding
//	eth_events_by_asset/<address>/<hash>     -> empty
package kv

import (
	"context"
	"fmt"
	"sync"

	dbm "github.com/cometbft/cometbft-db"

	"github.com/chainsafe/ethbridge-events/pkg/ethbridge"
	"github.com/chainsafe/ethbridge-events/pkg/eventstore"
	"github.com/chainsafe/ethbridge-events/pkg/hash"
	"github.com/chainsafe/ethbridge-events/pkg/storage"
)

const (
	eventsRoot  = "eth_events"
	byAssetRoot = "eth_events_by_asset"
)

var empty = []byte{}

// Store is a key-value backed event store.
type Store struct {
	db dbm.DB
	// serialises the existence check and batch write of Put
	mu sync.Mutex
}

// New wraps an open database.
func New(db dbm.DB) *Store {
	return &Store{db: db}
}

// NewMemDB returns a store kept in memory.
func NewMemDB() *Store {
	return New(dbm.NewMemDB())
}

// OpenGoLevelDB opens or creates the goleveldb database name under dir.
func OpenGoLevelDB(name, dir string) (*Store, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return nil, fmt.Errorf("open goleveldb %s in %s: %w", name, dir, err)
	}
	return New(db), nil
}

func eventKey(h hash.Hash) storage.Key {
	return storage.NewKey(eventsRoot).Push(storage.StringSeg(h.String()))
}

func assetPrefix(asset ethbridge.EthAddress) storage.Key {
	return storage.NewKey(byAssetRoot).Push(asset)
}

func assetKey(asset ethbridge.EthAddress, h hash.Hash) storage.Key {
	return assetPrefix(asset).Push(storage.StringSeg(h.String()))
}

func (s *Store) Put(_ context.Context, ev ethbridge.Event) (*eventstore.Record, error) {
	rec, err := eventstore.NewRecord(ev)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := eventKey(rec.Hash).Bytes()
	exists, err := s.db.Has(key)
	if err != nil {
		return nil, fmt.Errorf("failed to check event %s: %w", rec.Hash, err)
	}
	if exists {
		return rec, nil
	}

	batch := s.db.NewBatch()
	defer func() { _ = batch.Close() }()

	if err := batch.Set(key, rec.Encoding); err != nil {
		return nil, fmt.Errorf("failed to stage event %s: %w", rec.Hash, err)
	}
	for _, asset := range ethbridge.Assets(rec.Event) {
		if err := batch.Set(assetKey(asset, rec.Hash).Bytes(), empty); err != nil {
			return nil, fmt.Errorf("failed to stage asset index for %s: %w", rec.Hash, err)
		}
	}
	if err := batch.WriteSync(); err != nil {
		return nil, fmt.Errorf("failed to write event %s: %w", rec.Hash, err)
	}

	rec.Created = true
	return rec, nil
}

func (s *Store) Get(_ context.Context, h hash.Hash) (*eventstore.Record, error) {
	encoded, err := s.db.Get(eventKey(h).Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to get event %s: %w", h, err)
	}
	if encoded == nil {
		return nil, eventstore.ErrNotFound
	}
	return eventstore.RecordFromEncoding(h, encoded)
}

func (s *Store) Has(_ context.Context, h hash.Hash) (bool, error) {
	exists, err := s.db.Has(eventKey(h).Bytes())
	if err != nil {
		return false, fmt.Errorf("failed to check event %s: %w", h, err)
	}
	return exists, nil
}

// ListByAsset walks the asset index. Keys that do not parse back into an
// address and a hash are reported as *storage.ParseKeySegError.
func (s *Store) ListByAsset(_ context.Context, asset ethbridge.EthAddress) ([]hash.Hash, error) {
	it, err := dbm.IteratePrefix(s.db, assetPrefix(asset).PrefixBytes())
	if err != nil {
		return nil, fmt.Errorf("failed to iterate asset index: %w", err)
	}
	defer func() { _ = it.Close() }()

	var hashes []hash.Hash
	for ; it.Valid(); it.Next() {
		h, err := parseAssetKey(string(it.Key()), asset)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	if err := it.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate asset index: %w", err)
	}
	return hashes, nil
}

func parseAssetKey(raw string, want ethbridge.EthAddress) (hash.Hash, error) {
	key, err := storage.ParseKey(raw)
	if err != nil {
		return hash.Hash{}, err
	}
	if key.Len() != 3 {
		return hash.Hash{}, &storage.ParseKeySegError{Segment: raw, Err: fmt.Errorf("expected 3 segments, got %d", key.Len())}
	}
	addrSeg, _ := key.Segment(1)
	asset, err := ethbridge.ParseEthAddressKeySeg(string(addrSeg))
	if err != nil {
		return hash.Hash{}, err
	}
	if asset != want {
		return hash.Hash{}, &storage.ParseKeySegError{Segment: string(addrSeg), Err: fmt.Errorf("expected asset %s", want)}
	}
	hashSeg, _ := key.Segment(2)
	h, err := hash.ParseHash(string(hashSeg))
	if err != nil {
		return hash.Hash{}, &storage.ParseKeySegError{Segment: string(hashSeg), Err: err}
	}
	return h, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

var _ eventstore.Store = (*Store)(nil)
