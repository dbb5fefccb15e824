// Package pg implements eventstore.Store on PostgreSQL using bun.
package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/ethbridge-events/pkg/ethbridge"
	"github.com/chainsafe/ethbridge-events/pkg/eventstore"
	"github.com/chainsafe/ethbridge-events/pkg/hash"
)

type pgStore struct {
	db *bun.DB
}

var _ eventstore.Store = (*pgStore)(nil)

// NewStore creates a new postgres implementation of the event store
func NewStore(db *bun.DB) eventstore.Store {
	return &pgStore{db: db}
}

func toEventDao(rec *eventstore.Record) *EventDao {
	dao := &EventDao{
		Hash:     rec.Hash.String(),
		Kind:     rec.Kind().String(),
		Encoding: rec.Encoding,
	}
	if nonce, ok := ethbridge.NonceOf(rec.Event); ok {
		n := nonce.String()
		dao.Nonce = &n
	}
	return dao
}

func (s *pgStore) Put(ctx context.Context, ev ethbridge.Event) (*eventstore.Record, error) {
	rec, err := eventstore.NewRecord(ev)
	if err != nil {
		return nil, err
	}

	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewInsert().
			Model(toEventDao(rec)).
			On("CONFLICT (hash) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
		if n == 0 {
			return nil
		}
		rec.Created = true

		assets := ethbridge.Assets(rec.Event)
		if len(assets) == 0 {
			return nil
		}
		daos := make([]EventAssetDao, len(assets))
		for i, asset := range assets {
			daos[i] = EventAssetDao{Asset: asset.Canonical(), Hash: rec.Hash.String()}
		}
		if _, err := tx.NewInsert().Model(&daos).Exec(ctx); err != nil {
			return fmt.Errorf("failed to index event assets: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *pgStore) Get(ctx context.Context, h hash.Hash) (*eventstore.Record, error) {
	dao := new(EventDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("hash = ?", h.String()).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, eventstore.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return eventstore.RecordFromEncoding(h, dao.Encoding)
}

func (s *pgStore) Has(ctx context.Context, h hash.Hash) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*EventDao)(nil)).
		Where("hash = ?", h.String()).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check event exists: %w", err)
	}
	return exists, nil
}

func (s *pgStore) ListByAsset(ctx context.Context, asset ethbridge.EthAddress) ([]hash.Hash, error) {
	var raw []string
	err := s.db.NewSelect().
		Model((*EventAssetDao)(nil)).
		Column("hash").
		Where("asset = ?", asset.Canonical()).
		Order("hash ASC").
		Scan(ctx, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by asset: %w", err)
	}
	hashes := make([]hash.Hash, len(raw))
	for i, r := range raw {
		h, err := hash.ParseHash(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", eventstore.ErrCorrupt, err)
		}
		hashes[i] = h
	}
	return hashes, nil
}

// Close closes the underlying database.
func (s *pgStore) Close() error {
	return s.db.Close()
}

var _ eventstore.Store = (*pgStore)(nil)
