package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/chainsafe/ethbridge-events/pkg/ethbridge"
	"github.com/chainsafe/ethbridge-events/pkg/ethbridge/ethbridgetest"
	"github.com/chainsafe/ethbridge-events/pkg/eventstore"
	"github.com/chainsafe/ethbridge-events/pkg/hash"
	"github.com/chainsafe/ethbridge-events/pkg/pgutil"
	mghelper "github.com/chainsafe/ethbridge-events/pkg/pgutil/migrations"
)

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &EventDao{}, &EventAssetDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return ctx, &pgStore{db: db}
}

func TestEventPGStore_PutGet(t *testing.T) {
	ctx, s := setupStore(t)

	ev := ethbridgetest.ArbitrarySingleTransfer(ethbridgetest.ArbitraryNonce(), ethbridgetest.ArbitraryAddress())
	rec, err := s.Put(ctx, ev)
	if err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if !rec.Created {
		t.Fatalf("expected first Put to create the event")
	}

	again, err := s.Put(ctx, ev)
	if err != nil {
		t.Fatalf("second Put() failed: %v", err)
	}
	if again.Created {
		t.Fatalf("expected second Put to be a duplicate")
	}
	if again.Hash != rec.Hash {
		t.Fatalf("hash mismatch: %s vs %s", again.Hash, rec.Hash)
	}

	got, err := s.Get(ctx, rec.Hash)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !ethbridge.EqualEvents(ev, got.Event) {
		t.Fatalf("stored event differs: %#v", got.Event)
	}

	exists, err := s.Has(ctx, rec.Hash)
	if err != nil {
		t.Fatalf("Has() failed: %v", err)
	}
	if !exists {
		t.Fatalf("expected event to exist")
	}

	pgutil.AssertRowCount(t, s.db, "eth_events", 1)
	pgutil.AssertRowCount(t, s.db, "eth_event_assets", 1)
}

func TestEventPGStore_StoresNonce(t *testing.T) {
	ctx, s := setupStore(t)

	for _, ev := range ethbridgetest.AllKinds() {
		rec, err := s.Put(ctx, ev)
		if err != nil {
			t.Fatalf("Put(%s) failed: %v", ev.Kind(), err)
		}

		dao := new(EventDao)
		if err := s.db.NewSelect().Model(dao).Where("hash = ?", rec.Hash.String()).Scan(ctx); err != nil {
			t.Fatalf("select %s failed: %v", ev.Kind(), err)
		}
		if dao.Kind != ev.Kind().String() {
			t.Fatalf("kind = %s, want %s", dao.Kind, ev.Kind())
		}
		_, hasNonce := ethbridge.NonceOf(ev)
		if hasNonce != (dao.Nonce != nil) {
			t.Fatalf("%s: nonce column presence = %v, want %v", ev.Kind(), dao.Nonce != nil, hasNonce)
		}
		if hasNonce && *dao.Nonce != "123" {
			t.Fatalf("%s: nonce = %s, want 123", ev.Kind(), *dao.Nonce)
		}
	}
}

func TestEventPGStore_NotFound(t *testing.T) {
	ctx, s := setupStore(t)

	_, err := s.Get(ctx, hash.Sha256([]byte("missing")))
	if !errors.Is(err, eventstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEventPGStore_ListByAsset(t *testing.T) {
	ctx, s := setupStore(t)

	for _, ev := range ethbridgetest.AllKinds() {
		if _, err := s.Put(ctx, ev); err != nil {
			t.Fatalf("Put(%s) failed: %v", ev.Kind(), err)
		}
	}

	dai, err := s.ListByAsset(ctx, ethbridgetest.DAIAddress)
	if err != nil {
		t.Fatalf("ListByAsset() failed: %v", err)
	}
	if len(dai) != 2 {
		t.Fatalf("expected 2 DAI events, got %d", len(dai))
	}
	if dai[0].String() > dai[1].String() {
		t.Fatalf("expected hashes in ascending order: %v", dai)
	}

	none, err := s.ListByAsset(ctx, ethbridge.EthAddress{1})
	if err != nil {
		t.Fatalf("ListByAsset() failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no events, got %v", none)
	}
}

func TestNewStore_IsEventStore(t *testing.T) {
	var s eventstore.Store = NewStore(nil)
	if _, ok := s.(*pgStore); !ok {
		t.Fatalf("expected *pgStore, got %T", s)
	}
}
