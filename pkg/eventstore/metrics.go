package eventstore

import (
	"context"
	"errors"

	"github.com/chainsafe/ethbridge-events/internal/metrics"
	"github.com/chainsafe/ethbridge-events/pkg/ethbridge"
	"github.com/chainsafe/ethbridge-events/pkg/hash"
)

const (
	outcomeCreated   = "created"
	outcomeDuplicate = "duplicate"
	outcomeError     = "error"
)

type metricsStore struct {
	Store
	backend string
}

// WithMetrics records the outcome of every Put on the events stored counter.
func WithMetrics(s Store, backend string) Store {
	return &metricsStore{Store: s, backend: backend}
}

func (m *metricsStore) Put(ctx context.Context, ev ethbridge.Event) (*Record, error) {
	kind := "unknown"
	if k, ok := ethbridge.KindOf(ev); ok {
		kind = k.String()
	}
	rec, err := m.Store.Put(ctx, ev)
	switch {
	case err != nil:
		metrics.EventsStored.WithLabelValues(m.backend, kind, outcomeError).Inc()
	case rec.Created:
		metrics.EventsStored.WithLabelValues(m.backend, kind, outcomeCreated).Inc()
	default:
		metrics.EventsStored.WithLabelValues(m.backend, kind, outcomeDuplicate).Inc()
	}
	return rec, err
}

func (m *metricsStore) Get(ctx context.Context, h hash.Hash) (*Record, error) {
	rec, err := m.Store.Get(ctx, h)
	if err != nil && !errors.Is(err, ErrNotFound) {
		metrics.ErrorsTotal.WithLabelValues("eventstore_"+m.backend, "get").Inc()
	}
	return rec, err
}

func (m *metricsStore) ListByAsset(ctx context.Context, asset ethbridge.EthAddress) ([]hash.Hash, error) {
	hashes, err := m.Store.ListByAsset(ctx, asset)
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues("eventstore_"+m.backend, "list_by_asset").Inc()
	}
	return hashes, err
}
