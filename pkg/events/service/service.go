package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	"github.com/chainsafe/ethbridge-events/internal/metrics"
	apperrors "github.com/chainsafe/ethbridge-events/pkg/app/errors"
	"github.com/chainsafe/ethbridge-events/pkg/ethbridge"
	"github.com/chainsafe/ethbridge-events/pkg/events"
	"github.com/chainsafe/ethbridge-events/pkg/eventstore"
	"github.com/chainsafe/ethbridge-events/pkg/hash"
)

// Store is the narrow data-access interface for the events service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	Put(ctx context.Context, ev ethbridge.Event) (*eventstore.Record, error)
	Get(ctx context.Context, h hash.Hash) (*eventstore.Record, error)
	ListByAsset(ctx context.Context, asset ethbridge.EthAddress) ([]hash.Hash, error)
}

// Service defines the event hashing and storage operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	HashEvent(ctx context.Context, ev ethbridge.Event) (*events.HashResponse, error)
	StoreEvent(ctx context.Context, ev ethbridge.Event) (*events.StoreResponse, error)
	GetEvent(ctx context.Context, h hash.Hash) (*events.EventResponse, error)
	ListEventsByAsset(ctx context.Context, asset ethbridge.EthAddress) (*events.AssetEventsResponse, error)
	NormalizeAddress(ctx context.Context, raw string) (*events.AddressResponse, error)
}

type eventService struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new events service
func NewService(store Store, logger *zap.Logger) Service {
	return &eventService{
		store:  store,
		logger: logger,
	}
}

// HashEvent returns the canonical encoding of ev and its SHA-256 hash.
// Nothing is stored.
func (s *eventService) HashEvent(_ context.Context, ev ethbridge.Event) (*events.HashResponse, error) {
	encoded, err := ethbridge.EncodeEvent(ev)
	if err != nil {
		return nil, invalidEvent(err)
	}
	kind := ev.Kind()
	metrics.EventsHashed.WithLabelValues(kind.String()).Inc()

	resp := &events.HashResponse{
		Hash:     hash.Sha256(encoded),
		Kind:     kind,
		Encoding: hexutil.Encode(encoded),
	}
	if nonce, ok := ethbridge.NonceOf(ev); ok {
		resp.Nonce = &nonce
	}
	return resp, nil
}

// StoreEvent stores ev under its hash. Storing an already known event is not
// an error; Created tells the two cases apart.
func (s *eventService) StoreEvent(ctx context.Context, ev ethbridge.Event) (*events.StoreResponse, error) {
	if _, ok := ethbridge.KindOf(ev); !ok {
		return nil, invalidEvent(ethbridge.ErrNilEvent)
	}
	rec, err := s.store.Put(ctx, ev)
	if err != nil {
		var encErr *ethbridge.EncodingError
		if errors.As(err, &encErr) {
			return nil, invalidEvent(err)
		}
		return nil, fmt.Errorf("failed to store event: %w", err)
	}
	return &events.StoreResponse{
		Hash:    rec.Hash,
		Kind:    rec.Kind(),
		Created: rec.Created,
	}, nil
}

// GetEvent returns the stored event with hash h.
func (s *eventService) GetEvent(ctx context.Context, h hash.Hash) (*events.EventResponse, error) {
	rec, err := s.store.Get(ctx, h)
	switch {
	case errors.Is(err, eventstore.ErrNotFound):
		return nil, apperrors.ResourceNotFoundError(err, "event not found")
	case errors.Is(err, eventstore.ErrCorrupt):
		s.logger.Error("Stored event is corrupt", zap.Stringer("hash", h), zap.Error(err))
		return nil, apperrors.GeneralError(err)
	case err != nil:
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &events.EventResponse{
		Hash:     rec.Hash,
		Event:    ethbridge.EventJSON{Event: rec.Event},
		Encoding: hexutil.Encode(rec.Encoding),
	}, nil
}

// ListEventsByAsset returns the hashes of stored events that move or
// whitelist the token contract asset.
func (s *eventService) ListEventsByAsset(
	ctx context.Context,
	asset ethbridge.EthAddress,
) (*events.AssetEventsResponse, error) {
	hashes, err := s.store.ListByAsset(ctx, asset)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for %s: %w", asset, err)
	}
	if hashes == nil {
		hashes = []hash.Hash{}
	}
	return &events.AssetEventsResponse{Asset: asset, Hashes: hashes}, nil
}

// NormalizeAddress parses raw and returns its canonical and EIP-55 forms.
func (s *eventService) NormalizeAddress(_ context.Context, raw string) (*events.AddressResponse, error) {
	addr, err := ethbridge.ParseEthAddress(raw)
	if err != nil {
		metrics.AddressParseFailures.WithLabelValues("normalize").Inc()
		return nil, apperrors.BadRequestError(err, "invalid ethereum address: "+err.Error())
	}
	return &events.AddressResponse{
		Canonical:   addr.Canonical(),
		Checksummed: addr.Checksummed(),
	}, nil
}

func invalidEvent(err error) error {
	return apperrors.BadRequestError(err, "invalid event: "+err.Error())
}
