package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/chainsafe/ethbridge-events/pkg/app/errors"
	"github.com/chainsafe/ethbridge-events/pkg/ethbridge"
	"github.com/chainsafe/ethbridge-events/pkg/ethbridge/ethbridgetest"
	"github.com/chainsafe/ethbridge-events/pkg/eventstore"
	"github.com/chainsafe/ethbridge-events/pkg/events/service/mocks"
	"github.com/chainsafe/ethbridge-events/pkg/hash"
)

func arbitraryTransfer() ethbridge.TransfersToNamada {
	return ethbridgetest.ArbitrarySingleTransfer(ethbridgetest.ArbitraryNonce(), ethbridgetest.ArbitraryAddress())
}

func TestEventService_HashEvent(t *testing.T) {
	svc := NewService(nil, zap.NewNop())
	ev := arbitraryTransfer()

	resp, err := svc.HashEvent(context.Background(), ev)
	require.NoError(t, err)

	want, err := ethbridge.HashEvent(ev)
	require.NoError(t, err)
	assert.Equal(t, want, resp.Hash)
	assert.Equal(t, ethbridge.KindTransfersToNamada, resp.Kind)
	require.NotNil(t, resp.Nonce)
	assert.Equal(t, ethbridge.NewUint(123), *resp.Nonce)

	encoded, err := hexutil.Decode(resp.Encoding)
	require.NoError(t, err)
	assert.Equal(t, hash.Sha256(encoded), resp.Hash)
}

func TestEventService_HashEvent_IndependentObservers(t *testing.T) {
	svc := NewService(nil, zap.NewNop())
	ctx := context.Background()

	first, err := svc.HashEvent(ctx, arbitraryTransfer())
	require.NoError(t, err)
	second, err := svc.HashEvent(ctx, arbitraryTransfer())
	require.NoError(t, err)
	assert.Equal(t, first.Hash, second.Hash)

	next := arbitraryTransfer()
	next.Nonce = next.Nonce.Next()
	third, err := svc.HashEvent(ctx, next)
	require.NoError(t, err)
	assert.NotEqual(t, first.Hash, third.Hash)
}

func TestEventService_HashEvent_ContractEventHasNoNonce(t *testing.T) {
	svc := NewService(nil, zap.NewNop())

	resp, err := svc.HashEvent(context.Background(), ethbridge.NewContract{Name: "bridge", Address: ethbridgetest.DAIAddress})
	require.NoError(t, err)
	assert.Nil(t, resp.Nonce)
	assert.Equal(t, ethbridge.KindNewContract, resp.Kind)
}

func TestEventService_HashEvent_Invalid(t *testing.T) {
	svc := NewService(nil, zap.NewNop())

	_, err := svc.HashEvent(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
	assert.ErrorIs(t, err, ethbridge.ErrNilEvent)

	_, err = svc.HashEvent(context.Background(), ethbridge.NewContract{Name: string([]byte{0xff}), Address: ethbridgetest.DAIAddress})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}

func TestEventService_StoreEvent(t *testing.T) {
	ctx := context.Background()
	ev := arbitraryTransfer()
	rec, err := eventstore.NewRecord(ev)
	require.NoError(t, err)
	rec.Created = true

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().Put(ctx, ethbridge.Event(ev)).Return(rec, nil).Once()

	resp, err := NewService(storeMock, zap.NewNop()).StoreEvent(ctx, ev)
	require.NoError(t, err)
	assert.Equal(t, rec.Hash, resp.Hash)
	assert.Equal(t, ethbridge.KindTransfersToNamada, resp.Kind)
	assert.True(t, resp.Created)
}

func TestEventService_StoreEvent_NilEventSkipsStore(t *testing.T) {
	storeMock := mocks.NewStore(t)

	_, err := NewService(storeMock, zap.NewNop()).StoreEvent(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
	storeMock.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestEventService_StoreEvent_Errors(t *testing.T) {
	ctx := context.Background()
	ev := ethbridge.NewContract{Name: "bridge", Address: ethbridgetest.DAIAddress}

	t.Run("encoding error is a bad request", func(t *testing.T) {
		storeMock := mocks.NewStore(t)
		storeMock.EXPECT().Put(ctx, mock.Anything).
			Return(nil, &ethbridge.EncodingError{Op: "encode", Err: errors.New("bad name")}).Once()

		_, err := NewService(storeMock, zap.NewNop()).StoreEvent(ctx, ev)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
	})

	t.Run("backend error is internal", func(t *testing.T) {
		backendErr := errors.New("leveldb: closed")
		storeMock := mocks.NewStore(t)
		storeMock.EXPECT().Put(ctx, mock.Anything).Return(nil, backendErr).Once()

		_, err := NewService(storeMock, zap.NewNop()).StoreEvent(ctx, ev)
		require.ErrorIs(t, err, backendErr)
		assert.True(t, apperrors.IsInternalError(err))
	})
}

func TestEventService_GetEvent(t *testing.T) {
	ctx := context.Background()
	ev := arbitraryTransfer()
	rec, err := eventstore.NewRecord(ev)
	require.NoError(t, err)

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().Get(ctx, rec.Hash).Return(rec, nil).Once()

	resp, err := NewService(storeMock, zap.NewNop()).GetEvent(ctx, rec.Hash)
	require.NoError(t, err)
	assert.Equal(t, rec.Hash, resp.Hash)
	assert.True(t, ethbridge.EqualEvents(ev, resp.Event.Event))
	assert.Equal(t, hexutil.Encode(rec.Encoding), resp.Encoding)
}

func TestEventService_GetEvent_Errors(t *testing.T) {
	ctx := context.Background()
	h := hash.Sha256([]byte("missing"))

	cases := []struct {
		name string
		err  error
		cat  apperrors.Category
	}{
		{"not found", eventstore.ErrNotFound, apperrors.CategoryResourceNotFound},
		{"corrupt", eventstore.ErrCorrupt, apperrors.CategoryGeneralError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			storeMock := mocks.NewStore(t)
			storeMock.EXPECT().Get(ctx, h).Return(nil, tc.err).Once()

			_, err := NewService(storeMock, zap.NewNop()).GetEvent(ctx, h)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, tc.cat), "got %v", err)
		})
	}
}

func TestEventService_ListEventsByAsset_EmptyIsNotNil(t *testing.T) {
	ctx := context.Background()
	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().ListByAsset(ctx, ethbridgetest.USDCAddress).Return(nil, nil).Once()

	resp, err := NewService(storeMock, zap.NewNop()).ListEventsByAsset(ctx, ethbridgetest.USDCAddress)
	require.NoError(t, err)
	assert.Equal(t, ethbridgetest.USDCAddress, resp.Asset)
	assert.NotNil(t, resp.Hashes)
	assert.Empty(t, resp.Hashes)
}

func TestEventService_NormalizeAddress(t *testing.T) {
	svc := NewService(nil, zap.NewNop())
	ctx := context.Background()

	for _, in := range []string{ethbridgetest.DAIChecksummed, strings.ToLower(ethbridgetest.DAIChecksummed)} {
		resp, err := svc.NormalizeAddress(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "0x6b175474e89094c44da98b954eedeac495271d0f", resp.Canonical)
		assert.Equal(t, ethbridgetest.DAIChecksummed, resp.Checksummed)
	}

	for _, in := range []string{"not an address", "0x123", ""} {
		_, err := svc.NormalizeAddress(ctx, in)
		require.Error(t, err, in)
		assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
		var parseErr *ethbridge.AddressParseError
		assert.True(t, errors.As(err, &parseErr))
		var svcErr *apperrors.ServiceError
		require.True(t, errors.As(err, &svcErr))
		assert.Contains(t, svcErr.Message, fmt.Sprintf("%q", in))
	}
}

func TestLogService_LogsOutcome(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := context.Background()
	ev := arbitraryTransfer()
	rec, err := eventstore.NewRecord(ev)
	require.NoError(t, err)

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().Put(ctx, mock.Anything).Return(rec, nil).Once()

	svc := NewLog(NewService(storeMock, zap.NewNop()), zap.New(core))

	_, err = svc.StoreEvent(ctx, ev)
	require.NoError(t, err)
	_, err = svc.NormalizeAddress(ctx, "0x123")
	require.Error(t, err)

	stored := logs.FilterMessage("StoreEvent completed").All()
	require.Len(t, stored, 1)
	assert.Equal(t, rec.Hash.String(), stored[0].ContextMap()["hash"])
	assert.Equal(t, serviceName, stored[0].ContextMap()["service"])

	failed := logs.FilterMessage("NormalizeAddress failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.WarnLevel, failed[0].Level)
}
