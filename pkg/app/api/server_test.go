package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/ethbridge-events/pkg/config"
	"github.com/chainsafe/ethbridge-events/pkg/ethbridge"
	"github.com/chainsafe/ethbridge-events/pkg/ethbridge/ethbridgetest"
	"github.com/chainsafe/ethbridge-events/pkg/events"
	"github.com/chainsafe/ethbridge-events/pkg/events/service"
)

func testConfig(backend string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080, MaxBodyBytes: 1 << 20},
		Store:  config.StoreConfig{Backend: backend},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := testConfig(config.StoreBackendMemDB)
	store, err := openStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	s := NewServer(cfg)
	return s.setupRouter(service.NewService(store, zap.NewNop()), zap.NewNop())
}

func TestServer_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestServer_StoreThenFetch(t *testing.T) {
	router := newTestRouter(t)
	ev := ethbridge.EventJSON{Event: ethbridgetest.ArbitrarySingleTransfer(
		ethbridgetest.ArbitraryNonce(), ethbridgetest.ArbitraryAddress())}
	body, err := json.Marshal(map[string]any{"event": ev})
	require.NoError(t, err)

	post := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewReader(body)))
		return rec
	}

	first := post()
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
	var stored events.StoreResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &stored))
	assert.True(t, stored.Created)

	second := post()
	require.Equal(t, http.StatusOK, second.Code)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/events/"+stored.Hash.String(), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var got events.EventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, ethbridge.EqualEvents(ev.Event, got.Event.Event))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/assets/"+ethbridgetest.DAIChecksummed+"/events", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var listed events.AssetEventsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed.Hashes, 1)
	assert.Equal(t, stored.Hash, listed.Hashes[0])
}

func TestServer_GetUnknownEvent(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/v1/events/0000000000000000000000000000000000000000000000000000000000000000", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOpenStore_GoLevelDB(t *testing.T) {
	cfg := testConfig(config.StoreBackendGoLevelDB)
	cfg.Store.Dir = t.TempDir()
	cfg.Store.Name = "events"

	store, err := openStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	_, err := openStore(context.Background(), testConfig("bolt"), zap.NewNop())
	require.Error(t, err)
}

func TestServer_RunWithoutConfig(t *testing.T) {
	require.Error(t, NewServer(nil).Run())
}
