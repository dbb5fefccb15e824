package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/chainsafe/ethbridge-events/internal/metrics"
)

func TestInstrumentRequests_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(InstrumentRequests)
	r.Get("/v1/events/{hash}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.CollectAndCount(metrics.RequestDuration)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/events/abc", nil))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/events/def", nil))

	if got := testutil.CollectAndCount(metrics.RequestDuration); got != before+1 {
		t.Fatalf("expected one new series for both requests, got %d new", got-before)
	}
}
