package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/chainsafe/ethbridge-events/pkg/app/errors"
)

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func serve(t *testing.T, h HandlerFunc) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()

	rec := httptest.NewRecorder()
	HandleError(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var body errorBody
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response JSON: %v", err)
		}
	}
	return rec, body
}

func TestHandleError_ServiceError(t *testing.T) {
	rec, body := serve(t, func(http.ResponseWriter, *http.Request) error {
		return apperrors.ResourceNotFoundError(nil, "event not found")
	})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
	if body.Error != "event not found" || body.Code != http.StatusNotFound {
		t.Fatalf("unexpected body: %+v", body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type %q, got %q", "application/json", ct)
	}
}

func TestHandleError_UnknownErrorIsHidden(t *testing.T) {
	rec, body := serve(t, func(http.ResponseWriter, *http.Request) error {
		return errors.New("leveldb: closed")
	})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if body.Error != "Unexpected Service Error" {
		t.Fatalf("internal error leaked: %q", body.Error)
	}
}

func TestHandleError_NoError(t *testing.T) {
	rec, _ := serve(t, func(w http.ResponseWriter, _ *http.Request) error {
		w.WriteHeader(http.StatusNoContent)
		return nil
	})

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
}
