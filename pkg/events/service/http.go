package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/chainsafe/ethbridge-events/internal/metrics"
	apperrors "github.com/chainsafe/ethbridge-events/pkg/app/errors"
	apphttp "github.com/chainsafe/ethbridge-events/pkg/app/http"
	"github.com/chainsafe/ethbridge-events/pkg/ethbridge"
	"github.com/chainsafe/ethbridge-events/pkg/events"
	"github.com/chainsafe/ethbridge-events/pkg/hash"
)

// DefaultMaxBodyBytes is used when RegisterRoutes is given no body limit
const DefaultMaxBodyBytes = 1 << 20

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service      Service
	logger       *zap.Logger
	validate     *validator.Validate
	maxBodyBytes int64
}

// RegisterRoutes registers the events API on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger, maxBodyBytes int64) {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	h := &HTTP{
		service:      service,
		logger:       logger,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		maxBodyBytes: maxBodyBytes,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/events/hash", apphttp.HandleError(h.hashEvent))
		r.Post("/events", apphttp.HandleError(h.storeEvent))
		r.Get("/events/{hash}", apphttp.HandleError(h.getEvent))
		r.Get("/assets/{address}/events", apphttp.HandleError(h.listEventsByAsset))
		r.Get("/addresses/{address}", apphttp.HandleError(h.normalizeAddress))
	})
}

func (h *HTTP) hashEvent(w http.ResponseWriter, r *http.Request) error {
	ev, err := h.readEvent(w, r)
	if err != nil {
		return err
	}
	resp, err := h.service.HashEvent(r.Context(), ev)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) storeEvent(w http.ResponseWriter, r *http.Request) error {
	ev, err := h.readEvent(w, r)
	if err != nil {
		return err
	}
	resp, err := h.service.StoreEvent(r.Context(), ev)
	if err != nil {
		return err
	}
	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	apphttp.WriteJSON(w, status, resp)
	return nil
}

func (h *HTTP) getEvent(w http.ResponseWriter, r *http.Request) error {
	req := events.HashRequest{Hash: chi.URLParam(r, "hash")}
	if err := h.validate.Struct(&req); err != nil {
		return apperrors.BadRequestError(err, fmt.Sprintf("invalid event hash %q", req.Hash))
	}
	eventHash, err := hash.ParseHash(req.Hash)
	if err != nil {
		return apperrors.BadRequestError(err, "invalid event hash: "+err.Error())
	}
	resp, err := h.service.GetEvent(r.Context(), eventHash)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) listEventsByAsset(w http.ResponseWriter, r *http.Request) error {
	asset, err := h.parseAddress(chi.URLParam(r, "address"), "asset")
	if err != nil {
		return err
	}
	resp, err := h.service.ListEventsByAsset(r.Context(), asset)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) normalizeAddress(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.NormalizeAddress(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

// readEvent decodes an events.EventRequest body.
func (h *HTTP) readEvent(w http.ResponseWriter, r *http.Request) (ethbridge.Event, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperrors.PayloadTooLargeError(err, "request body too large")
		}
		return nil, apperrors.BadRequestError(err, "failed to read request")
	}

	var req events.EventRequest
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var addrErr *ethbridge.AddressParseError
		if errors.As(err, &addrErr) {
			metrics.AddressParseFailures.WithLabelValues("event").Inc()
			return nil, apperrors.BadRequestError(err, "invalid ethereum address: "+addrErr.Error())
		}
		return nil, apperrors.BadRequestError(err, "invalid event: "+err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return nil, apperrors.BadRequestError(err, "event required")
	}
	return req.Event.Event, nil
}

func (h *HTTP) parseAddress(raw, source string) (ethbridge.EthAddress, error) {
	req := events.AddressRequest{Address: raw}
	if err := h.validate.Struct(&req); err != nil {
		metrics.AddressParseFailures.WithLabelValues(source).Inc()
		return ethbridge.EthAddress{}, apperrors.BadRequestError(err, fmt.Sprintf("invalid ethereum address %q", raw))
	}
	addr, err := ethbridge.ParseEthAddress(req.Address)
	if err != nil {
		metrics.AddressParseFailures.WithLabelValues(source).Inc()
		return ethbridge.EthAddress{}, apperrors.BadRequestError(err, "invalid ethereum address: "+err.Error())
	}
	return addr, nil
}
