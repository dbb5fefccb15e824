package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/ethbridge-events/pkg/ethbridge"
	"github.com/chainsafe/ethbridge-events/pkg/events"
	"github.com/chainsafe/ethbridge-events/pkg/hash"
)

const serviceName = "EventService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the events Service.
// It logs method completion, duration and errors.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger.With(zap.String("service", serviceName)),
	}
}

func (ls *logService) HashEvent(ctx context.Context, ev ethbridge.Event) (resp *events.HashResponse, err error) {
	defer func(start time.Time) {
		if err != nil {
			ls.logFailure("HashEvent", start, err, kindField(ev))
			return
		}
		ls.logger.Debug("HashEvent completed",
			zap.String("method", "HashEvent"),
			zap.Duration("duration", time.Since(start)),
			zap.Stringer("kind", resp.Kind),
			zap.Stringer("hash", resp.Hash),
		)
	}(time.Now())
	return ls.svc.HashEvent(ctx, ev)
}

func (ls *logService) StoreEvent(ctx context.Context, ev ethbridge.Event) (resp *events.StoreResponse, err error) {
	defer func(start time.Time) {
		if err != nil {
			ls.logFailure("StoreEvent", start, err, kindField(ev))
			return
		}
		ls.logger.Info("StoreEvent completed",
			zap.String("method", "StoreEvent"),
			zap.Duration("duration", time.Since(start)),
			zap.Stringer("kind", resp.Kind),
			zap.Stringer("hash", resp.Hash),
			zap.Bool("created", resp.Created),
		)
	}(time.Now())
	return ls.svc.StoreEvent(ctx, ev)
}

func (ls *logService) GetEvent(ctx context.Context, h hash.Hash) (resp *events.EventResponse, err error) {
	defer func(start time.Time) {
		if err != nil {
			ls.logFailure("GetEvent", start, err, zap.Stringer("hash", h))
			return
		}
		ls.logger.Debug("GetEvent completed",
			zap.String("method", "GetEvent"),
			zap.Duration("duration", time.Since(start)),
			zap.Stringer("hash", h),
		)
	}(time.Now())
	return ls.svc.GetEvent(ctx, h)
}

func (ls *logService) ListEventsByAsset(
	ctx context.Context,
	asset ethbridge.EthAddress,
) (resp *events.AssetEventsResponse, err error) {
	defer func(start time.Time) {
		if err != nil {
			ls.logFailure("ListEventsByAsset", start, err, zap.Stringer("asset", asset))
			return
		}
		ls.logger.Debug("ListEventsByAsset completed",
			zap.String("method", "ListEventsByAsset"),
			zap.Duration("duration", time.Since(start)),
			zap.Stringer("asset", asset),
			zap.Int("count", len(resp.Hashes)),
		)
	}(time.Now())
	return ls.svc.ListEventsByAsset(ctx, asset)
}

func (ls *logService) NormalizeAddress(ctx context.Context, raw string) (resp *events.AddressResponse, err error) {
	defer func(start time.Time) {
		if err != nil {
			ls.logFailure("NormalizeAddress", start, err, zap.String("input", truncateString(raw, addressInputMaxLen)))
		}
	}(time.Now())
	return ls.svc.NormalizeAddress(ctx, raw)
}

const addressInputMaxLen = 64

func (ls *logService) logFailure(method string, start time.Time, err error, fields ...zap.Field) {
	ls.logger.Warn(method+" failed", append([]zap.Field{
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
		zap.Error(err),
	}, fields...)...)
}

func kindField(ev ethbridge.Event) zap.Field {
	if kind, ok := ethbridge.KindOf(ev); ok {
		return zap.Stringer("kind", kind)
	}
	return zap.Skip()
}

// truncateString truncates a string to maxLen characters, adding "..." if truncated
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
