// Package relay decides how a detected on-chain event gets communicated to
// downstream consumers: which transports are active, how failures are
// contained, and how deliveries run without blocking the indexing pipeline.
package relay

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/feral-file/tezos-event-relay/pkg/events"
	"github.com/feral-file/tezos-event-relay/pkg/transport"
)

// Dispatcher fans envelopes out to the active transport set. The set is
// fixed at construction for the life of the process:
//
//   - gRPC endpoint configured -> gRPC transport active
//   - webhook endpoint configured -> webhook transport active
//   - neither configured -> stdout only
//
// Dispatch returns immediately; each delivery runs as an independent
// background task per transport. A failed delivery is logged with the
// event's identifying fields and discarded. It never reaches the indexing
// framework.
type Dispatcher struct {
	transports []transport.Transport
	metrics    *Metrics
	logger     *zap.Logger

	wg      sync.WaitGroup
	closers []io.Closer
}

// NewDispatcher builds the active transport set from config.
func NewDispatcher(config Config, logger *zap.Logger) (*Dispatcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &Dispatcher{
		metrics: NewMetrics(),
		logger:  logger,
	}

	if config.GRPCEndpoint != "" {
		grpcTransport, err := transport.DialGRPC(config.GRPCEndpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to construct grpc transport: %w", err)
		}
		d.transports = append(d.transports, grpcTransport)
		d.closers = append(d.closers, grpcTransport)
	} else {
		logger.Info("event processor uri not set")
	}

	if config.WebhookEndpoint != "" {
		d.transports = append(d.transports, transport.NewWebhook(config.WebhookEndpoint, config.IsTestnet()))
	} else {
		logger.Info("event subscriber url not set")
	}

	if len(d.transports) == 0 {
		d.transports = append(d.transports, transport.NewStdout(nil))
	}

	return d, nil
}

// NewDispatcherWithTransports wires an explicit transport set. Used by tests
// and callers that construct transports themselves.
func NewDispatcherWithTransports(logger *zap.Logger, transports ...transport.Transport) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		transports: transports,
		metrics:    NewMetrics(),
		logger:     logger,
	}
}

// Transports returns the active transport names, in invocation order.
func (d *Dispatcher) Transports() []string {
	names := make([]string, 0, len(d.transports))
	for _, t := range d.transports {
		names = append(names, t.Name())
	}
	return names
}

// Metrics returns the delivery counters.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Dispatch hands every envelope to every active transport and returns
// without waiting for delivery. Transports are started in configuration
// order (gRPC before webhook) but are not coordinated: partial delivery is
// an accepted terminal state.
func (d *Dispatcher) Dispatch(ctx context.Context, envelopes ...events.Envelope) {
	for _, envelope := range envelopes {
		for _, t := range d.transports {
			d.wg.Add(1)
			go d.deliver(ctx, t, envelope)
		}
	}
}

// deliver runs one delivery attempt and contains every failure, panics
// included. Indexing progress must never be blocked or rolled back by a
// downstream delivery failure.
func (d *Dispatcher) deliver(ctx context.Context, t transport.Transport, e events.Envelope) {
	defer d.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			d.metrics.RecordFailed(t.Name())
			d.logger.Error("panic during event delivery",
				zap.String("transport", t.Name()),
				zap.String("contract", e.Contract),
				zap.String("tokenID", e.TokenID),
				zap.String("txID", e.TxID),
				zap.Any("panic", r),
			)
		}
	}()

	if err := t.Send(ctx, e); err != nil {
		d.metrics.RecordFailed(t.Name())
		d.logger.Error("fail to push event",
			zap.String("transport", t.Name()),
			zap.String("contract", e.Contract),
			zap.String("tokenID", e.TokenID),
			zap.String("txID", e.TxID),
			zap.Error(err),
		)
		sentry.CaptureException(err)
		return
	}

	d.metrics.RecordDelivered(t.Name())
}

// Wait blocks until every delivery started so far has finished. Used on
// shutdown and by tests; the indexing path never calls it.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Close waits for in-flight deliveries and releases transport connections.
func (d *Dispatcher) Close() error {
	d.wg.Wait()
	var firstErr error
	for _, c := range d.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
