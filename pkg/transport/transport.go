// Package transport implements the concrete delivery mechanisms for outbound
// envelopes: a gRPC unary client, an HTTP webhook client and a stdout writer.
// Each transport is independent; a failure in one must never be conflated
// with, or prevent the invocation of, any other.
package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/feral-file/tezos-event-relay/pkg/events"
)

// Error types
var (
	// ErrNotConfigured reports that a transport was invoked although its
	// client was never constructed. It signals misconfiguration, not a
	// delivery failure.
	ErrNotConfigured = errors.New("transport is not configured")
)

// Transport is one concrete delivery mechanism for an envelope.
type Transport interface {
	// Name returns a short stable identifier used in logs and metrics.
	Name() string

	// Send delivers a single envelope. Envelopes are never retried here;
	// the caller decides what to do with the error.
	Send(ctx context.Context, e events.Envelope) error
}

// eventLine renders the human-readable event line shared by all transports.
// The first tag distinguishes transfers from stamp updates, the second names
// the transport that handled the event.
func eventLine(transportTag string, e events.Envelope) string {
	kind := "[TOKEN_TRANSFER]"
	if e.Type == events.TypeTokenUpdated {
		kind = "[TOKEN_STAMP]"
	}
	return fmt.Sprintf("%s %s ( %s ) id: %s from: %s to: %s txid: %s txTime: %s",
		kind, transportTag, e.Contract, e.TokenID, e.From, e.To, e.TxID,
		e.TxTime.UTC().Format(time.RFC3339))
}
