package transport

import (
	"context"
	"fmt"
	"io"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/feral-file/tezos-event-relay/pkg/events"
	"github.com/feral-file/tezos-event-relay/pkg/processor"
)

// GRPC pushes envelopes to the event processor with unary PushNftEvent calls
// over an insecure channel. The connection is established once and reused
// for the life of the process.
type GRPC struct {
	client processor.EventProcessorClient
	conn   *grpc.ClientConn
	out    io.Writer
}

// DialGRPC connects to the event processor at endpoint. The channel is
// insecure by contract with the processor deployment.
func DialGRPC(endpoint string) (*GRPC, error) {
	conn, err := grpc.Dial(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to event processor at %s: %w", endpoint, err)
	}
	return &GRPC{
		client: processor.NewEventProcessorClient(conn),
		conn:   conn,
		out:    os.Stdout,
	}, nil
}

// NewGRPC wraps an existing client. Used by tests and callers that manage
// their own connection.
func NewGRPC(client processor.EventProcessorClient) *GRPC {
	return &GRPC{client: client, out: os.Stdout}
}

// SetOutput redirects the event line writer.
func (g *GRPC) SetOutput(out io.Writer) { g.out = out }

func (g *GRPC) Name() string { return "grpc" }

// Send emits the event line first, then attempts the push. A nil client
// fails fast with ErrNotConfigured so misconfiguration is distinguishable
// from a remote failure.
func (g *GRPC) Send(ctx context.Context, e events.Envelope) error {
	if g == nil || g.client == nil {
		return ErrNotConfigured
	}

	fmt.Fprintln(g.out, eventLine("<GRPC>", e))

	resp, err := g.client.PushNftEvent(ctx, &processor.NftEventInput{
		Type:       e.Type,
		Blockchain: e.Blockchain,
		Contract:   e.Contract,
		From:       e.From,
		To:         e.To,
		TokenID:    e.TokenID,
		TXID:       e.TxID,
		TXTime:     timestamppb.New(e.TxTime),
	})
	if err != nil {
		return err
	}
	if resp.Status != 200 {
		return fmt.Errorf("event processor rejected event: %s", resp.Result)
	}
	return nil
}

// Close tears down the underlying connection, if this transport owns one.
func (g *GRPC) Close() error {
	if g.conn == nil {
		return nil
	}
	return g.conn.Close()
}
