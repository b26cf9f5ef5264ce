package contracts

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/tezos-event-relay/pkg/events"
	"github.com/feral-file/tezos-event-relay/pkg/indexer"
	"github.com/feral-file/tezos-event-relay/pkg/relay"
)

type captureTransport struct {
	mu   sync.Mutex
	sent []events.Envelope
}

func (c *captureTransport) Name() string { return "capture" }

func (c *captureTransport) Send(_ context.Context, e events.Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, e)
	return nil
}

func (c *captureTransport) envelopes() []events.Envelope {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]events.Envelope, len(c.sent))
	copy(out, c.sent)
	return out
}

func setup(register func(*indexer.Registry, *relay.Dispatcher)) (*indexer.Registry, *relay.Dispatcher, *captureTransport) {
	capture := &captureTransport{}
	dispatcher := relay.NewDispatcherWithTransports(nil, capture)
	registry := indexer.NewRegistry(nil)
	register(registry, dispatcher)
	return registry, dispatcher, capture
}

func operation(contract, entrypoint, parameter string) indexer.Operation {
	return indexer.Operation{
		Contract:   contract,
		Entrypoint: entrypoint,
		Parameter:  json.RawMessage(parameter),
		Hash:       "opHash123",
		Timestamp:  time.Date(2023, 5, 1, 12, 30, 0, 0, time.UTC),
		Level:      3400100,
	}
}

func TestPostcardTransfer(t *testing.T) {
	registry, dispatcher, capture := setup(RegisterPostcard)

	op := operation(ContractPostcard, "transfer",
		`[{"from_":"tz1A","txs":[{"amount":"1","to_":"tz1B","token_id":"5"}]}]`)
	require.NoError(t, registry.HandleOperation(context.Background(), op))
	dispatcher.Wait()

	envelopes := capture.envelopes()
	require.Len(t, envelopes, 1)
	assert.Equal(t, events.TypeTransfer, envelopes[0].Type)
	assert.Equal(t, ContractPostcard, envelopes[0].Contract)
	assert.Equal(t, "tz1A", envelopes[0].From)
	assert.Equal(t, "tz1B", envelopes[0].To)
	assert.Equal(t, "5", envelopes[0].TokenID)
	assert.Equal(t, "opHash123", envelopes[0].TxID)
}

func TestPostcardMint(t *testing.T) {
	registry, dispatcher, capture := setup(RegisterPostcard)

	op := operation(ContractPostcard, "mint_postcard",
		`[{"owner":"tz1Owner","token_id":"42"}]`)
	require.NoError(t, registry.HandleOperation(context.Background(), op))
	dispatcher.Wait()

	envelopes := capture.envelopes()
	require.Len(t, envelopes, 1)
	assert.Equal(t, events.TypeTransfer, envelopes[0].Type)
	assert.Equal(t, "", envelopes[0].From)
	assert.Equal(t, "tz1Owner", envelopes[0].To)
	assert.Equal(t, "42", envelopes[0].TokenID)
}

func TestPostcardStamp(t *testing.T) {
	registry, dispatcher, capture := setup(RegisterPostcard)

	op := operation(ContractPostcard, "stamp_postcard",
		`[{"postman":"tz1Postman","token_id":"7"}]`)
	require.NoError(t, registry.HandleOperation(context.Background(), op))
	dispatcher.Wait()

	envelopes := capture.envelopes()
	require.Len(t, envelopes, 1)
	assert.Equal(t, events.TypeTokenUpdated, envelopes[0].Type)
	assert.Equal(t, "tz1Postman", envelopes[0].From)
	assert.Equal(t, "tz1Postman", envelopes[0].To)
	assert.Equal(t, "7", envelopes[0].TokenID)
}

func TestPostcardDecodeFailure(t *testing.T) {
	registry, dispatcher, capture := setup(RegisterPostcard)

	op := operation(ContractPostcard, "transfer", `{"not":"a transfer batch"}`)
	assert.Error(t, registry.HandleOperation(context.Background(), op))
	dispatcher.Wait()
	assert.Empty(t, capture.envelopes())
}

func TestFeralFileV1Transfers(t *testing.T) {
	registry, dispatcher, capture := setup(RegisterFeralFileV1)

	parameter := `[{"from_":"tz1A","txs":[{"amount":"1","to_":"tz1B","token_id":"5"}]}]`
	require.NoError(t, registry.HandleOperation(context.Background(),
		operation(ContractFeralFileV1, "transfer", parameter)))
	require.NoError(t, registry.HandleOperation(context.Background(),
		operation(ContractFeralFileV1, "authorized_transfer", parameter)))
	dispatcher.Wait()

	assert.Len(t, capture.envelopes(), 2)
}

func TestMarketplaceTransfers(t *testing.T) {
	registry, dispatcher, capture := setup(RegisterMarketplaces)

	parameter := `[{"from_":"tz1A","txs":[{"amount":"1","to_":"tz1B","token_id":"5"}]}]`
	for _, contract := range []string{ContractHicetniuc, ContractFxhash, ContractFxhashV2, ContractVersum} {
		require.NoError(t, registry.HandleOperation(context.Background(),
			operation(contract, "transfer", parameter)))
	}
	dispatcher.Wait()

	envelopes := capture.envelopes()
	require.Len(t, envelopes, 4)

	contracts := make([]string, 0, len(envelopes))
	for _, e := range envelopes {
		contracts = append(contracts, e.Contract)
	}
	assert.ElementsMatch(t,
		[]string{ContractHicetniuc, ContractFxhash, ContractFxhashV2, ContractVersum},
		contracts)
}
