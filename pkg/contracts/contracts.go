// Package contracts binds the watched contracts' entrypoints to the relay.
// Each contract is a thin adapter: decode the entrypoint parameter, build
// envelopes, hand them to the dispatcher. All relay behavior lives in the
// dispatcher; nothing here keeps state across calls.
package contracts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/feral-file/tezos-event-relay/pkg/events"
	"github.com/feral-file/tezos-event-relay/pkg/indexer"
	"github.com/feral-file/tezos-event-relay/pkg/relay"
)

// Contract names as configured in the indexing framework's contract filter.
const (
	ContractFeralFileV1 = "FeralFileV1"
	ContractPostcard    = "postcard"
	ContractHicetniuc   = "hicetniuc"
	ContractFxhash      = "fxhash"
	ContractFxhashV2    = "fxhashv2"
	ContractVersum      = "versum"
)

// transferHandler decodes an FA2 transfer parameter and dispatches one
// envelope per transfer leg.
func transferHandler(dispatcher *relay.Dispatcher) indexer.HandlerFunc {
	return func(ctx context.Context, parameter json.RawMessage, tx events.TxContext) error {
		var transfers events.TransferParameter
		if err := json.Unmarshal(parameter, &transfers); err != nil {
			return fmt.Errorf("failed to decode transfer parameter: %w", err)
		}
		dispatcher.Dispatch(ctx, events.FromTransfers(transfers, tx)...)
		return nil
	}
}

// mintHandler translates mint_postcard items into synthetic transfers from
// the empty address and routes them like ordinary transfers.
func mintHandler(dispatcher *relay.Dispatcher) indexer.HandlerFunc {
	return func(ctx context.Context, parameter json.RawMessage, tx events.TxContext) error {
		var mints events.MintParameter
		if err := json.Unmarshal(parameter, &mints); err != nil {
			return fmt.Errorf("failed to decode mint_postcard parameter: %w", err)
		}
		dispatcher.Dispatch(ctx, events.FromTransfers(events.MintsAsTransfers(mints), tx)...)
		return nil
	}
}

// stampHandler emits a token_updated event per stamped postcard.
func stampHandler(dispatcher *relay.Dispatcher) indexer.HandlerFunc {
	return func(ctx context.Context, parameter json.RawMessage, tx events.TxContext) error {
		var stamps events.StampParameter
		if err := json.Unmarshal(parameter, &stamps); err != nil {
			return fmt.Errorf("failed to decode stamp_postcard parameter: %w", err)
		}
		dispatcher.Dispatch(ctx, events.FromStamps(stamps, tx)...)
		return nil
	}
}

// RegisterFeralFileV1 wires the FeralFileV1 exhibition contract. Both the
// FA2 transfer and the trustee-mediated authorized_transfer move tokens.
func RegisterFeralFileV1(registry *indexer.Registry, dispatcher *relay.Dispatcher) {
	registry.Register(ContractFeralFileV1, "transfer", transferHandler(dispatcher))
	registry.Register(ContractFeralFileV1, "authorized_transfer", transferHandler(dispatcher))
}

// RegisterPostcard wires the postcard contract: ordinary transfers, mints
// reported as transfers from the empty address, and stamp updates.
func RegisterPostcard(registry *indexer.Registry, dispatcher *relay.Dispatcher) {
	registry.Register(ContractPostcard, "transfer", transferHandler(dispatcher))
	registry.Register(ContractPostcard, "mint_postcard", mintHandler(dispatcher))
	registry.Register(ContractPostcard, "stamp_postcard", stampHandler(dispatcher))
}

// RegisterMarketplaces wires the marketplace FA2 contracts, which only
// forward their transfer entrypoints.
func RegisterMarketplaces(registry *indexer.Registry, dispatcher *relay.Dispatcher) {
	for _, contract := range []string{
		ContractHicetniuc,
		ContractFxhash,
		ContractFxhashV2,
		ContractVersum,
	} {
		registry.Register(contract, "transfer", transferHandler(dispatcher))
	}
}
