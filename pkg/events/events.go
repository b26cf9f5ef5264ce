// Package events holds the normalized outbound event record and the pure
// builders that map decoded entrypoint parameters onto it.
package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// BlockchainTezos is the constant blockchain tag on every outbound event.
const BlockchainTezos = "tezos"

// Event types understood by the downstream processor.
const (
	TypeTransfer     = "transfer"
	TypeTokenUpdated = "token_updated"
)

// TransferTx is one leg of an FA2 transfer batch. Amount plays no role in
// delivery; every leg is reported independently of it.
type TransferTx struct {
	Amount  decimal.Decimal `json:"amount"`
	To      string          `json:"to_"`
	TokenID decimal.Decimal `json:"token_id"`
}

// TransferGroup is one {from_, txs} group of a transfer parameter. An empty
// From denotes issuance with no prior owner (synthetic mint transfers).
type TransferGroup struct {
	From string       `json:"from_"`
	Txs  []TransferTx `json:"txs"`
}

// TransferParameter is the decoded parameter of an FA2 transfer entrypoint.
type TransferParameter []TransferGroup

// StampItem is one item of the postcard stamp_postcard parameter.
type StampItem struct {
	Postman string          `json:"postman"`
	TokenID decimal.Decimal `json:"token_id"`
}

// StampParameter is the decoded parameter of the stamp_postcard entrypoint.
type StampParameter []StampItem

// MintItem is one item of the postcard mint_postcard parameter.
type MintItem struct {
	Owner   string          `json:"owner"`
	TokenID decimal.Decimal `json:"token_id"`
}

// MintParameter is the decoded parameter of the mint_postcard entrypoint.
type MintParameter []MintItem

// TxContext is the read-only transaction context supplied by the indexing
// framework. It is immutable for the duration of one event.
type TxContext struct {
	Contract      string
	BlockTime     time.Time
	OperationHash string
	BlockLevel    uint64
}

// Envelope is the normalized outbound record. It is constructed fresh per
// delivery attempt and never mutated afterwards.
type Envelope struct {
	Type       string
	Blockchain string
	Contract   string
	From       string
	To         string
	TokenID    string
	TxID       string
	TxTime     time.Time
	// EventIndex is declared in the wire schema but left zero: no call site
	// populates it and downstream requirements are unclear.
	EventIndex int32
}

// FromTransfers produces one envelope per (from, txs[i]) pair, in iteration
// order of the source parameter. Addresses pass through unvalidated; token
// ids render as exact decimal strings.
func FromTransfers(parameter TransferParameter, tx TxContext) []Envelope {
	var out []Envelope
	for _, group := range parameter {
		for _, item := range group.Txs {
			out = append(out, Envelope{
				Type:       TypeTransfer,
				Blockchain: BlockchainTezos,
				Contract:   tx.Contract,
				From:       group.From,
				To:         item.To,
				TokenID:    item.TokenID.String(),
				TxID:       tx.OperationHash,
				TxTime:     tx.BlockTime,
			})
		}
	}
	return out
}

// FromStamps produces one token_updated envelope per stamp item. From and To
// are both the stamping postman: the token changed in place, ownership did
// not move.
func FromStamps(parameter StampParameter, tx TxContext) []Envelope {
	var out []Envelope
	for _, item := range parameter {
		out = append(out, Envelope{
			Type:       TypeTokenUpdated,
			Blockchain: BlockchainTezos,
			Contract:   tx.Contract,
			From:       item.Postman,
			To:         item.Postman,
			TokenID:    item.TokenID.String(),
			TxID:       tx.OperationHash,
			TxTime:     tx.BlockTime,
		})
	}
	return out
}

// MintsAsTransfers rewrites mint items as a transfer parameter with an empty
// from address and amount 1, so mints flow through the same path as ordinary
// transfers.
func MintsAsTransfers(parameter MintParameter) TransferParameter {
	out := make(TransferParameter, 0, len(parameter))
	for _, item := range parameter {
		out = append(out, TransferGroup{
			From: "",
			Txs: []TransferTx{{
				Amount:  decimal.NewFromInt(1),
				To:      item.Owner,
				TokenID: item.TokenID,
			}},
		})
	}
	return out
}
