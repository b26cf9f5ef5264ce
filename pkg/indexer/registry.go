// Package indexer routes decoded contract operations to their handlers. The
// external indexing framework (or the operation feed standing in for it)
// invokes one handler per transaction entrypoint; handlers decode the
// parameter and hand items to the relay dispatcher.
package indexer

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/tezos-event-relay/pkg/events"
)

// HandlerFunc processes one entrypoint invocation. The parameter arrives as
// raw JSON; the handler owns decoding it.
type HandlerFunc func(ctx context.Context, parameter json.RawMessage, tx events.TxContext) error

// BlockHandlerFunc is invoked once per indexed block.
type BlockHandlerFunc func(ctx context.Context, level uint64)

// Operation is one entrypoint invocation as handed over by the indexing
// framework: contract, entrypoint, decoded parameter and the transaction
// context fields.
type Operation struct {
	Contract   string          `json:"contract"`
	Entrypoint string          `json:"entrypoint"`
	Parameter  json.RawMessage `json:"parameter"`
	Hash       string          `json:"hash"`
	Timestamp  time.Time       `json:"timestamp"`
	Level      uint64          `json:"level"`
}

// TxContext extracts the read-only transaction context of an operation.
func (o Operation) TxContext() events.TxContext {
	return events.TxContext{
		Contract:      o.Contract,
		BlockTime:     o.Timestamp,
		OperationHash: o.Hash,
		BlockLevel:    o.Level,
	}
}

type handlerKey struct {
	contract   string
	entrypoint string
}

// Registry is the explicit registration table mapping (contract name,
// entrypoint name) to a handler. All registration happens at startup;
// lookups afterwards are read-only.
type Registry struct {
	handlers      map[handlerKey]HandlerFunc
	blockHandlers []BlockHandlerFunc
	logger        *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		handlers: make(map[handlerKey]HandlerFunc),
		logger:   logger,
	}
}

// Register binds a handler to a contract entrypoint. A later registration
// for the same key replaces the earlier one.
func (r *Registry) Register(contract, entrypoint string, handler HandlerFunc) {
	r.handlers[handlerKey{contract: contract, entrypoint: entrypoint}] = handler
}

// RegisterBlockHandler adds a per-block callback.
func (r *Registry) RegisterBlockHandler(handler BlockHandlerFunc) {
	r.blockHandlers = append(r.blockHandlers, handler)
}

// HandleOperation routes one operation to its registered handler.
// Operations without a handler are ignored: the framework delivers every
// entrypoint of a filtered contract and most carry no relay logic. A
// handler error (in practice a parameter decode failure) is logged with the
// operation's identifying fields and returned; it does not affect other
// operations.
func (r *Registry) HandleOperation(ctx context.Context, op Operation) error {
	handler, ok := r.handlers[handlerKey{contract: op.Contract, entrypoint: op.Entrypoint}]
	if !ok {
		return nil
	}

	if err := handler(ctx, op.Parameter, op.TxContext()); err != nil {
		r.logger.Error("entrypoint handler failed",
			zap.String("contract", op.Contract),
			zap.String("entrypoint", op.Entrypoint),
			zap.String("txID", op.Hash),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// HandleBlock invokes every block handler for one indexed block.
func (r *Registry) HandleBlock(ctx context.Context, level uint64) {
	for _, handler := range r.blockHandlers {
		handler(ctx, level)
	}
}
