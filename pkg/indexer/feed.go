package indexer

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Record is one line of the operation feed: either a transaction targeting a
// contract entrypoint or a block marker.
type Record struct {
	Kind string `json:"kind"` // "transaction" or "block"
	Operation
}

// Record kinds.
const (
	KindTransaction = "transaction"
	KindBlock       = "block"
)

// Feed drives a registry from a JSON-lines stream of records, the way the
// indexing framework drives its contract modules. One record per line;
// malformed lines are logged and skipped so a bad record cannot stall the
// stream.
type Feed struct {
	registry *Registry
	logger   *zap.Logger
}

// NewFeed wires a feed to a registry.
func NewFeed(registry *Registry, logger *zap.Logger) *Feed {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Feed{registry: registry, logger: logger}
}

// Run consumes records from r until EOF or context cancellation. Handler
// errors are already logged by the registry and do not stop the feed.
func (f *Feed) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var record Record
		if err := json.Unmarshal(line, &record); err != nil {
			f.logger.Warn("skipping malformed feed record", zap.Error(err))
			continue
		}

		switch record.Kind {
		case KindBlock:
			f.registry.HandleBlock(ctx, record.Level)
		case KindTransaction, "":
			// Handler errors stay at the registry boundary.
			_ = f.registry.HandleOperation(ctx, record.Operation)
		default:
			f.logger.Warn("skipping feed record of unknown kind", zap.String("kind", record.Kind))
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("operation feed read failed: %w", err)
	}
	return nil
}
