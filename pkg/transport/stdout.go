package transport

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/feral-file/tezos-event-relay/pkg/events"
)

// Stdout writes one event line per envelope. It is the fallback transport
// when no external endpoint is configured and only fails if the write itself
// does.
type Stdout struct {
	out io.Writer
}

// NewStdout returns a stdout transport writing to out. A nil out defaults to
// os.Stdout.
func NewStdout(out io.Writer) *Stdout {
	if out == nil {
		out = os.Stdout
	}
	return &Stdout{out: out}
}

func (s *Stdout) Name() string { return "stdout" }

func (s *Stdout) Send(_ context.Context, e events.Envelope) error {
	_, err := fmt.Fprintln(s.out, eventLine("<STDOUT>", e))
	return err
}
