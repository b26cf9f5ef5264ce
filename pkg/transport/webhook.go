package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/feral-file/tezos-event-relay/pkg/events"
)

// webhookPayload is the legacy subscriber body. It predates the envelope's
// type field, so only the transfer fields travel.
type webhookPayload struct {
	Timestamp time.Time `json:"timestamp"`
	Contract  string    `json:"contract"`
	TokenID   string    `json:"tokenID"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	IsTest    bool      `json:"isTest"`
}

// Webhook POSTs envelopes as JSON to the legacy event subscriber. Success is
// the request completing with a 2xx status; the response body is ignored.
type Webhook struct {
	url        string
	isTest     bool
	httpClient *http.Client
	out        io.Writer
}

// NewWebhook returns a webhook transport for url. isTest flags every
// outbound event as originating from a test network.
func NewWebhook(url string, isTest bool) *Webhook {
	return &Webhook{
		url:        url,
		isTest:     isTest,
		httpClient: http.DefaultClient,
		out:        os.Stdout,
	}
}

// SetClient overrides the HTTP client. Used by tests.
func (w *Webhook) SetClient(c *http.Client) { w.httpClient = c }

// SetOutput redirects the event line writer.
func (w *Webhook) SetOutput(out io.Writer) { w.out = out }

func (w *Webhook) Name() string { return "api" }

func (w *Webhook) Send(ctx context.Context, e events.Envelope) error {
	if w == nil || w.url == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(webhookPayload{
		Timestamp: e.TxTime,
		Contract:  e.Contract,
		TokenID:   e.TokenID,
		From:      e.From,
		To:        e.To,
		IsTest:    w.isTest,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("event subscriber returned status %d", resp.StatusCode)
	}

	fmt.Fprintln(w.out, eventLine("<API>", e))
	return nil
}
