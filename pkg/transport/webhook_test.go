package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookSend(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var err error
		body, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var out bytes.Buffer
	w := NewWebhook(server.URL, true)
	w.SetOutput(&out)
	assert.Equal(t, "api", w.Name())

	e := testEnvelope()
	require.NoError(t, w.Send(context.Background(), e))

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "KT1PostcardContract", payload["contract"])
	assert.Equal(t, "5", payload["tokenID"])
	assert.Equal(t, "tz1A", payload["from"])
	assert.Equal(t, "tz1B", payload["to"])
	assert.Equal(t, true, payload["isTest"])
	assert.Equal(t, "2023-05-01T12:30:00Z", payload["timestamp"])

	// The event line is written only after the subscriber accepted the event.
	assert.Contains(t, out.String(), "[TOKEN_TRANSFER] <API> ( KT1PostcardContract ) id: 5")
}

func TestWebhookSendRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	var out bytes.Buffer
	w := NewWebhook(server.URL, false)
	w.SetOutput(&out)

	err := w.Send(context.Background(), testEnvelope())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Empty(t, out.String())
}

func TestWebhookNotConfigured(t *testing.T) {
	w := NewWebhook("", false)
	assert.ErrorIs(t, w.Send(context.Background(), testEnvelope()), ErrNotConfigured)
}
