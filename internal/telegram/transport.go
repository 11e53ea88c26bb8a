package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	tb "gopkg.in/telebot.v3"
)

const parseModeField = "parse_mode"

// NewHTMLClient returns an http.Client for the broadcast sender. Every
// sendMessage request it carries is rendered by Telegram as HTML.
func NewHTMLClient(base http.RoundTripper) *http.Client {
	if base == nil {
		base = http.DefaultTransport
	}
	return &http.Client{Transport: &htmlModeTransport{base: base}}
}

type htmlModeTransport struct {
	base http.RoundTripper
}

func (t *htmlModeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body == nil || !strings.HasSuffix(req.URL.Path, "/sendMessage") {
		return t.base.RoundTrip(req) //nolint:wrapcheck // transparent transport
	}

	body, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read sendMessage body: %w", err)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode sendMessage body: %w", err)
	}
	if _, ok := payload[parseModeField]; !ok {
		mode, _ := json.Marshal(string(tb.ModeHTML))
		payload[parseModeField] = mode
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode sendMessage body: %w", err)
	}

	clone := req.Clone(req.Context())
	clone.Body = io.NopCloser(bytes.NewReader(data))
	clone.ContentLength = int64(len(data))
	clone.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}

	return t.base.RoundTrip(clone) //nolint:wrapcheck // transparent transport
}
