package telegram_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	tc "github.com/Roma7-7-7/telegram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/telegram"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func response(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(`{}`)),
		Header:     http.Header{},
	}
}

func TestNewHTMLClient_SendMessage(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "ok",
			status:  http.StatusOK,
			wantErr: assert.NoError,
		},
		{
			name:   "forbidden",
			status: http.StatusForbidden,
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, tc.ErrForbidden, i...)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				path string
				body map[string]any
			)
			client := tc.NewClient(telegram.NewHTMLClient(roundTripFunc(func(req *http.Request) (*http.Response, error) {
				path = req.URL.Path
				data, err := io.ReadAll(req.Body)
				require.NoError(t, err)
				assert.Equal(t, int64(len(data)), req.ContentLength)
				require.NoError(t, json.Unmarshal(data, &body))
				return response(tt.status), nil
			})), "token")

			err := client.SendMessage(context.Background(), "1", "📰 <b>Дайджест</b>")
			tt.wantErr(t, err)

			assert.Equal(t, "/bottoken/sendMessage", path)
			assert.Equal(t, map[string]any{
				"chat_id":    "1",
				"text":       "📰 <b>Дайджест</b>",
				"parse_mode": "HTML",
			}, body)
		})
	}
}

func TestNewHTMLClient_PassesOtherRequestsThrough(t *testing.T) {
	var got string
	client := telegram.NewHTMLClient(roundTripFunc(func(req *http.Request) (*http.Response, error) {
		data, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		got = string(data)
		return response(http.StatusOK), nil
	}))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		"https://api.telegram.org/bottoken/getMe", strings.NewReader(`{"a":1}`))
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.JSONEq(t, `{"a":1}`, got)
}

func TestNewHTMLClient_KeepsExplicitParseMode(t *testing.T) {
	var body map[string]any
	client := telegram.NewHTMLClient(roundTripFunc(func(req *http.Request) (*http.Response, error) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		return response(http.StatusOK), nil
	}))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		"https://api.telegram.org/bottoken/sendMessage", strings.NewReader(`{"chat_id":"1","text":"x","parse_mode":"MarkdownV2"}`))
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "MarkdownV2", body["parse_mode"])
}

func TestNewHTMLClient_RejectsMalformedBody(t *testing.T) {
	client := telegram.NewHTMLClient(roundTripFunc(func(*http.Request) (*http.Response, error) {
		t.Fatal("malformed request must not be forwarded")
		return nil, nil
	}))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		"https://api.telegram.org/bottoken/sendMessage", strings.NewReader(`not json`))
	require.NoError(t, err)

	_, err = client.Do(req) //nolint:bodyclose // no response on error
	assert.ErrorContains(t, err, "decode sendMessage body")
}
