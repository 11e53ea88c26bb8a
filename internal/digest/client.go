package digest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultURL = "https://ispanskie-msk-bot-ver.vercel.app/api/digest"

// ErrUnavailable wraps every reason a digest could not be fetched.
var ErrUnavailable = errors.New("digest unavailable")

type (
	Digest struct {
		Text       string `json:"digest"`
		PostsCount int    `json:"postsCount"`
		Date       string `json:"date,omitempty"`
	}

	response struct {
		Success bool    `json:"success"`
		Digest  *Digest `json:"digest"`
		Error   string  `json:"error,omitempty"`
	}

	Client struct {
		http *resty.Client
		url  string

		log *slog.Logger
	}
)

func NewClient(url string, timeout time.Duration, log *slog.Logger) *Client {
	if url == "" {
		url = DefaultURL
	}

	return &Client{
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", "ispanskie-bot"),
		url: url,

		log: log.With("component", "digest"),
	}
}

// Fetch issues a single request to the content provider.
// Any failure is reported as ErrUnavailable, and no retries are made.
func (c *Client) Fetch(ctx context.Context) (Digest, error) {
	c.log.DebugContext(ctx, "fetching digest", "url", c.url)

	resp, err := c.http.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return Digest{}, fmt.Errorf("%w: get digest from url=%s: %w", ErrUnavailable, c.url, err)
	}
	if resp.IsError() {
		return Digest{}, fmt.Errorf("%w: get digest from url=%s: status=%s", ErrUnavailable, c.url, resp.Status())
	}

	var body response
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return Digest{}, fmt.Errorf("%w: decode digest response: %w", ErrUnavailable, err)
	}
	if !body.Success {
		if body.Error != "" {
			return Digest{}, fmt.Errorf("%w: provider reported failure: %s", ErrUnavailable, body.Error)
		}
		return Digest{}, fmt.Errorf("%w: provider reported failure", ErrUnavailable)
	}
	if body.Digest == nil {
		return Digest{}, fmt.Errorf("%w: response has no digest", ErrUnavailable)
	}

	return *body.Digest, nil
}
