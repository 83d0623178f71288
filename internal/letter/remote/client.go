// internal/letter/remote/client.go
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	commonhttp "letter-workers/internal/common/http"
	"letter-workers/internal/letter/catalog"
	"letter-workers/internal/letter/field"
	"letter-workers/internal/letter/redact"
)

var ErrRemoteUnavailable = errors.New("REMOTE_UNAVAILABLE")

const (
	// DefaultTimeout is the hard deadline for the single outbound call.
	DefaultTimeout = 15 * time.Second

	defaultBaseURL = "https://text.pollinations.ai"
	maxSeed        = 10000
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the remote text-generation endpoint. One GET per
// generation: the URL path carries the url-encoded prompt, the query a
// randomness seed, and the plain-text body is the letter.
type Client struct {
	config Config
	http   *commonhttp.Client
	seed   func() int
}

func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &Client{
		config: config,
		// No transport-level timeout; the per-call context deadline is the
		// single source of truth for cancellation.
		http: commonhttp.NewClient(0),
		seed: func() int { return rand.Intn(maxSeed) },
	}
}

// Generate produces a letter for a remote-mode template (or as an explicit
// fallback path for an instant template whose render failed). Sensitive field
// values are redacted before the prompt leaves the process and restored on
// the cleaned response. Timeouts, transport failures and non-2xx statuses all
// come back as ErrRemoteUnavailable; callers recover with Fallback.
func (c *Client) Generate(ctx context.Context, t catalog.Template, lang catalog.Language, values field.Values) (string, error) {
	sanitized, tokens := redact.Redact(values)
	prompt := buildPrompt(t, lang, sanitized)

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/%s?seed=%d", c.config.BaseURL, url.PathEscape(prompt), c.seed())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrRemoteUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%w: deadline exceeded after %s", ErrRemoteUnavailable, c.config.Timeout)
		}
		return "", fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrRemoteUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrRemoteUnavailable, err)
	}

	text := clean(string(raw))
	return tokens.Restore(text), nil
}
