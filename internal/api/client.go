// Package api is the client for the JobConnect backend REST API. It owns the
// request pipeline (bearer credential injection, rate limiting, 401
// interception) and one facade per backend resource. Facades attach no error
// wrapping and never retry; callers decide what a failure means.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// TokenSource yields the persisted bearer credential, if any. An empty token
// with a nil error means "anonymous".
type TokenSource interface {
	Token() (string, error)
}

type Options struct {
	BaseURL string
	Timeout time.Duration
	Tokens  TokenSource

	// Backend politeness; zero values fall back to 5 req/s, burst 10.
	RatePerSec float64
	RateBurst  int
}

type Client struct {
	base    string
	hc      *http.Client
	tokens  TokenSource
	limiter *rate.Limiter

	// 401 handling: the hook must fire exactly once per revoked token even
	// when several in-flight requests fail together.
	sf             singleflight.Group
	mu             sync.Mutex
	lastRevoked    string
	onUnauthorized func()

	Auth          *AuthService
	Jobs          *JobsService
	Applications  *ApplicationsService
	Notifications *NotificationsService
}

func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 20 * time.Second
	}
	if opts.RatePerSec == 0 {
		opts.RatePerSec = 5.0
	}
	if opts.RateBurst == 0 {
		opts.RateBurst = 10
	}
	c := &Client{
		base:    strings.TrimRight(opts.BaseURL, "/"),
		hc:      &http.Client{Timeout: opts.Timeout},
		tokens:  opts.Tokens,
		limiter: rate.NewLimiter(rate.Limit(opts.RatePerSec), opts.RateBurst),
	}
	c.Auth = &AuthService{c: c}
	c.Jobs = &JobsService{c: c}
	c.Applications = &ApplicationsService{c: c}
	c.Notifications = &NotificationsService{c: c}
	return c
}

// SetOnUnauthorized installs the hook invoked when the backend rejects the
// persisted credential. Wired after construction because the session store
// both feeds tokens into the client and reacts to their revocation.
func (c *Client) SetOnUnauthorized(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

// do dispatches one request. No retries, no backoff: at-most-once from the
// transport's perspective. out may be nil for calls without a useful body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "JobConnectClient/1.0 (+local)")

	var token string
	if c.tokens != nil {
		if t, err := c.tokens.Token(); err == nil {
			token = strings.TrimSpace(t)
		}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		c.revoke(token)
		return parseError(res)
	}
	if res.StatusCode >= 400 {
		return parseError(res)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 1<<20))
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// revoke fires the unauthorized hook once for the given token. A 401 on an
// anonymous request means the session is already gone; nothing to do.
func (c *Client) revoke(token string) {
	if token == "" {
		return
	}
	_, _, _ = c.sf.Do(token, func() (any, error) {
		c.mu.Lock()
		already := token == c.lastRevoked
		if !already {
			c.lastRevoked = token
		}
		fn := c.onUnauthorized
		c.mu.Unlock()

		if !already && fn != nil {
			fn()
		}
		return nil, nil
	})
}

// pageQuery applies the client-side pagination defaults: page=0, size=10.
func pageQuery(page, size int) url.Values {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return q
}
