// Package client is a typed Go client for the admin API with a short-lived
// in-process cache over GET responses. Mutations invalidate the cached
// entries of the resource they touch before returning.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	defaultTTL     = 30 * time.Second
	defaultTimeout = 30 * time.Second
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	cache   *responseCache

	mu    sync.Mutex
	token string
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// WithCacheTTL sets how long GET responses stay cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newResponseCache(ttl)
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		cache:   newResponseCache(defaultTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken stores the bearer token for subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the currently stored bearer token.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// ClearToken drops the stored bearer token and the whole cache.
func (c *Client) ClearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	c.cache.clear()
}

func cacheKey(method, path string, query url.Values) string {
	if len(query) == 0 {
		return method + " " + path
	}
	return method + " " + path + "?" + query.Encode()
}

// get performs a GET with the response cache in front of the wire.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) (*Envelope, error) {
	key := cacheKey(http.MethodGet, path, query)
	if data, found := c.cache.get(key); found {
		return decodeEnvelope(data, out)
	}

	data, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	c.cache.set(key, data)
	return decodeEnvelope(data, out)
}

// getRaw performs an uncached GET and returns the raw body, used for the
// CSV export endpoints.
func (c *Client) getRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// mutate performs a state-changing request and invalidates the resource's
// cached entries before returning.
func (c *Client) mutate(ctx context.Context, method, path string, body, out any) (*Envelope, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	data, err := c.do(ctx, method, path, nil, reader)

	c.cache.invalidate(resourcePath(path))

	if err != nil {
		return nil, err
	}
	return decodeEnvelope(data, out)
}

// resourcePath trims a request path down to its resource root, so that
// "/api/v1/blogposts/7/publish" invalidates everything under
// "/api/v1/blogposts".
func resourcePath(path string) string {
	const prefix = "/api/v1/"
	rest, found := strings.CutPrefix(path, prefix)
	if !found {
		return path
	}
	resource, _, _ := strings.Cut(rest, "/")
	return prefix + resource
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.ClearToken()
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	return data, nil
}

func errorMessage(data []byte) string {
	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return string(data)
}

func decodeEnvelope(data []byte, out any) (*Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return nil, fmt.Errorf("decode response data: %w", err)
		}
	}
	return &envelope, nil
}
