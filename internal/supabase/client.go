package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Auth state change events, mirroring the backend SDK's vocabulary.
const (
	EventSignedIn       = "SIGNED_IN"
	EventTokenRefreshed = "TOKEN_REFRESHED"
	EventSignedOut      = "SIGNED_OUT"
)

// AuthChangeCallback is invoked synchronously on the goroutine that caused
// the state change. The session is nil on sign-out.
type AuthChangeCallback func(event string, session *Session)

// Client talks to the hosted backend's REST and auth surfaces. It holds the
// current session in memory and stamps every data request with either the
// session's access token or the anonymous key.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
	log     *zap.Logger

	mu        sync.Mutex
	session   *Session
	callbacks map[int]AuthChangeCallback
	nextCB    int
}

func New(baseURL, anonKey string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		anonKey:   anonKey,
		http:      &http.Client{Timeout: timeout},
		log:       log,
		callbacks: make(map[int]AuthChangeCallback),
	}
}

// From starts a query against a table, e.g.
// client.From("projects").Select().Eq("owner_id", id).
func (c *Client) From(table string) *QueryBuilder {
	return &QueryBuilder{client: c, table: table, selectCols: "*"}
}

// OnAuthStateChange registers a callback for sign-in, token refresh and
// sign-out events. The returned function unsubscribes it.
func (c *Client) OnAuthStateChange(cb AuthChangeCallback) func() {
	c.mu.Lock()
	id := c.nextCB
	c.nextCB++
	c.callbacks[id] = cb
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.callbacks, id)
		c.mu.Unlock()
	}
}

// GetSession returns the current session, refreshing it first when the
// access token is about to expire. Returns nil without error when signed out.
func (c *Client) GetSession(ctx context.Context) (*Session, error) {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()

	if session == nil {
		return nil, nil
	}
	if session.RefreshToken != "" && session.expiresWithin(time.Minute) {
		return c.RefreshSession(ctx)
	}
	return session, nil
}

func (c *Client) setSession(event string, session *Session) {
	c.mu.Lock()
	c.session = session
	cbs := make([]AuthChangeCallback, 0, len(c.callbacks))
	for _, cb := range c.callbacks {
		cbs = append(cbs, cb)
	}
	c.mu.Unlock()

	for _, cb := range cbs {
		cb(event, session)
	}
}

func (c *Client) accessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil && c.session.AccessToken != "" {
		return c.session.AccessToken
	}
	return c.anonKey
}

// do performs one backend request and decodes the response into dest when
// dest is non-nil. Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, url string, headers map[string]string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.accessToken())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, payload)
	}
	if dest == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
