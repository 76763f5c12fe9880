package supabase

import (
	"context"
	"encoding/json"
	"net/url"

	"go.uber.org/zap"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInWithPassword exchanges email/password credentials for a session and
// notifies auth state subscribers.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	endpoint := c.baseURL + "/auth/v1/token?grant_type=password"
	if err := c.do(ctx, "POST", endpoint, nil, credentials{email, password}, &session); err != nil {
		return nil, err
	}
	c.setSession(EventSignedIn, &session)
	return &session, nil
}

// SignUp registers a new user. Depending on backend settings the response is
// either a full session (auto-confirm on) or a bare user row awaiting email
// confirmation; both shapes are handled, and subscribers are only notified
// when a usable session came back.
func (c *Client) SignUp(ctx context.Context, email, password string) (*Session, error) {
	var raw json.RawMessage
	endpoint := c.baseURL + "/auth/v1/signup"
	if err := c.do(ctx, "POST", endpoint, nil, credentials{email, password}, &raw); err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err == nil && session.AccessToken != "" {
		c.setSession(EventSignedIn, &session)
		return &session, nil
	}

	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, err
	}
	return &Session{User: &user}, nil
}

// RefreshSession swaps the stored refresh token for a fresh session.
func (c *Client) RefreshSession(ctx context.Context) (*Session, error) {
	c.mu.Lock()
	current := c.session
	c.mu.Unlock()
	if current == nil || current.RefreshToken == "" {
		return nil, &APIError{Status: 401, Message: "no session to refresh"}
	}

	body := map[string]string{"refresh_token": current.RefreshToken}
	var session Session
	endpoint := c.baseURL + "/auth/v1/token?grant_type=refresh_token"
	if err := c.do(ctx, "POST", endpoint, nil, body, &session); err != nil {
		return nil, err
	}
	c.setSession(EventTokenRefreshed, &session)
	return &session, nil
}

// SignOut revokes the session server-side and always drops the local copy,
// even when revocation fails; the caller is signed out either way.
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	hasSession := c.session != nil
	c.mu.Unlock()

	var err error
	if hasSession {
		endpoint := c.baseURL + "/auth/v1/logout"
		if err = c.do(ctx, "POST", endpoint, nil, struct{}{}, nil); err != nil {
			c.log.Warn("server-side sign-out failed, clearing local session anyway", zap.Error(err))
		}
	}
	c.setSession(EventSignedOut, nil)
	return err
}

// SignInWithOAuth builds the browser URL that starts the provider flow. The
// session arrives later through the redirect, not from this call.
func (c *Client) SignInWithOAuth(provider, redirectTo string) string {
	values := url.Values{}
	values.Set("provider", provider)
	if redirectTo != "" {
		values.Set("redirect_to", redirectTo)
	}
	return c.baseURL + "/auth/v1/authorize?" + values.Encode()
}
