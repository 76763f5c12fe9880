package supabase_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"planner/internal/supabase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionJSON(accessToken, refreshToken string, expiresAt int64, userID uuid.UUID) string {
	return fmt.Sprintf(`{
		"access_token": %q,
		"token_type": "bearer",
		"refresh_token": %q,
		"expires_at": %d,
		"user": {"id": %q, "email": "ada@example.com"}
	}`, accessToken, refreshToken, expiresAt, userID)
}

func TestSignInWithPassword_StoresSessionAndNotifies(t *testing.T) {
	// Arrange
	userID := uuid.New()
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "ada@example.com", creds["email"])

		_, _ = w.Write([]byte(sessionJSON("token-1", "refresh-1", time.Now().Add(time.Hour).Unix(), userID)))
	})

	var events []string
	client.OnAuthStateChange(func(event string, session *supabase.Session) {
		events = append(events, event)
	})

	// Act
	session, err := client.SignInWithPassword(context.Background(), "ada@example.com", "hunter2")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "token-1", session.AccessToken)
	assert.Equal(t, userID, session.User.ID)
	assert.Equal(t, []string{supabase.EventSignedIn}, events)

	stored, err := client.GetSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", stored.AccessToken)
}

func TestSignIn_FailureDoesNotStoreSession(t *testing.T) {
	// Arrange
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_description":"Invalid login credentials"}`))
	})

	// Act
	_, err := client.SignInWithPassword(context.Background(), "ada@example.com", "wrong")

	// Assert
	var apiErr *supabase.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid login credentials", apiErr.Message)

	session, err := client.GetSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSignUp_UserOnlyResponse(t *testing.T) {
	// Arrange: confirmation-required backends return a bare user, no tokens
	userID := uuid.New()
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		_, _ = w.Write([]byte(fmt.Sprintf(`{"id": %q, "email": "ada@example.com"}`, userID)))
	})

	var events []string
	client.OnAuthStateChange(func(event string, session *supabase.Session) {
		events = append(events, event)
	})

	// Act
	result, err := client.SignUp(context.Background(), "ada@example.com", "hunter2")

	// Assert
	require.NoError(t, err)
	assert.Empty(t, result.AccessToken)
	require.NotNil(t, result.User)
	assert.Equal(t, userID, result.User.ID)
	assert.Empty(t, events, "no usable session, so no auth event")
}

func TestSignOut_ClearsSessionAndNotifies(t *testing.T) {
	// Arrange
	userID := uuid.New()
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/token":
			_, _ = w.Write([]byte(sessionJSON("token-1", "refresh-1", time.Now().Add(time.Hour).Unix(), userID)))
		case "/auth/v1/logout":
			w.WriteHeader(http.StatusNoContent)
		}
	})
	_, err := client.SignInWithPassword(context.Background(), "ada@example.com", "hunter2")
	require.NoError(t, err)

	var lastEvent string
	var lastSession *supabase.Session
	client.OnAuthStateChange(func(event string, session *supabase.Session) {
		lastEvent = event
		lastSession = session
	})

	// Act
	err = client.SignOut(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, supabase.EventSignedOut, lastEvent)
	assert.Nil(t, lastSession)

	stored, err := client.GetSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestGetSession_RefreshesExpiredSession(t *testing.T) {
	// Arrange: first grant returns an already-expired session
	userID := uuid.New()
	var refreshCalls int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("grant_type") {
		case "password":
			_, _ = w.Write([]byte(sessionJSON("stale", "refresh-1", time.Now().Add(-time.Minute).Unix(), userID)))
		case "refresh_token":
			refreshCalls++
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "refresh-1", body["refresh_token"])
			_, _ = w.Write([]byte(sessionJSON("fresh", "refresh-2", time.Now().Add(time.Hour).Unix(), userID)))
		}
	})
	_, err := client.SignInWithPassword(context.Background(), "ada@example.com", "hunter2")
	require.NoError(t, err)

	var events []string
	client.OnAuthStateChange(func(event string, session *supabase.Session) {
		events = append(events, event)
	})

	// Act
	session, err := client.GetSession(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "fresh", session.AccessToken)
	assert.Equal(t, 1, refreshCalls)
	assert.Equal(t, []string{supabase.EventTokenRefreshed}, events)
}

func TestSignInWithOAuth_BuildsAuthorizeURL(t *testing.T) {
	// Arrange
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	// Act
	url := client.SignInWithOAuth("google", "planner://auth-callback")

	// Assert
	assert.Equal(t, server.URL+"/auth/v1/authorize?provider=google&redirect_to=planner%3A%2F%2Fauth-callback", url)
}

func TestRESTRequestsUseSessionToken(t *testing.T) {
	// Arrange
	userID := uuid.New()
	var restAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/v1/token" {
			_, _ = w.Write([]byte(sessionJSON("token-1", "refresh-1", time.Now().Add(time.Hour).Unix(), userID)))
			return
		}
		restAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})
	_, err := client.SignInWithPassword(context.Background(), "ada@example.com", "hunter2")
	require.NoError(t, err)

	// Act
	err = client.From("projects").Select().Execute(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Bearer token-1", restAuth)
}
