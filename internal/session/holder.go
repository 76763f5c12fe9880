// Package session owns the single answer to "who is logged in" and "is that
// answer final yet". Screens must not fetch or route until the holder has
// resolved once.
package session

import (
	"context"
	"errors"
	"sync"

	"planner/internal/gateway"
	"planner/internal/supabase"

	"go.uber.org/zap"
)

var ErrNotAuthenticated = errors.New("not authenticated")

type State int

const (
	StateUninitialized State = iota
	StateResolving
	StateResolved
)

// Holder tracks the current session and user. It resolves exactly once, on
// whichever comes first of the startup probe or the backend's auth-change
// callback, and never reverts to unresolved.
type Holder struct {
	client   *supabase.Client
	profiles *gateway.ProfileGateway
	log      *zap.Logger

	mu          sync.Mutex
	state       State
	initialized bool
	loading     bool
	session     *supabase.Session
	user        *supabase.User
	unsubscribe func()
}

func NewHolder(client *supabase.Client, profiles *gateway.ProfileGateway, log *zap.Logger) *Holder {
	return &Holder{
		client:   client,
		profiles: profiles,
		log:      log,
		state:    StateUninitialized,
	}
}

// Initialize probes the stored session and subscribes to auth changes. Probe
// failure still resolves the holder (as anonymous); an unreachable backend
// must not leave the app stuck on the splash state forever.
func (h *Holder) Initialize(ctx context.Context) {
	h.mu.Lock()
	h.state = StateResolving
	h.loading = true
	h.mu.Unlock()

	h.unsubscribe = h.client.OnAuthStateChange(func(event string, session *supabase.Session) {
		h.log.Debug("auth state changed", zap.String("event", event))
		h.apply(session)
	})

	session, err := h.client.GetSession(ctx)
	if err != nil {
		h.log.Error("initial session probe failed", zap.Error(err))
	}
	h.apply(session)
}

// Close drops the auth-change subscription.
func (h *Holder) Close() {
	if h.unsubscribe != nil {
		h.unsubscribe()
	}
}

func (h *Holder) apply(session *supabase.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = session
	if session != nil {
		h.user = session.User
	} else {
		h.user = nil
	}
	h.state = StateResolved
	h.initialized = true
	h.loading = false
}

func (h *Holder) SignIn(ctx context.Context, email, password string) error {
	h.setLoading(true)
	defer h.setLoading(false)

	_, err := h.client.SignInWithPassword(ctx, email, password)
	return err
}

// SignUp registers the user and creates their profile row. The profile write
// is best-effort: a failure there is logged and the sign-up still succeeds.
func (h *Holder) SignUp(ctx context.Context, email, password, fullName string) error {
	h.setLoading(true)
	defer h.setLoading(false)

	result, err := h.client.SignUp(ctx, email, password)
	if err != nil {
		return err
	}

	if result.User != nil && fullName != "" {
		if err := h.profiles.Upsert(ctx, result.User.ID, fullName); err != nil {
			h.log.Warn("profile upsert after sign-up failed", zap.Error(err))
		}
	}
	return nil
}

// SignOut clears local state immediately instead of waiting for the change
// callback, then revokes the session.
func (h *Holder) SignOut(ctx context.Context) error {
	h.setLoading(true)
	defer h.setLoading(false)

	h.mu.Lock()
	h.session = nil
	h.user = nil
	h.mu.Unlock()

	return h.client.SignOut(ctx)
}

// SignInWithOAuth returns the browser URL that starts the provider flow.
func (h *Holder) SignInWithOAuth(provider, redirectTo string) string {
	return h.client.SignInWithOAuth(provider, redirectTo)
}

func (h *Holder) setLoading(v bool) {
	h.mu.Lock()
	h.loading = v
	h.mu.Unlock()
}

func (h *Holder) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

func (h *Holder) IsInitialized() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.initialized
}

func (h *Holder) Loading() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loading
}

func (h *Holder) Session() *supabase.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.session
}

func (h *Holder) User() *supabase.User {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.user
}

// RequireUser is the fetch/route gate: it fails unless the holder has
// resolved to an authenticated user.
func (h *Holder) RequireUser() (*supabase.User, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.initialized || h.loading || h.user == nil {
		return nil, ErrNotAuthenticated
	}
	return h.user, nil
}
