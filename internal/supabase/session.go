package supabase

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID      `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}

// expiresAt returns the session expiry as a unix timestamp, falling back to
// the exp claim of the access token when the auth response omitted
// expires_at. The token is not verified here; only the claim is read.
func (s *Session) expiresAt() int64 {
	if s.ExpiresAt != 0 {
		return s.ExpiresAt
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, claims); err != nil {
		return 0
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}
	return exp.Unix()
}

// expiresWithin reports whether the session expires inside the given margin.
// Sessions with no discoverable expiry are treated as non-expiring.
func (s *Session) expiresWithin(margin time.Duration) bool {
	at := s.expiresAt()
	if at == 0 {
		return false
	}
	return time.Now().Add(margin).Unix() >= at
}
