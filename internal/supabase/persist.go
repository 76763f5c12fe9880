package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Session persistence is the one piece of local state the client keeps, the
// same way the hosted backend's SDK caches a session between launches.

// LoadSessionFromFile restores a previously persisted session, if any. A
// missing file is not an error; it just means signed out.
func (c *Client) LoadSessionFromFile(path string) error {
	payload, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session file: %w", err)
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return fmt.Errorf("decode session file: %w", err)
	}
	if session.AccessToken == "" {
		return nil
	}

	c.mu.Lock()
	c.session = &session
	c.mu.Unlock()
	return nil
}

// PersistSessionToFile keeps the file in sync with auth state: rewritten on
// sign-in and refresh, removed on sign-out. Write failures are logged, never
// surfaced; persistence is a convenience, not a guarantee.
func (c *Client) PersistSessionToFile(path string) func() {
	return c.OnAuthStateChange(func(event string, session *Session) {
		if session == nil {
			if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				c.log.Warn("failed to remove session file", zap.Error(err))
			}
			return
		}
		payload, err := json.Marshal(session)
		if err != nil {
			c.log.Warn("failed to encode session", zap.Error(err))
			return
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			c.log.Warn("failed to create session dir", zap.Error(err))
			return
		}
		if err := os.WriteFile(path, payload, 0o600); err != nil {
			c.log.Warn("failed to write session file", zap.Error(err))
		}
	})
}
