// This file implements login, logout, and session persistence. The session
// survives process restarts through current-session.json.
package sqlite

import (
	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

// Login scans the fixed user set for an exact, case-sensitive match on both
// email and password. On match the session is set and persisted; on mismatch
// the session is unchanged and ErrAuthenticationFailed is returned. There is
// no lockout or attempt tracking.
func (b *Backend) Login(email, password string) (*types.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.requireAttached(); err != nil {
		return nil, err
	}

	for i := range b.users {
		u := b.users[i]
		if u.Email == email && u.Password == password {
			b.session = &u
			if err := writeJSONDoc(b.dataPath(sessionFile), &u); err != nil {
				return nil, err
			}
			out := u
			return &out, nil
		}
	}
	return nil, types.ErrAuthenticationFailed
}

// Logout clears the session in memory and removes it from durable storage.
// Idempotent.
func (b *Backend) Logout() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.requireAttached(); err != nil {
		return err
	}

	b.session = nil
	return removeDoc(b.dataPath(sessionFile))
}

// CurrentSession returns a copy of the authenticated user, or ErrNoSession
// when nobody is logged in.
func (b *Backend) CurrentSession() (*types.User, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.requireAttached(); err != nil {
		return nil, err
	}
	if b.session == nil {
		return nil, types.ErrNoSession
	}
	out := *b.session
	return &out, nil
}
