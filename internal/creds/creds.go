// Package creds holds the bearer credential for the active session.
//
// The store is the single source of truth for "is a session active":
// an absent token means unauthenticated. No expiry is tracked here;
// an expired token is only discovered when the backend rejects it.
package creds

import (
	"sync"
)

// Store - interface for the session credential holder.
type Store interface {
	// Set overwrites the held token unconditionally.
	Set(token string) error
	// Get returns the held token and whether one is present.
	Get() (string, bool)
	// Clear drops the held token.
	Clear() error
}

// Memory keeps the credential in process memory only.
type Memory struct {
	mu    sync.Mutex
	token string
	held  bool
}

// NewMemory creates an empty in-memory credential store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.held = true
	return nil
}

func (m *Memory) Get() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.held {
		return "", false
	}
	return m.token, true
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""
	m.held = false
	return nil
}
