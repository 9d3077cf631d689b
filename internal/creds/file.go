package creds

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gorilla/securecookie"
)

const tokenName = "session-token"

// File persists the credential across restarts. The on-disk value is
// HMAC-signed with securecookie, so a file that was edited or copied
// from another machine restores as "no session" instead of as a
// corrupt token.
type File struct {
	mu    sync.Mutex
	path  string
	codec *securecookie.SecureCookie
	token string
	held  bool
}

// NewFile opens (or creates) a file-backed credential store at path.
// Signing keys live next to the token file and are generated on first
// use. A token persisted by an earlier run is restored immediately.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create credential dir: %w", err)
	}

	hashKey, blockKey, err := loadOrCreateKeys(path + ".key")
	if err != nil {
		return nil, err
	}

	f := &File{
		path:  path,
		codec: securecookie.New(hashKey, blockKey),
	}
	f.restore()
	return f, nil
}

func (f *File) Set(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	encoded, err := f.codec.Encode(tokenName, token)
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(encoded), 0o600); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}

	f.token = token
	f.held = true
	return nil
}

func (f *File) Get() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.held {
		return "", false
	}
	return f.token, true
}

func (f *File) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.token = ""
	f.held = false

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}

// restore loads a previously persisted token. Any read or decode
// failure leaves the store empty.
func (f *File) restore() {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return
	}

	var token string
	if err := f.codec.Decode(tokenName, string(raw), &token); err != nil {
		return
	}

	f.token = token
	f.held = true
}

// loadOrCreateKeys reads the signing key pair from keyPath, generating
// and persisting a fresh pair on first run.
func loadOrCreateKeys(keyPath string) ([]byte, []byte, error) {
	const hashLen, blockLen = 32, 16

	raw, err := os.ReadFile(keyPath)
	if err == nil && len(raw) == hashLen+blockLen {
		return raw[:hashLen], raw[hashLen:], nil
	}

	hashKey := securecookie.GenerateRandomKey(hashLen)
	blockKey := securecookie.GenerateRandomKey(blockLen)
	if hashKey == nil || blockKey == nil {
		return nil, nil, errors.New("generate credential keys")
	}

	if err := os.WriteFile(keyPath, append(hashKey, blockKey...), 0o600); err != nil {
		return nil, nil, fmt.Errorf("write credential keys: %w", err)
	}
	return hashKey, blockKey, nil
}
