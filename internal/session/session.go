// Package session gates access to protected views.
//
// The guard has two states, authenticated and not, keyed entirely off
// the credential store. Entering a protected view while unauthenticated
// yields ErrNoSession so the caller can redirect; entering while
// authenticated triggers exactly one initial collection fetch, and
// repeated evaluations with an unchanged credential fetch nothing more.
package session

import (
	"context"
	"errors"
	"sync"

	"linkboard/internal/creds"
	"linkboard/internal/gateway"
	"linkboard/internal/links"

	"go.uber.org/zap"
)

// ErrNoSession - no credential is held; the caller must redirect to the
// login flow and must not fetch protected data.
var ErrNoSession = errors.New("no active session")

// Collection is the slice of the link sync the guard drives.
type Collection interface {
	FetchAll(ctx context.Context) error
	Reset()
}

// Guard decides whether a protected view may proceed.
type Guard struct {
	mu         sync.Mutex
	store      creds.Store
	coll       Collection
	sugar      *zap.SugaredLogger
	fetched    bool
	fetchedFor string
}

// NewGuard creates a guard over the given credential store and collection.
func NewGuard(store creds.Store, coll Collection, sugar *zap.SugaredLogger) *Guard {
	return &Guard{
		store: store,
		coll:  coll,
		sugar: sugar,
	}
}

// Authenticated reports whether a credential is currently held.
func (g *Guard) Authenticated() bool {
	_, ok := g.store.Get()
	return ok
}

// Enter evaluates the guard for a protected view. Without a credential
// it returns ErrNoSession. With one, the first entry fetches the
// collection; later entries are no-ops while the fetch has succeeded
// and the credential is the one it was performed for. A replaced
// credential invalidates the fetch, so the previous account's
// collection is never served under a new token.
// An Unauthenticated outcome de-authenticates the session before the
// error is returned. Other fetch failures leave the view stale and
// retryable: the next entry fetches again.
func (g *Guard) Enter(ctx context.Context) error {
	token, ok := g.store.Get()
	if !ok {
		return ErrNoSession
	}

	g.mu.Lock()
	done := g.fetched && g.fetchedFor == token
	g.mu.Unlock()
	if done {
		return nil
	}

	err := g.coll.FetchAll(ctx)
	switch {
	case err == nil:
		g.mu.Lock()
		g.fetched = true
		g.fetchedFor = token
		g.mu.Unlock()
		return nil
	case errors.Is(err, links.ErrInFlight):
		// Another entry already kicked off the initial fetch.
		return nil
	case errors.Is(err, gateway.ErrUnauthenticated):
		g.sugar.Infow("credential rejected, ending session")
		g.Deauthenticate()
		return err
	default:
		return err
	}
}

// Begin starts a fresh session after a completed login. The cached
// collection is dropped and the next entry fetches anew, even when the
// backend re-issued the same token.
func (g *Guard) Begin() {
	g.coll.Reset()

	g.mu.Lock()
	g.fetched = false
	g.fetchedFor = ""
	g.mu.Unlock()
}

// Logout ends the session explicitly.
func (g *Guard) Logout() {
	g.sugar.Infow("logout")
	g.reset()
}

// Deauthenticate ends the session after the backend rejected the
// credential. Any component may call it on ErrUnauthenticated.
func (g *Guard) Deauthenticate() {
	g.reset()
}

func (g *Guard) reset() {
	if err := g.store.Clear(); err != nil {
		g.sugar.Errorw("clear credential", "error", err)
	}
	g.coll.Reset()

	g.mu.Lock()
	g.fetched = false
	g.fetchedFor = ""
	g.mu.Unlock()
}
