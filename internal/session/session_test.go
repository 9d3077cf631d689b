package session

import (
	"context"
	"testing"

	"linkboard/internal/creds"
	"linkboard/internal/gateway"
	"linkboard/internal/links"
	"linkboard/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCollection struct {
	fetches int
	resets  int
	err     error
}

func (f *fakeCollection) FetchAll(_ context.Context) error {
	f.fetches++
	return f.err
}

func (f *fakeCollection) Reset() {
	f.resets++
}

func prepare(t *testing.T) (*creds.Memory, *fakeCollection, *Guard) {
	t.Helper()

	sugarLogger, err := logger.NewLogger()
	require.NoError(t, err)

	store := creds.NewMemory()
	coll := &fakeCollection{}
	return store, coll, NewGuard(store, coll, sugarLogger)
}

func TestEnterWithoutCredential(t *testing.T) {
	_, coll, guard := prepare(t)

	err := guard.Enter(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Zero(t, coll.fetches, "no data fetch may happen before login")
}

func TestEnterFetchesExactlyOnce(t *testing.T) {
	store, coll, guard := prepare(t)
	require.NoError(t, store.Set("tok"))

	require.NoError(t, guard.Enter(context.Background()))
	require.NoError(t, guard.Enter(context.Background()))
	require.NoError(t, guard.Enter(context.Background()))

	assert.Equal(t, 1, coll.fetches, "repeated evaluations must not duplicate the fetch")
}

func TestEnterRetriesAfterNonFatalFailure(t *testing.T) {
	store, coll, guard := prepare(t)
	require.NoError(t, store.Set("tok"))

	coll.err = &gateway.RequestError{Detail: "Could not load links"}
	assert.Error(t, guard.Enter(context.Background()))
	assert.Equal(t, 1, coll.fetches)

	coll.err = nil
	require.NoError(t, guard.Enter(context.Background()))
	assert.Equal(t, 2, coll.fetches, "a failed initial fetch is retryable")

	require.NoError(t, guard.Enter(context.Background()))
	assert.Equal(t, 2, coll.fetches)
}

func TestEnterTreatsInFlightFetchAsStarted(t *testing.T) {
	store, coll, guard := prepare(t)
	require.NoError(t, store.Set("tok"))

	coll.err = links.ErrInFlight
	assert.NoError(t, guard.Enter(context.Background()))
}

func TestCredentialChangeTriggersFreshFetch(t *testing.T) {
	store, coll, guard := prepare(t)
	require.NoError(t, store.Set("tok"))
	require.NoError(t, guard.Enter(context.Background()))
	require.Equal(t, 1, coll.fetches)

	// A replaced credential must not be served the previous account's
	// collection.
	require.NoError(t, store.Set("tok2"))
	require.NoError(t, guard.Enter(context.Background()))
	assert.Equal(t, 2, coll.fetches)

	require.NoError(t, guard.Enter(context.Background()))
	assert.Equal(t, 2, coll.fetches, "unchanged credential fetches nothing more")
}

func TestBeginStartsFreshSession(t *testing.T) {
	store, coll, guard := prepare(t)
	require.NoError(t, store.Set("tok"))
	require.NoError(t, guard.Enter(context.Background()))

	// A completed login starts a fresh session even when the backend
	// re-issued the very same token.
	guard.Begin()
	assert.Equal(t, 1, coll.resets)

	require.NoError(t, guard.Enter(context.Background()))
	assert.Equal(t, 2, coll.fetches)
}

func TestUnauthenticatedEndsSession(t *testing.T) {
	store, coll, guard := prepare(t)
	require.NoError(t, store.Set("tok"))

	coll.err = gateway.ErrUnauthenticated
	err := guard.Enter(context.Background())
	assert.ErrorIs(t, err, gateway.ErrUnauthenticated)

	_, held := store.Get()
	assert.False(t, held, "credential must be cleared")
	assert.Equal(t, 1, coll.resets)
	assert.False(t, guard.Authenticated())

	err = guard.Enter(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Equal(t, 1, coll.fetches, "no further fetch once de-authenticated")
}

func TestLogout(t *testing.T) {
	store, coll, guard := prepare(t)
	require.NoError(t, store.Set("tok"))
	require.NoError(t, guard.Enter(context.Background()))

	guard.Logout()

	assert.False(t, guard.Authenticated())
	assert.Equal(t, 1, coll.resets)

	// A new login starts a fresh session with its own initial fetch.
	require.NoError(t, store.Set("tok2"))
	require.NoError(t, guard.Enter(context.Background()))
	assert.Equal(t, 2, coll.fetches)
}
