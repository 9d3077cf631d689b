// Package links owns the in-memory collection of the account's links and
// keeps it consistent with the backend.
//
// The collection is mutated only here, and only after the backend has
// confirmed an operation. Nothing is inserted or removed ahead of
// confirmation, so there is no rollback path. Each operation kind has
// its own in-flight flag: a second call of the same kind is rejected
// immediately rather than queued.
package links

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"

	"linkboard/internal/domain/models"
	"linkboard/internal/gateway"

	"go.uber.org/zap"
)

// ErrInFlight - an operation of the same kind is still outstanding.
var ErrInFlight = errors.New("operation already in flight")

// ErrEmptyURL - create was invoked with nothing to shorten. No request
// is issued for it.
var ErrEmptyURL = errors.New("empty URL")

type opKind int

const (
	opFetch opKind = iota
	opCreate
	opDelete
	opDetails
)

// Sync reconciles the local link collection against the backend.
type Sync struct {
	mu      sync.Mutex
	gw      gateway.Gateway
	sugar   *zap.SugaredLogger
	links   []models.Link
	pending map[opKind]bool
}

// NewSync creates an empty collection bound to the given gateway.
func NewSync(gw gateway.Gateway, sugar *zap.SugaredLogger) *Sync {
	return &Sync{
		gw:      gw,
		sugar:   sugar,
		pending: make(map[opKind]bool),
	}
}

// begin marks op as in flight, or reports ErrInFlight if it already is.
func (s *Sync) begin(op opKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending[op] {
		return ErrInFlight
	}
	s.pending[op] = true
	return nil
}

// finish clears the in-flight flag. Runs on every completion path,
// including the unauthenticated one.
func (s *Sync) finish(op opKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[op] = false
}

// FetchAll replaces the whole collection with the server's content and
// ordering. On failure the prior collection is left untouched; the
// condition is retryable. When a create resolves while a fetch is in
// flight, whichever lands second owns the collection (last fetch wins).
func (s *Sync) FetchAll(ctx context.Context) error {
	if err := s.begin(opFetch); err != nil {
		return err
	}
	defer s.finish(opFetch)

	res := s.gw.Get(ctx, "/my-urls")
	if err := res.Err("Could not load links"); err != nil {
		return err
	}

	var fetched []models.Link
	if err := json.Unmarshal(res.Body, &fetched); err != nil {
		s.sugar.Errorw("decode link list", "error", err)
		return &gateway.RequestError{Detail: "Could not load links"}
	}
	for i := range fetched {
		fetched[i].Normalize()
	}

	s.mu.Lock()
	s.links = fetched
	s.mu.Unlock()

	return nil
}

// Create shortens target and prepends the resulting link, establishing
// newest-first order regardless of server timestamps. An empty target
// issues no request. On failure the collection is unchanged and the
// caller keeps the input for retry.
func (s *Sync) Create(ctx context.Context, target string) (models.Link, error) {
	if target == "" {
		return models.Link{}, ErrEmptyURL
	}

	if err := s.begin(opCreate); err != nil {
		return models.Link{}, err
	}
	defer s.finish(opCreate)

	res := s.gw.PostJSON(ctx, "/shorten", models.ShortenRequest{TargetURL: target})
	if err := res.Err("Failed to shorten link"); err != nil {
		return models.Link{}, err
	}

	var link models.Link
	if err := json.Unmarshal(res.Body, &link); err != nil {
		s.sugar.Errorw("decode created link", "error", err)
		return models.Link{}, &gateway.RequestError{Detail: "Failed to shorten link"}
	}
	link.Normalize()

	s.mu.Lock()
	s.links = append([]models.Link{link}, s.links...)
	s.mu.Unlock()

	return link, nil
}

// Delete removes the link with the given short key. The local entry goes
// away only after the backend confirms; removal filters by key equality
// so duplicates, were the uniqueness invariant ever violated, all go.
func (s *Sync) Delete(ctx context.Context, shortKey string) error {
	if err := s.begin(opDelete); err != nil {
		return err
	}
	defer s.finish(opDelete)

	res := s.gw.Delete(ctx, "/my-urls/"+url.PathEscape(shortKey))
	if err := res.Err("Could not delete"); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.links[:0:0]
	for _, l := range s.links {
		if l.ShortKey != shortKey {
			kept = append(kept, l)
		}
	}
	s.links = kept
	s.mu.Unlock()

	return nil
}

// Details fetches the full record for one link, including click count
// and QR payload. The cached entry is refreshed in place when it still
// exists; a late resolution after the entry is gone mutates nothing.
func (s *Sync) Details(ctx context.Context, shortKey string) (models.Link, error) {
	if err := s.begin(opDetails); err != nil {
		return models.Link{}, err
	}
	defer s.finish(opDetails)

	res := s.gw.Get(ctx, "/my-urls/"+url.PathEscape(shortKey))
	if err := res.Err("Could not load link details"); err != nil {
		return models.Link{}, err
	}

	var link models.Link
	if err := json.Unmarshal(res.Body, &link); err != nil {
		s.sugar.Errorw("decode link details", "error", err)
		return models.Link{}, &gateway.RequestError{Detail: "Could not load link details"}
	}
	link.Normalize()

	s.mu.Lock()
	for i := range s.links {
		if s.links[i].ShortKey == link.ShortKey {
			s.links[i] = link
		}
	}
	s.mu.Unlock()

	return link, nil
}

// Links returns a snapshot of the collection, newest first.
func (s *Sync) Links() []models.Link {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]models.Link, len(s.links))
	copy(snapshot, s.links)
	return snapshot
}

// Reset drops the collection. Used when the session ends; the next
// guard entry re-fetches from scratch.
func (s *Sync) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.links = nil
}
