// Package account implements the password and username change flows.
//
// Each flow is a short-lived sub-session layered over the same
// authentication gate as everything else: validate locally, submit once,
// show a transient success state, then close itself. A failed submit
// leaves the flow open for retry, and the in-flight flag clears on every
// path so the control re-enables.
package account

import (
	"context"
	"errors"
	"sync"
	"time"

	"linkboard/internal/domain/models"
	"linkboard/internal/gateway"

	"go.uber.org/zap"
)

// ErrInFlight - a submit of this flow is still outstanding.
var ErrInFlight = errors.New("operation already in flight")

// ErrPasswordMismatch - new and confirmation passwords differ. Detected
// locally, never reaches the network.
var ErrPasswordMismatch = errors.New("new passwords do not match")

// ErrSameUsername - new username equals the current one. Detected
// locally, never reaches the network.
var ErrSameUsername = errors.New("new username must be different")

// flow holds the request/response/confirmation cycle shared by both
// mutations.
type flow struct {
	mu      sync.Mutex
	gw      gateway.Gateway
	sugar   *zap.SugaredLogger
	dwell   time.Duration
	onClose func()
	pending bool
	success bool
	gen     int
}

// Pending reports whether a submit is outstanding.
func (f *flow) Pending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending
}

// Succeeded reports whether the flow is in its transient success state.
func (f *flow) Succeeded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.success
}

// Close dismisses the flow. It also invalidates any outstanding dwell
// timer, so a flow reopened later is not closed by a stale one.
func (f *flow) Close() {
	f.mu.Lock()
	f.gen++
	f.success = false
	f.mu.Unlock()
}

func (f *flow) submit(ctx context.Context, path string, payload any, fallback string) error {
	f.mu.Lock()
	if f.pending {
		f.mu.Unlock()
		return ErrInFlight
	}
	f.pending = true
	f.mu.Unlock()

	res := f.gw.PostJSON(ctx, path, payload)

	f.mu.Lock()
	f.pending = false
	if err := res.Err(fallback); err != nil {
		f.mu.Unlock()
		return err
	}
	f.success = true
	f.gen++
	gen := f.gen
	f.mu.Unlock()

	f.sugar.Infow("account mutation applied", "path", path)

	time.AfterFunc(f.dwell, func() {
		f.autoClose(gen)
	})
	return nil
}

// autoClose ends the success display unless the flow was closed or
// resubmitted since the timer was armed.
func (f *flow) autoClose(gen int) {
	f.mu.Lock()
	if f.gen != gen {
		f.mu.Unlock()
		return
	}
	f.success = false
	cb := f.onClose
	f.mu.Unlock()

	if cb != nil {
		cb()
	}
}

// PasswordFlow changes the account password.
type PasswordFlow struct {
	flow
}

// NewPasswordFlow creates a password change flow. The success state is
// held for dwell before onClose (optional) fires.
func NewPasswordFlow(gw gateway.Gateway, sugar *zap.SugaredLogger, dwell time.Duration, onClose func()) *PasswordFlow {
	return &PasswordFlow{flow{gw: gw, sugar: sugar, dwell: dwell, onClose: onClose}}
}

// Submit validates and issues the change. Mismatched new/confirm values
// fail locally without a request.
func (f *PasswordFlow) Submit(ctx context.Context, oldPassword, newPassword, confirm string) error {
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	return f.submit(ctx, "/user/change-password",
		models.PasswordChangeRequest{OldPassword: oldPassword, NewPassword: newPassword},
		"Failed to update password")
}

// UsernameFlow changes the account username.
type UsernameFlow struct {
	flow
}

// NewUsernameFlow creates a username change flow.
func NewUsernameFlow(gw gateway.Gateway, sugar *zap.SugaredLogger, dwell time.Duration, onClose func()) *UsernameFlow {
	return &UsernameFlow{flow{gw: gw, sugar: sugar, dwell: dwell, onClose: onClose}}
}

// Submit validates and issues the change. An unchanged username fails
// locally without a request.
func (f *UsernameFlow) Submit(ctx context.Context, oldUsername, newUsername string) error {
	if oldUsername == newUsername {
		return ErrSameUsername
	}
	return f.submit(ctx, "/user/change-username",
		models.UsernameChangeRequest{OldUsername: oldUsername, NewUsername: newUsername},
		"Failed to update username")
}
