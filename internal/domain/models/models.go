// Package models describes the wire shapes of the shortener backend API.
package models

import (
	"fmt"
	"strings"
	"time"
)

// APITime wraps time.Time to accept the backend's timestamp format.
// The backend serializes naive datetimes without a zone suffix, which
// the default RFC 3339 decoding rejects.
type APITime struct {
	time.Time
}

const naiveLayout = "2006-01-02T15:04:05.999999999"

// UnmarshalJSON decodes an RFC 3339 timestamp, falling back to the
// zone-less layout the backend emits. Naive values are taken as UTC.
func (t *APITime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		t.Time = time.Time{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.Parse(naiveLayout, s)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	t.Time = parsed.UTC()
	return nil
}

// MarshalJSON encodes the timestamp as RFC 3339.
func (t APITime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(time.RFC3339Nano) + `"`), nil
}

// Link - a single shortened link owned by the authenticated account.
// The server is authoritative for Clicks; the client never counts locally.
type Link struct {
	ID          int64   `json:"id"`
	ShortKey    string  `json:"short_key"`
	OriginalURL string  `json:"original_url,omitempty"`
	FullURL     string  `json:"full_url,omitempty"`
	Clicks      int64   `json:"clicks"`
	CreatedAt   APITime `json:"created_at"`
	QRCode      string  `json:"qr_code,omitempty"`
}

// Target returns the long URL regardless of which field name the server
// used. Deployed backends emit full_url; the documented name is original_url.
func (l Link) Target() string {
	if l.OriginalURL != "" {
		return l.OriginalURL
	}
	return l.FullURL
}

// Normalize copies the target URL into OriginalURL so callers can rely
// on a single field after decoding.
func (l *Link) Normalize() {
	if l.OriginalURL == "" {
		l.OriginalURL = l.FullURL
	}
}

// TokenResponse - success payload of POST /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// RegisterRequest - body of POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ShortenRequest - body of POST /shorten.
type ShortenRequest struct {
	TargetURL string `json:"target_url"`
}

// PasswordChangeRequest - body of POST /user/change-password.
type PasswordChangeRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// UsernameChangeRequest - body of POST /user/change-username.
type UsernameChangeRequest struct {
	OldUsername string `json:"old_username"`
	NewUsername string `json:"new_username"`
}
