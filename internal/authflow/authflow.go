// Package authflow implements the entry flows that produce or discard
// the session credential: login, register and forgot-password.
package authflow

import (
	"context"
	"encoding/json"
	"net/url"

	"linkboard/internal/creds"
	"linkboard/internal/domain/models"
	"linkboard/internal/gateway"

	"go.uber.org/zap"
)

// Service drives the auth entry flows.
type Service struct {
	gw    gateway.Gateway
	store creds.Store
	sugar *zap.SugaredLogger
}

// NewService creates the auth entry service.
func NewService(gw gateway.Gateway, store creds.Store, sugar *zap.SugaredLogger) *Service {
	return &Service{gw: gw, store: store, sugar: sugar}
}

// Login exchanges the credentials for a bearer token and stores it.
// A 401 here means the credentials were wrong, not that a session
// expired, so it surfaces as a plain failure rather than de-auth.
func (s *Service) Login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	res := s.gw.PostForm(ctx, "/token", form)
	if res.Outcome != gateway.Success {
		return &gateway.RequestError{Detail: res.DetailOr("Invalid login or password")}
	}

	var token models.TokenResponse
	if err := json.Unmarshal(res.Body, &token); err != nil || token.AccessToken == "" {
		s.sugar.Errorw("decode token response", "error", err)
		return &gateway.RequestError{Detail: "Invalid login or password"}
	}

	if err := s.store.Set(token.AccessToken); err != nil {
		s.sugar.Errorw("persist credential", "error", err)
		return &gateway.RequestError{Detail: "Could not store session"}
	}

	s.sugar.Infow("login", "username", username)
	return nil
}

// Register creates an account. It does not log the user in; the caller
// sends them to the login flow afterwards.
func (s *Service) Register(ctx context.Context, username, password string) error {
	res := s.gw.PostJSON(ctx, "/register",
		models.RegisterRequest{Username: username, Password: password})
	if res.Outcome != gateway.Success {
		return &gateway.RequestError{Detail: res.DetailOr("Registration failed")}
	}

	s.sugar.Infow("registered", "username", username)
	return nil
}

// ForgotPassword returns the recovery guidance. The backend exposes no
// reset endpoint; recovery happens out of band.
func (s *Service) ForgotPassword() string {
	return "Password reset is handled outside the dashboard. Contact the service operator to recover your account."
}
