// Package handlers serves the dashboard views and maps form submissions
// onto the sync core. All session decisions are delegated to the guard;
// all backend calls happen below the gateway.
package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"linkboard/internal/account"
	"linkboard/internal/authflow"
	"linkboard/internal/config"
	"linkboard/internal/gateway"
	"linkboard/internal/links"
	"linkboard/internal/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Controller wires the dashboard views to the sync core.
type Controller struct {
	conf    *config.Config
	guard   *session.Guard
	sync    *links.Sync
	auth    *authflow.Service
	pwFlow  *account.PasswordFlow
	usrFlow *account.UsernameFlow
	ui      *uiSession
	sugar   *zap.SugaredLogger
}

// NewController creates the dashboard controller.
func NewController(conf *config.Config, guard *session.Guard, sync *links.Sync,
	auth *authflow.Service, pwFlow *account.PasswordFlow, usrFlow *account.UsernameFlow,
	sugar *zap.SugaredLogger) *Controller {
	return &Controller{
		conf:    conf,
		guard:   guard,
		sync:    sync,
		auth:    auth,
		pwFlow:  pwFlow,
		usrFlow: usrFlow,
		ui:      newUISession(),
		sugar:   sugar,
	}
}

// failureMessage maps an operation error to the user-visible notification.
// Validation and in-flight rejections carry their own text; a RequestError
// carries the server detail or the operation's fallback.
func failureMessage(err error) string {
	var reqErr *gateway.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Detail
	}
	return err.Error()
}

// deauthenticated handles the one condition allowed to cross component
// boundaries: the backend rejected the credential mid-session.
func (con *Controller) deauthenticated(res http.ResponseWriter, req *http.Request) {
	con.guard.Deauthenticate()
	con.ui.drop(res)
	http.Redirect(res, req, "/login", http.StatusSeeOther)
}

// LoginPage renders the login form. An already authenticated visitor is
// sent straight to the dashboard.
func (con *Controller) LoginPage() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		if con.guard.Authenticated() {
			http.Redirect(res, req, "/", http.StatusSeeOther)
			return
		}
		con.render(res, loginTmpl, authView{})
	}
}

// LoginSubmit runs the login entry flow, starts a fresh session and
// opens the UI session.
func (con *Controller) LoginSubmit() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		username := req.FormValue("username")
		password := req.FormValue("password")

		if err := con.auth.Login(req.Context(), username, password); err != nil {
			con.render(res, loginTmpl, authView{Username: username, Error: failureMessage(err)})
			return
		}

		con.guard.Begin()
		con.ui.open(res, con.sugar)
		http.Redirect(res, req, "/", http.StatusSeeOther)
	}
}

// RegisterPage renders the registration form.
func (con *Controller) RegisterPage() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		if con.guard.Authenticated() {
			http.Redirect(res, req, "/", http.StatusSeeOther)
			return
		}
		con.render(res, registerTmpl, authView{})
	}
}

// RegisterSubmit runs the register entry flow and sends the new account
// to the login page.
func (con *Controller) RegisterSubmit() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		username := req.FormValue("username")
		password := req.FormValue("password")

		if err := con.auth.Register(req.Context(), username, password); err != nil {
			con.render(res, registerTmpl, authView{Username: username, Error: failureMessage(err)})
			return
		}

		http.Redirect(res, req, "/login", http.StatusSeeOther)
	}
}

// ForgotPassword renders the recovery guidance.
func (con *Controller) ForgotPassword() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		con.render(res, forgotTmpl, authView{Notice: con.auth.ForgotPassword()})
	}
}

// Logout ends the session explicitly.
func (con *Controller) Logout() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		con.guard.Logout()
		con.ui.drop(res)
		http.Redirect(res, req, "/login", http.StatusSeeOther)
	}
}

// Dashboard renders the link collection.
func (con *Controller) Dashboard() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		con.render(res, dashboardTmpl, dashboardView{
			Links: con.sync.Links(),
			Error: flashFrom(req.Context()),
		})
	}
}

// ShortenLink submits a new URL. On failure the collection is untouched
// and the submitted value is kept in the input for retry; success goes
// through a redirect, which clears it.
func (con *Controller) ShortenLink() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		target := req.FormValue("url")

		_, err := con.sync.Create(req.Context(), target)
		switch {
		case err == nil, errors.Is(err, links.ErrEmptyURL):
			http.Redirect(res, req, "/", http.StatusSeeOther)
		case errors.Is(err, gateway.ErrUnauthenticated):
			con.deauthenticated(res, req)
		default:
			con.render(res, dashboardTmpl, dashboardView{
				Links:   con.sync.Links(),
				LongURL: target,
				Error:   failureMessage(err),
			})
		}
	}
}

// DeleteLink removes a link after the backend confirms.
func (con *Controller) DeleteLink() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		shortKey := chi.URLParam(req, "shortKey")

		err := con.sync.Delete(req.Context(), shortKey)
		switch {
		case err == nil:
			http.Redirect(res, req, "/", http.StatusSeeOther)
		case errors.Is(err, gateway.ErrUnauthenticated):
			con.deauthenticated(res, req)
		default:
			con.render(res, dashboardTmpl, dashboardView{
				Links: con.sync.Links(),
				Error: failureMessage(err),
			})
		}
	}
}

// LinkDetails renders the stats view for one link.
func (con *Controller) LinkDetails() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		shortKey := chi.URLParam(req, "shortKey")

		link, err := con.sync.Details(req.Context(), shortKey)
		switch {
		case err == nil:
			view := detailsView{Link: link}
			if strings.HasPrefix(link.QRCode, "data:image/") {
				view.QRSrc = template.URL(link.QRCode)
			}
			con.render(res, detailsTmpl, view)
		case errors.Is(err, gateway.ErrUnauthenticated):
			con.deauthenticated(res, req)
		default:
			con.render(res, dashboardTmpl, dashboardView{
				Links: con.sync.Links(),
				Error: failureMessage(err),
			})
		}
	}
}

// LinkQR serves the link's QR code as a PNG download. The payload is the
// base64 data URL the backend stores verbatim.
func (con *Controller) LinkQR() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		shortKey := chi.URLParam(req, "shortKey")

		var encoded string
		for _, l := range con.sync.Links() {
			if l.ShortKey == shortKey {
				encoded = l.QRCode
				break
			}
		}
		if encoded == "" {
			link, err := con.sync.Details(req.Context(), shortKey)
			if errors.Is(err, gateway.ErrUnauthenticated) {
				con.deauthenticated(res, req)
				return
			}
			if err != nil {
				http.Error(res, failureMessage(err), http.StatusNotFound)
				return
			}
			encoded = link.QRCode
		}

		if i := strings.Index(encoded, "base64,"); i >= 0 {
			encoded = encoded[i+len("base64,"):]
		}
		png, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil || len(png) == 0 {
			http.Error(res, "no QR code for this link", http.StatusNotFound)
			return
		}

		res.Header().Set("Content-Type", "image/png")
		res.Header().Set("Content-Disposition", `attachment; filename="qr-`+shortKey+`.png"`)
		if _, err := res.Write(png); err != nil {
			con.sugar.Errorf("write QR response: %v", err)
		}
	}
}

// SettingsPage renders the account mutation flows.
func (con *Controller) SettingsPage() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		con.renderSettings(res, settingsView{})
	}
}

// ChangePassword submits the password mutation flow.
func (con *Controller) ChangePassword() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		err := con.pwFlow.Submit(req.Context(),
			req.FormValue("current_password"),
			req.FormValue("new_password"),
			req.FormValue("confirm_password"),
		)
		switch {
		case err == nil:
			con.renderSettings(res, settingsView{})
		case errors.Is(err, gateway.ErrUnauthenticated):
			con.deauthenticated(res, req)
		default:
			con.renderSettings(res, settingsView{PasswordError: failureMessage(err)})
		}
	}
}

// ChangeUsername submits the username mutation flow.
func (con *Controller) ChangeUsername() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		err := con.usrFlow.Submit(req.Context(),
			req.FormValue("current_username"),
			req.FormValue("new_username"),
		)
		switch {
		case err == nil:
			con.renderSettings(res, settingsView{})
		case errors.Is(err, gateway.ErrUnauthenticated):
			con.deauthenticated(res, req)
		default:
			con.renderSettings(res, settingsView{UsernameError: failureMessage(err)})
		}
	}
}

func (con *Controller) renderSettings(res http.ResponseWriter, view settingsView) {
	view.PasswordSuccess = con.pwFlow.Succeeded()
	view.UsernameSuccess = con.usrFlow.Succeeded()
	view.Dwell = con.conf.SuccessDwell
	con.render(res, settingsTmpl, view)
}

type flashKey struct{}

// withFlash stashes a notification for the view being rendered.
func withFlash(ctx context.Context, msg string) context.Context {
	return context.WithValue(ctx, flashKey{}, msg)
}

func flashFrom(ctx context.Context) string {
	msg, _ := ctx.Value(flashKey{}).(string)
	return msg
}
