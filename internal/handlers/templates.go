package handlers

import (
	"html/template"
	"net/http"

	"linkboard/internal/domain/models"
)

type authView struct {
	Username string
	Error    string
	Notice   string
}

type dashboardView struct {
	Links   []models.Link
	LongURL string
	Error   string
}

type detailsView struct {
	Link models.Link
	// QRSrc is the data URL for the inline QR image. html/template
	// rejects data: URLs unless they are typed as safe.
	QRSrc template.URL
}

type settingsView struct {
	PasswordError   string
	UsernameError   string
	PasswordSuccess bool
	UsernameSuccess bool
	Dwell           int
}

func (con *Controller) render(res http.ResponseWriter, tmpl *template.Template, view any) {
	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(res, view); err != nil {
		con.sugar.Errorf("render %s: %v", tmpl.Name(), err)
	}
}

const pageStyle = `<style>
body{background:#050505;color:#f5f5f7;font-family:sans-serif;max-width:48rem;margin:2rem auto;padding:0 1rem}
input{background:#111;border:1px solid #222;color:#fff;padding:.5rem;border-radius:.5rem;width:100%;box-sizing:border-box}
button{background:#fff;color:#000;font-weight:bold;padding:.5rem 1.5rem;border:0;border-radius:.5rem;cursor:pointer}
a{color:#888}
.card{background:#111;border:1px solid #222;border-radius:1rem;padding:1.25rem;margin:.5rem 0}
.err{color:#f55;font-size:.8rem}
.ok{color:#5f5}
.muted{color:#555;font-size:.8rem}
form.inline{display:inline}
</style>`

var loginTmpl = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html><head><title>Sign in</title>` + pageStyle + `</head><body>
<h1>Welcome back</h1>
<p class="muted">Enter your details to continue</p>
{{if .Error}}<p class="err">{{.Error}}</p>{{end}}
<form method="post" action="/login">
<p><input name="username" placeholder="Username" value="{{.Username}}" required></p>
<p><input name="password" type="password" placeholder="Password" required></p>
<button type="submit">Sign in</button>
</form>
<p class="muted"><a href="/register">Create an account</a> &middot; <a href="/forgot">Forgot password?</a></p>
</body></html>`))

var registerTmpl = template.Must(template.New("register").Parse(`<!DOCTYPE html>
<html><head><title>Register</title>` + pageStyle + `</head><body>
<h1>Create account</h1>
<p class="muted">Enter your details to join</p>
{{if .Error}}<p class="err">{{.Error}}</p>{{end}}
<form method="post" action="/register">
<p><input name="username" placeholder="Username" value="{{.Username}}" required></p>
<p><input name="password" type="password" placeholder="Password" required></p>
<button type="submit">Register</button>
</form>
<p class="muted"><a href="/login">Back to sign in</a></p>
</body></html>`))

var forgotTmpl = template.Must(template.New("forgot").Parse(`<!DOCTYPE html>
<html><head><title>Forgot password</title>` + pageStyle + `</head><body>
<h1>Password recovery</h1>
<p>{{.Notice}}</p>
<p class="muted"><a href="/login">Back to sign in</a></p>
</body></html>`))

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html><head><title>My Links</title>` + pageStyle + `</head><body>
<p style="text-align:right">
<a href="/settings">Settings</a>
<form class="inline" method="post" action="/logout"><button type="submit">Logout</button></form>
</p>
<h1>My Links</h1>
{{if .Error}}<p class="err">{{.Error}}</p>{{end}}
<form method="post" action="/links">
<p><input name="url" placeholder="Paste your long link..." value="{{.LongURL}}"></p>
<button type="submit">Shorten</button>
</form>
{{if not .Links}}<p class="muted">No links yet. Create your first one!</p>{{end}}
{{range .Links}}
<div class="card">
<p><b>{{.ShortKey}}</b> &mdash; {{.Clicks}} clicks</p>
<p class="muted">{{.OriginalURL}}</p>
<p>
<a href="/links/{{.ShortKey}}">Details</a>
<form class="inline" method="post" action="/links/{{.ShortKey}}/delete"><button type="submit">Delete</button></form>
</p>
</div>
{{end}}
</body></html>`))

var detailsTmpl = template.Must(template.New("details").Parse(`<!DOCTYPE html>
<html><head><title>Link details</title>` + pageStyle + `</head><body>
<h1>{{.Link.ShortKey}}</h1>
<div class="card">
<p class="muted">{{.Link.OriginalURL}}</p>
<p><b>{{.Link.Clicks}}</b> clicks</p>
<p class="muted">Created {{.Link.CreatedAt.Format "2006-01-02 15:04"}}</p>
{{if .QRSrc}}
<p><img src="{{.QRSrc}}" alt="QR code" width="160" height="160"></p>
<p><a href="/links/{{.Link.ShortKey}}/qr">Download QR</a></p>
{{else}}
<p class="muted">No QR code for this link.</p>
{{end}}
</div>
<p class="muted"><a href="/">Back</a></p>
</body></html>`))

var settingsTmpl = template.Must(template.New("settings").Parse(`<!DOCTYPE html>
<html><head><title>Settings</title>
{{if or .PasswordSuccess .UsernameSuccess}}<meta http-equiv="refresh" content="{{.Dwell}};url=/settings">{{end}}
` + pageStyle + `</head><body>
<h1>Security Settings</h1>
<div class="card">
{{if .PasswordSuccess}}
<p class="ok">Password Updated!</p>
{{else}}
<form method="post" action="/settings/password">
<p><input name="current_password" type="password" placeholder="Current Password" required></p>
<p><input name="new_password" type="password" placeholder="New Password" required></p>
<p><input name="confirm_password" type="password" placeholder="Confirm New Password" required></p>
{{if .PasswordError}}<p class="err">{{.PasswordError}}</p>{{end}}
<button type="submit">Update Password</button>
</form>
{{end}}
</div>
<div class="card">
{{if .UsernameSuccess}}
<p class="ok">Username updated!</p>
{{else}}
<form method="post" action="/settings/username">
<p><input name="current_username" placeholder="Current username" required></p>
<p><input name="new_username" placeholder="New username" required></p>
{{if .UsernameError}}<p class="err">{{.UsernameError}}</p>{{end}}
<button type="submit">Update Username</button>
</form>
{{end}}
</div>
<p class="muted"><a href="/">Back</a></p>
</body></html>`))
