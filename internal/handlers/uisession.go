package handlers

import (
	"net/http"

	"github.com/9ssi7/nanoid"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

const uiCookieName = "linkboard_session"

// uiSession marks the browser session with a signed cookie so log lines
// can be correlated. It carries no authority: access is decided by the
// credential store alone.
type uiSession struct {
	codec *securecookie.SecureCookie
}

func newUISession() *uiSession {
	hashKey := securecookie.GenerateRandomKey(32)
	blockKey := securecookie.GenerateRandomKey(16)
	return &uiSession{codec: securecookie.New(hashKey, blockKey)}
}

// open mints a fresh session id and sets the cookie.
func (u *uiSession) open(res http.ResponseWriter, sugar *zap.SugaredLogger) {
	id, err := nanoid.New()
	if err != nil {
		sugar.Errorf("mint session id: %v", err)
		return
	}

	encoded, err := u.codec.Encode(uiCookieName, id)
	if err != nil {
		sugar.Errorf("encode session cookie: %v", err)
		return
	}

	http.SetCookie(res, &http.Cookie{
		Name:     uiCookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
	})
}

// drop expires the cookie.
func (u *uiSession) drop(res http.ResponseWriter) {
	http.SetCookie(res, &http.Cookie{
		Name:   uiCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

// idFrom returns the session id carried by the request, or empty.
func (u *uiSession) idFrom(req *http.Request) string {
	cookie, err := req.Cookie(uiCookieName)
	if err != nil {
		return ""
	}

	var id string
	if err := u.codec.Decode(uiCookieName, cookie.Value, &id); err != nil {
		return ""
	}
	return id
}
