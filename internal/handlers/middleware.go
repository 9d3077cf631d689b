package handlers

import (
	"errors"
	"net/http"
	"time"

	"linkboard/internal/gateway"
	"linkboard/internal/session"
)

type (
	responseData struct {
		status int
		size   int
	}

	loggingResponseWriter struct {
		http.ResponseWriter
		responseData *responseData
	}
)

func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// LoggingMiddleware logs every dashboard request with its status and size.
func (con *Controller) LoggingMiddleware(h http.Handler) http.Handler {
	logFn := func(res http.ResponseWriter, req *http.Request) {
		start := time.Now()

		responseData := &responseData{}
		lw := loggingResponseWriter{
			ResponseWriter: res,
			responseData:   responseData,
		}
		h.ServeHTTP(&lw, req)

		con.sugar.Infoln(
			"uri", req.RequestURI,
			"method", req.Method,
			"status", responseData.status,
			"size", responseData.size,
			"duration", time.Since(start),
			"session", con.ui.idFrom(req),
		)
	}

	return http.HandlerFunc(logFn)
}

// PanicRecoveryMiddleware converts a handler panic into a 500.
func (con *Controller) PanicRecoveryMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				con.sugar.Errorw("panic in handler", "uri", req.RequestURI, "panic", p)
				http.Error(res, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		h.ServeHTTP(res, req)
	})
}

// RequireSession is the protected-view gate. Without a session it
// redirects to the login flow and lets no data fetch happen. With one it
// runs the guard's single initial fetch; a fetch failure that is not an
// auth rejection leaves the view stale but rendered, with the failure
// surfaced as a notification.
func (con *Controller) RequireSession(h http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		err := con.guard.Enter(req.Context())
		switch {
		case err == nil:
			h.ServeHTTP(res, req)
		case errors.Is(err, session.ErrNoSession):
			http.Redirect(res, req, "/login", http.StatusSeeOther)
		case errors.Is(err, gateway.ErrUnauthenticated):
			con.ui.drop(res)
			http.Redirect(res, req, "/login", http.StatusSeeOther)
		default:
			req = req.WithContext(withFlash(req.Context(), failureMessage(err)))
			h.ServeHTTP(res, req)
		}
	})
}
