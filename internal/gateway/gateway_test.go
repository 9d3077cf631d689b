package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"linkboard/internal/config"
	"linkboard/internal/creds"
	"linkboard/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, backend http.Handler) (*Client, *creds.Memory, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	store := creds.NewMemory()
	sugarLogger, err := logger.NewLogger()
	require.NoError(t, err)

	conf := config.NewConfig()
	conf.APIBaseURL = srv.URL

	return NewClient(conf, store, sugarLogger), store, srv
}

func TestBearerHeaderInjection(t *testing.T) {
	var gotAuth string
	client, store, _ := newTestClient(t, http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		res.WriteHeader(http.StatusOK)
	}))

	res := client.Get(context.Background(), "/my-urls")
	assert.Equal(t, Success, res.Outcome)
	assert.Empty(t, gotAuth, "no credential held, no header expected")

	require.NoError(t, store.Set("tok-123"))
	res = client.Get(context.Background(), "/my-urls")
	assert.Equal(t, Success, res.Outcome)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClassification(t *testing.T) {
	testCases := []struct {
		name            string
		status          int
		body            string
		expectedOutcome Outcome
		expectedDetail  string
	}{
		{name: "success", status: http.StatusOK, body: `[{"id":1}]`, expectedOutcome: Success},
		{name: "created", status: http.StatusCreated, body: `{"id":2}`, expectedOutcome: Success},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"detail":"Invalid credentials"}`, expectedOutcome: Unauthenticated, expectedDetail: "Invalid credentials"},
		{name: "not found with detail", status: http.StatusNotFound, body: `{"detail":"Link not found or not yours"}`, expectedOutcome: Failure, expectedDetail: "Link not found or not yours"},
		{name: "server error without detail", status: http.StatusInternalServerError, body: `boom`, expectedOutcome: Failure, expectedDetail: ""},
		{name: "forbidden is not a session end", status: http.StatusForbidden, body: `{"detail":"not yours"}`, expectedOutcome: Failure, expectedDetail: "not yours"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, _, _ := newTestClient(t, http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
				res.WriteHeader(tc.status)
				_, _ = res.Write([]byte(tc.body))
			}))

			res := client.Get(context.Background(), "/x")
			require.Equal(t, tc.expectedOutcome, res.Outcome)
			assert.Equal(t, tc.expectedDetail, res.Detail)
			if tc.expectedOutcome == Success {
				assert.Equal(t, tc.body, string(res.Body))
			}
		})
	}
}

func TestUnreachableBackendIsFailure(t *testing.T) {
	client, _, srv := newTestClient(t, http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {}))
	srv.Close()

	res := client.Get(context.Background(), "/my-urls")
	assert.Equal(t, Failure, res.Outcome)
	assert.Empty(t, res.Detail)
	assert.Equal(t, "Could not load links", res.DetailOr("Could not load links"))
}

func TestResultErr(t *testing.T) {
	assert.NoError(t, Result{Outcome: Success}.Err("fallback"))

	err := Result{Outcome: Unauthenticated}.Err("fallback")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	err = Result{Outcome: Failure, Detail: "from server"}.Err("fallback")
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "from server", reqErr.Detail)

	err = Result{Outcome: Failure}.Err("fallback")
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "fallback", reqErr.Detail)
}

func TestPostFormEncoding(t *testing.T) {
	var gotContentType, gotBody string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		gotContentType = req.Header.Get("Content-Type")
		require.NoError(t, req.ParseForm())
		gotBody = req.PostForm.Encode()
		res.WriteHeader(http.StatusOK)
	}))

	form := map[string][]string{"username": {"bob"}, "password": {"hunter2"}}
	res := client.PostForm(context.Background(), "/token", form)
	require.Equal(t, Success, res.Outcome)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "password=hunter2&username=bob", gotBody)
}
