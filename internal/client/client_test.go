package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := New(srv.URL)
	require.NoError(t, err)
	return c
}

// login primes the cookie jar through a response carrying session and CSRF cookies.
func login(t *testing.T, c *Client) {
	t.Helper()
	require.NoError(t, c.Post(context.Background(), "/auth/login", map[string]string{
		"username": "admin",
		"password": "secret",
	}, nil))
}

func authHandler(sessionValue, csrfValue string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: sessionValue, HttpOnly: true, Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: "csrf_token", Value: csrfValue, Path: "/"})
		w.WriteHeader(http.StatusOK)
	}
}

// ---------- CSRF ----------

func TestCSRFHeader_MutatingRequests(t *testing.T) {
	headers := make(map[string]string)
	var mu sync.Mutex

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", authHandler("s1", "csrf-abc"))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		headers[r.Method] = r.Header.Get("x-csrf-token")
		mu.Unlock()
		w.Write([]byte(`{"success":true}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv)
	login(t, c)

	ctx := context.Background()
	require.NoError(t, c.Get(ctx, "/projects", nil))
	require.NoError(t, c.Post(ctx, "/projects", map[string]string{"name": "x"}, nil))
	require.NoError(t, c.Put(ctx, "/projects/p1", map[string]string{"name": "y"}, nil))
	require.NoError(t, c.Patch(ctx, "/projects/p1", map[string]string{"name": "z"}, nil))
	require.NoError(t, c.Delete(ctx, "/projects/p1", nil))

	assert.Empty(t, headers[http.MethodGet], "GET must not carry the CSRF header")
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		assert.Equal(t, "csrf-abc", headers[method], "%s must echo the csrf_token cookie", method)
	}
}

func TestCSRFHeader_AbsentWithoutCookie(t *testing.T) {
	var header atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		header.Store(r.Header.Get("x-csrf-token"))
		w.Write([]byte(`{"success":true}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv)
	require.NoError(t, c.Post(context.Background(), "/projects", map[string]string{"name": "x"}, nil))
	assert.Empty(t, header.Load())
}

// ---------- 401 refresh ----------

func TestRefresh_RetriesOriginalOnce(t *testing.T) {
	var refreshCalls, projectCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", authHandler("expired", "csrf-abc"))
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		authHandler("fresh", "csrf-abc")(w, r)
	})
	mux.HandleFunc("/projects", func(w http.ResponseWriter, r *http.Request) {
		projectCalls.Add(1)
		session, err := r.Cookie("session")
		if err != nil || session.Value != "fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"error":{"code":"UNAUTHORIZED","message":"session expired"}}`))
			return
		}
		w.Write([]byte(`{"success":true,"data":[]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv)
	login(t, c)

	require.NoError(t, c.Get(context.Background(), "/projects", nil))
	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, int32(2), projectCalls.Load(), "original request retried exactly once")
}

func TestRefresh_SingleFlight(t *testing.T) {
	var refreshCalls atomic.Int32
	refreshStarted := make(chan struct{})
	releaseRefresh := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", authHandler("expired", "csrf-abc"))
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		if refreshCalls.Add(1) == 1 {
			close(refreshStarted)
			<-releaseRefresh
		}
		authHandler("fresh", "csrf-abc")(w, r)
	})
	unauthorized := func(w http.ResponseWriter, r *http.Request) {
		session, err := r.Cookie("session")
		if err != nil || session.Value != "fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"error":{"code":"UNAUTHORIZED","message":"session expired"}}`))
			return
		}
		w.Write([]byte(`{"success":true,"data":[]}`))
	}
	mux.HandleFunc("/projects", unauthorized)
	mux.HandleFunc("/databases", unauthorized)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv)
	login(t, c)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- c.Get(context.Background(), "/databases", nil)
	}()

	// Wait until the first request holds the refresh lock, then issue the
	// second: it must fail fast with its original 401.
	<-refreshStarted
	err := c.Get(context.Background(), "/projects", nil)
	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	close(releaseRefresh)
	require.NoError(t, <-firstDone)

	assert.Equal(t, int32(1), refreshCalls.Load(), "only one refresh may be issued")
}

func TestRefresh_FailurePropagatesOriginalError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"error":{"code":"REFRESH_EXPIRED","message":"refresh token expired"}}`))
	})
	mux.HandleFunc("/projects", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"error":{"code":"UNAUTHORIZED","message":"session expired"}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv)

	err := c.Get(context.Background(), "/projects", nil)
	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "session expired", apiErr.Message)
}

func TestRefresh_SkippedForAuthEndpoints(t *testing.T) {
	var refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"error":{"code":"UNAUTHORIZED","message":"not logged in"}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv)

	err := c.Get(context.Background(), "/auth/me", nil)
	require.Error(t, err)
	assert.Zero(t, refreshCalls.Load(), "401 on /auth/* must not trigger a refresh")
}

// ---------- error normalization ----------

func TestNormalizeError_MessagePriority(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"structured error message", `{"success":false,"error":{"code":"NOT_FOUND","message":"project not found"}}`, "project not found"},
		{"generic message field", `{"message":"quota exceeded"}`, "quota exceeded"},
		{"plain text body", `upstream timeout`, "upstream timeout"},
		{"empty body falls back to status text", ``, "Bad Request"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := newTestClient(t, srv)
			err := c.Get(context.Background(), "/projects", nil)
			require.Error(t, err)

			apiErr, ok := AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tc.want, apiErr.Message)
			assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		})
	}
}

func TestTransportError(t *testing.T) {
	c, err := New("http://127.0.0.1:1")
	require.NoError(t, err)
	c.hc.Timeout = 500 * time.Millisecond

	err = c.Get(context.Background(), "/projects", nil)
	require.Error(t, err)
	_, ok := AsAPIError(err)
	assert.False(t, ok, "transport errors are not APIErrors")
	assert.Contains(t, err.Error(), "panel API unreachable")
}

func TestDecodeResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":"p1","name":"blog"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	var out struct {
		Success bool `json:"success"`
		Data    struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, c.Get(context.Background(), "/projects/p1", &out))
	assert.True(t, out.Success)
	assert.Equal(t, "blog", out.Data.Name)
}
