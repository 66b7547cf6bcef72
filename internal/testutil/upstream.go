package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

// Upstream is a scripted fake of the farm API. Routes are registered per test
// and every request is recorded.
type Upstream struct {
	Router *chi.Mux
	Server *httptest.Server

	mu       sync.Mutex
	requests []Recorded
}

// Recorded is one request the fake received.
type Recorded struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	Body          string
}

func NewUpstream(t *testing.T) *Upstream {
	t.Helper()
	u := &Upstream{Router: chi.NewRouter()}
	u.Router.Use(u.record)
	u.Server = httptest.NewServer(u.Router)
	t.Cleanup(u.Server.Close)
	return u
}

func (u *Upstream) URL() string { return u.Server.URL }

func (u *Upstream) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil && !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}
		u.mu.Lock()
		u.requests = append(u.requests, Recorded{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			Body:          string(body),
		})
		u.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// Requests returns a copy of everything received so far.
func (u *Upstream) Requests() []Recorded {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]Recorded, len(u.requests))
	copy(out, u.requests)
	return out
}

// Count reports how many requests hit method+path.
func (u *Upstream) Count(method, path string) int {
	n := 0
	for _, r := range u.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// JSON registers a fixed JSON reply.
func (u *Upstream) JSON(method, path string, status int, body any) {
	u.Router.MethodFunc(method, path, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, body)
	})
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// AccessToken mints an HS256 token with the given lifetime; the storefront
// only reads its exp claim.
func AccessToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("upstream-secret"))
	if err != nil {
		t.Fatalf("sign access token: %v", err)
	}
	return token
}
