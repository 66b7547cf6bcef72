package upstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"farm-storefront/pkg/upstream"
	"farm-storefront/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newClient(t *testing.T, h http.HandlerFunc) *upstream.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return upstream.New(srv.URL, zap.NewNop())
}

func TestClient_SendsBearerFromContext(t *testing.T) {
	var gotAuth, gotQuery string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"username":"ravi"}`))
	})

	ctx := utils.SetAccessTokenContext(context.Background(), "abc.def.ghi")
	var out map[string]string
	err := c.Get(ctx, "/api/user/profile/", url.Values{"status": {"pending"}}, &out)

	require.NoError(t, err)
	assert.Equal(t, "Bearer abc.def.ghi", gotAuth)
	assert.Equal(t, "status=pending", gotQuery)
	assert.Equal(t, "ravi", out["username"])
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.Get(context.Background(), "/products/get/", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestClient_ErrorMessageFromBody(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"detail wins", http.StatusUnauthorized, `{"detail":"No active account found","message":"x"}`, "No active account found"},
		{"message", http.StatusBadRequest, `{"message":"Email already exists"}`, "Email already exists"},
		{"error object", http.StatusBadRequest, `{"error":{"price":["required"]}}`, `{"price":["required"]}`},
		{"fallback", http.StatusInternalServerError, `<html>boom</html>`, "Internal Server Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})

			err := c.Post(context.Background(), "/api/token/", map[string]string{"email": "a@b.c"}, nil)

			apiErr, ok := upstream.AsAPIError(err)
			require.True(t, ok, "expected APIError, got %v", err)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

func TestClient_ErrorInsideSuccessBody(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"Order already delivered"}`))
	})

	err := c.Patch(context.Background(), "/orders/staff/update/1/", map[string]string{"status": "pending"}, nil)

	apiErr, ok := upstream.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Order already delivered", apiErr.Message)
}

func TestClient_SuccessFalse(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"Product not found"}`))
	})

	err := c.Get(context.Background(), "/products/detail/9", nil, nil)

	apiErr, ok := upstream.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Product not found", apiErr.Message)
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := upstream.New(srv.URL, zap.NewNop())

	err := c.Get(context.Background(), "/products/get/", nil, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, upstream.ErrNetwork))
	_, isAPI := upstream.AsAPIError(err)
	assert.False(t, isAPI)
}

func TestClient_IsUnauthorized(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Given token not valid for any token type"}`))
	})

	err := c.Get(context.Background(), "/api/user/profile/", nil, nil)
	assert.True(t, upstream.IsUnauthorized(err))
}

func TestClient_Multipart(t *testing.T) {
	var fields map[string]string
	var fileBody string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		fields = map[string]string{
			"name":     r.FormValue("name"),
			"category": r.FormValue("category"),
		}
		f, _, err := r.FormFile("image")
		if !assert.NoError(t, err) {
			return
		}
		b, _ := io.ReadAll(f)
		fileBody = string(b)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	err := c.DoMultipart(context.Background(), "/products/create/",
		map[string]string{"name": "A2 Milk", "category": "milk"},
		[]upstream.FilePart{{Field: "image", Filename: "milk.png", Content: strings.NewReader("png-bytes")}},
		nil,
	)

	require.NoError(t, err)
	assert.Equal(t, "A2 Milk", fields["name"])
	assert.Equal(t, "milk", fields["category"])
	assert.Equal(t, "png-bytes", fileBody)
}
