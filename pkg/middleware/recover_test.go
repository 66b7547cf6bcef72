package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecoverAndLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := Logger(log)(Recover(log)(panicky))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, 1, logs.FilterMessage("PANIC recovered").Len())

	requests := logs.FilterMessage("HTTP request").All()
	if assert.Len(t, requests, 1) {
		assert.Equal(t, zap.ErrorLevel, requests[0].Level)
		assert.Equal(t, int64(http.StatusInternalServerError), requests[0].ContextMap()["status"])
	}
}
