package api

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_Generated(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/healthz", "")

	id := rec.Header().Get(requestIDHeader)
	require.NotEmpty(t, id)
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestRequestID_Propagated(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "caller-supplied")

	rec := serve(router, req)

	assert.Equal(t, "caller-supplied", rec.Header().Get(requestIDHeader))
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	router := gin.New()
	router.Use(requestID(), accessLog(logger))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))

	out := buf.String()
	assert.Contains(t, out, "msg=\"http request\"")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/ping")
	assert.Contains(t, out, "status=418")
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	router := gin.New()
	router.Use(requestID(), recovery(logger))
	router.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t,
		`{"status":500,"error":"Internal Server Error","message":"An unexpected error occurred","details":"kaboom"}`,
		rec.Body.String())
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestNotModified(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, notModified(req, `"abc"`))

	req.Header.Set("If-None-Match", `"zzz", "abc"`)
	assert.True(t, notModified(req, `"abc"`))

	req.Header.Set("If-None-Match", `*`)
	assert.True(t, notModified(req, `"abc"`))

	req.Header.Set("If-None-Match", `"zzz"`)
	assert.False(t, notModified(req, `"abc"`))
}

func TestEtagFor_Stable(t *testing.T) {
	a := etagFor([]byte(`{"x":1}`))
	b := etagFor([]byte(`{"x":1}`))
	c := etagFor([]byte(`{"x":2}`))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 18) // 16 hex digits plus quotes
}
