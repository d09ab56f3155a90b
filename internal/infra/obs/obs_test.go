package obs

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestLoggerWritesJSONAndFile(t *testing.T) {
	var out bytes.Buffer
	file := filepath.Join(t.TempDir(), "travelgo.log")
	log := newLogger("prod", LogOptions{Level: "debug", File: file}, &out)

	log.Debug("catalog refreshed", "count", 3)

	assert.Contains(t, out.String(), `"msg":"catalog refreshed"`)
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"count":3`)
}

func TestLoggerLevel(t *testing.T) {
	var out bytes.Buffer
	log := newLogger("prod", LogOptions{Level: "warn"}, &out)
	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
}

func TestRequestIDAndMetrics(t *testing.T) {
	metrics := NewMetrics("travelgo")
	mw := Middleware{Metrics: metrics}
	r := gin.New()
	r.Use(mw.Handlers()...)
	r.GET("/ping", func(c *gin.Context) {
		assert.NotEmpty(t, RequestIDFromContext(c.Request.Context()))
		c.Status(http.StatusNoContent)
	})
	r.GET("/metrics", metrics.Handler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))

	metrics.ResourceLoaded("tours", nil)
	metrics.ResourceLoaded("copy", errors.New("boom"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `travelgo_http_requests_total{method="GET",route="/ping",status="204"} 1`), body)
	assert.Contains(t, body, `travelgo_resource_loads_total{outcome="error",resource="copy"} 1`)
}

func TestReadyzReportsMissingResources(t *testing.T) {
	r := gin.New()
	toursErr := errors.New("not loaded yet")
	copyErr := errors.New("s3: object missing")
	h := HealthHandlers{Checks: []Check{
		{Name: "tours", Run: func() error { return toursErr }},
		{Name: "copy", Run: func() error { return copyErr }, Optional: true},
	}}
	r.GET("/readyz", h.Readyz)

	get := func() (int, map[string]any) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w.Code, body
	}

	code, body := get()
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, map[string]any{"tours": "not loaded yet", "copy": "s3: object missing"}, body["resources"])

	toursErr = nil
	code, body = get()
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "degraded", body["status"])

	copyErr = nil
	code, body = get()
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ready", body["status"])
	assert.Equal(t, map[string]any{"tours": "ok", "copy": "ok"}, body["resources"])
}
