package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/showcase/internal/logger"
)

func TestCORSAllowsConfiguredOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORS([]string{"https://example.com"}))
	r.GET("/placeholder.png", func(c *gin.Context) { c.Status(http.StatusOK) })

	for origin, want := range map[string]string{
		"https://example.com": "https://example.com",
		"https://evil.test":   "",
	} {
		req := httptest.NewRequest(http.MethodGet, "/placeholder.png", nil)
		req.Header.Set("Origin", origin)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, want, rec.Header().Get("Access-Control-Allow-Origin"), origin)
	}
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestLogger(logger.Nop(), nil))
	r.GET("/s/:sid/x", func(c *gin.Context) { c.String(http.StatusTeapot, "ok") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/s/abc/x", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestClientHasher(t *testing.T) {
	gin.SetMode(gin.TestMode)

	a, err := NewClientHasher()
	require.NoError(t, err)
	b, err := NewClientHasher()
	require.NoError(t, err)

	assert.Len(t, a.Hash("203.0.113.7"), 16)
	assert.Equal(t, a.Hash("203.0.113.7"), a.Hash("203.0.113.7"))
	assert.NotEqual(t, a.Hash("203.0.113.7"), a.Hash("203.0.113.8"))
	assert.NotEqual(t, a.Hash("203.0.113.7"), b.Hash("203.0.113.7"), "salt differs per hasher")

	var seen string
	r := gin.New()
	r.GET("/", func(c *gin.Context) { seen = a.Client(c) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:5000"
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, a.Hash("203.0.113.7"), seen)

	req.Header.Set("DNT", "1")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Empty(t, seen)
}
