package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tasmanescape/website/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newCORSRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(cfg))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func corsGet(r *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSDevelopmentEchoesOrigin(t *testing.T) {
	r := newCORSRouter(&config.Config{Environment: "development"})

	w := corsGet(r, http.MethodGet, "http://localhost:3000")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSProductionAllowedOrigin(t *testing.T) {
	cfg := &config.Config{
		Environment:    "production",
		AllowedOrigins: "https://tasmanescape.example, https://www.tasmanescape.example",
	}
	r := newCORSRouter(cfg)

	w := corsGet(r, http.MethodGet, "https://www.tasmanescape.example")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "https://www.tasmanescape.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSProductionRejectsUnknownOrigin(t *testing.T) {
	cfg := &config.Config{
		Environment:    "production",
		AllowedOrigins: "https://tasmanescape.example",
	}
	r := newCORSRouter(cfg)

	w := corsGet(r, http.MethodGet, "https://evil.example")
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := newCORSRouter(&config.Config{Environment: "development"})

	w := corsGet(r, http.MethodOptions, "http://localhost:3000")
	require.Equal(t, http.StatusNoContent, w.Code)
	require.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"))
}
