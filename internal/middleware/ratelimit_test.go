package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"news-api-be/internal/logger"
)

func newLimitedRouter(rps rate.Limit, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(rps, burst, logger.Nop())
	r := gin.New()
	r.GET("/", rl.LimitMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ip + ":12345"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterRejectsBeyondBurst(t *testing.T) {
	// 1 rps with a burst of 2: the third immediate request must be rejected.
	r := newLimitedRouter(1, 2)

	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "10.0.0.1"))
}

func TestRateLimiterIsPerClient(t *testing.T) {
	r := newLimitedRouter(1, 1)

	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "10.0.0.1"))

	// A different client has its own bucket.
	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.2"))
}
