package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newLimitedRouter(burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/subscribe", middleware.RateLimit(rate.Limit(0), burst), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func doPost(router *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscribe", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit_RejectsBeyondBurst(t *testing.T) {
	router := newLimitedRouter(2)

	assert.Equal(t, http.StatusOK, doPost(router, "203.0.113.1:1000"))
	assert.Equal(t, http.StatusOK, doPost(router, "203.0.113.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, doPost(router, "203.0.113.1:1000"))
}

func TestRateLimit_PerIPBuckets(t *testing.T) {
	router := newLimitedRouter(1)

	assert.Equal(t, http.StatusOK, doPost(router, "203.0.113.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, doPost(router, "203.0.113.1:1000"))

	// A different client still has its own burst.
	assert.Equal(t, http.StatusOK, doPost(router, "203.0.113.2:1000"))
}
