package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareEnforcesLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Middleware(New(2, time.Minute)))
	r.POST("/auth/google", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/auth/google", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, 200, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/google", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, 429, w.Code)
	require.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestLimiterWindowSlides(t *testing.T) {
	l := New(1, 10*time.Millisecond)

	require.True(t, l.Allow("k"))
	require.False(t, l.Allow("k"))

	time.Sleep(15 * time.Millisecond)
	require.True(t, l.Allow("k"))
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	l := New(1, time.Minute)

	require.True(t, l.Allow("a"))
	require.True(t, l.Allow("b"))
	require.False(t, l.Allow("a"))
	require.Equal(t, 0, l.Remaining("a"))
	require.Equal(t, 0, l.Remaining("b"))
}
