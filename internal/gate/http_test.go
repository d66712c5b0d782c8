package gate

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRejectRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", func(c *gin.Context) {
		if Reject(c, err) {
			return
		}
		c.String(http.StatusTeapot, "not a gate error")
	})
	return r
}

func TestReject_InputError_400(t *testing.T) {
	res := httptest.NewRecorder()
	newRejectRouter(ErrTooLong).ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/x", nil))

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.JSONEq(t, `{"error":"Message too long (max 500 characters)"}`, res.Body.String())
}

func TestReject_RateLimited_429WithRetryAfter(t *testing.T) {
	err := &RateLimitError{Route: "ask", RetryAfter: 1500 * time.Millisecond}

	res := httptest.NewRecorder()
	newRejectRouter(err).ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/x", nil))

	assert.Equal(t, http.StatusTooManyRequests, res.Code)
	assert.Equal(t, "2", res.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"Too many requests"}`, res.Body.String())
}

func TestReject_RateLimited_SubSecondRoundsUpToOne(t *testing.T) {
	err := &RateLimitError{Route: "tts", RetryAfter: time.Nanosecond}

	res := httptest.NewRecorder()
	newRejectRouter(err).ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/x", nil))

	assert.Equal(t, "1", res.Header().Get("Retry-After"))
}

func TestReject_OtherError_NotHandled(t *testing.T) {
	res := httptest.NewRecorder()
	newRejectRouter(errors.New("upstream down")).ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/x", nil))

	assert.Equal(t, http.StatusTeapot, res.Code)
}

func TestReadBody_Truncates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var got []byte
	r := gin.New()
	r.POST("/x", func(c *gin.Context) { got = ReadBody(c) })

	big := strings.Repeat("a", MaxBodyBytes*2)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(big)))

	assert.Len(t, got, MaxBodyBytes+1)
}
