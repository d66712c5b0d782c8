package gate

import (
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ReadBody reads at most MaxBodyBytes+1 bytes so an oversized body is
// detected without buffering it whole.
func ReadBody(c *gin.Context) []byte {
	if c.Request.Body == nil {
		return nil
	}
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxBodyBytes+1))
	if err != nil {
		return nil
	}
	return body
}

// Reject writes the response for a gate error and reports whether err was
// one. Upstream errors are left to the caller.
func Reject(c *gin.Context, err error) bool {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": inputErr.Message})
		return true
	}

	var rl *RateLimitError
	if errors.As(err, &rl) {
		secs := int(math.Ceil(rl.RetryAfter.Seconds()))
		if secs < 1 {
			secs = 1
		}
		c.Header("Retry-After", strconv.Itoa(secs))
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
		return true
	}

	return false
}
