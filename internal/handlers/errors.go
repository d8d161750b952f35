package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	srvErrors "github.com/zhakazx/animeinfo/pkg/errors"
)

// StatusCode maps a service error to its HTTP status.
func StatusCode(err error) int {
	switch {
	case srvErrors.IsValidationError(err):
		return http.StatusBadRequest
	case srvErrors.IsResourceNotFoundError(err):
		return http.StatusNotFound
	case srvErrors.IsRateLimitError(err):
		return http.StatusTooManyRequests
	case srvErrors.IsConfigurationError(err):
		return http.StatusServiceUnavailable
	case srvErrors.IsUpstreamUnreachableError(err):
		return http.StatusGatewayTimeout
	case srvErrors.UpstreamStatusCode(err) == http.StatusNotFound:
		return http.StatusNotFound
	case srvErrors.IsUpstreamError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders binding errors of the generated wrappers.
func ErrorHandler(c *gin.Context, err error, statusCode int) {
	c.JSON(statusCode, gin.H{"error": err.Error()})
}

// respondError writes err as {"error": ...}. Internal errors are logged and
// replaced by msg.
func respondError(c *gin.Context, err error, msg string) {
	code := StatusCode(err)

	if e, ok := srvErrors.AsRateLimitError(err); ok {
		secs := int(math.Ceil(e.RetryAfter.Seconds()))
		c.Header("Retry-After", strconv.Itoa(max(secs, 1)))
	}

	if code == http.StatusInternalServerError {
		zap.S().Named("handler").Errorw(msg, "path", c.FullPath(), "error", err)
		c.JSON(code, gin.H{"error": msg})
		return
	}

	if code >= http.StatusInternalServerError {
		zap.S().Named("handler").Warnw(msg, "path", c.FullPath(), "status", code, "error", err)
	}
	c.JSON(code, gin.H{"error": err.Error()})
}
