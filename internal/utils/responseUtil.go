package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prompthub/prompthub/internal/enhancer"
)

func ProcessGenericBadRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
}

func ProcessGenericInternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// StatusForCondition maps an enhancer failure condition to the HTTP status
// returned to the inbound caller.
func StatusForCondition(condition enhancer.Condition) int {
	switch condition {
	case enhancer.ConditionInvalidInput:
		return http.StatusBadRequest
	case enhancer.ConditionConfiguration:
		return http.StatusInternalServerError
	case enhancer.ConditionAuthentication:
		return http.StatusBadGateway
	case enhancer.ConditionQuotaExceeded:
		return http.StatusTooManyRequests
	case enhancer.ConditionUpstreamError:
		return http.StatusBadGateway
	default:
		return http.StatusServiceUnavailable
	}
}

// ProcessEnhancerError writes the user-facing message of an enhancer error
// with the status its condition maps to.
func ProcessEnhancerError(c *gin.Context, err error) {
	if e, ok := err.(*enhancer.Error); ok {
		c.JSON(StatusForCondition(e.Condition), gin.H{"error": e.Message})
		return
	}
	ProcessGenericInternalError(c)
}
