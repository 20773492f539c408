package respond

import (
	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/telemetry"
)

// includeDetail controls whether upstream error text is echoed to clients.
// Production bodies carry only {"message"}.
var includeDetail = true

// SetIncludeDetail toggles error detail in response bodies. Call once at startup.
func SetIncludeDetail(v bool) {
	includeDetail = v
}

// ErrorBody is the standardized error payload.
type ErrorBody struct {
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
}

// Error sends a standardized error response and logs it.
func Error(c *gin.Context, status int, message string, cause error) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if cause != nil {
		fields["error"] = cause.Error()
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	body := ErrorBody{Message: message}
	if cause != nil && includeDetail {
		body.Detail = cause.Error()
	}
	c.AbortWithStatusJSON(status, body)
}
