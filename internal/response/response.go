package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the error envelope returned by every failing endpoint. The
// underlying error message is exposed directly; validation failures
// additionally carry a field map.
type Body struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Error sends an error response with the given status and message.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Body{Error: message})
}

// ValidationError sends a 400 response carrying field-level details from
// the request validator.
func ValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, Body{Error: "validation failed", Fields: fields})
}
