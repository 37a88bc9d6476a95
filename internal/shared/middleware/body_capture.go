package middleware

import (
	"bytes"
	"io"

	"github.com/gin-gonic/gin"
)

const maxCapturedBody = 4096

// BodyCapture keeps a truncated copy of mutating request bodies in the
// context so failure records can include what the caller sent. The body
// is restored for downstream binding.
func BodyCapture() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil && c.Request.Method != "GET" && c.Request.Method != "DELETE" {
			data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCapturedBody+1))
			if err == nil {
				captured := data
				if len(captured) > maxCapturedBody {
					captured = captured[:maxCapturedBody]
				}
				c.Set("request_body", string(captured))
				c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(data), c.Request.Body))
			}
		}

		c.Next()
	}
}
