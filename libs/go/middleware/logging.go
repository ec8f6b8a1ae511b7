package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// redactedFields never appear in request logs
var redactedFields = map[string]bool{
	"password":        true,
	"token":           true,
	"customer_phone":  true,
	"recipient_phone": true,
}

var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
	"Api-Key":       true,
	"Secret-Key":    true,
}

// bodyLogWriter is a wrapper around gin.ResponseWriter that captures the response body
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// EnhancedLoggingMiddleware logs request and response bodies in
// development. Secrets and phone numbers are redacted.
func EnhancedLoggingMiddleware(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isDevelopment {
			c.Next()
			return
		}

		startTime := time.Now()
		log := LogWithCorrelationID(c.Request.Context())

		var requestBody []byte
		if c.Request.Body != nil && strings.HasPrefix(c.ContentType(), "application/json") {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = NewBodyReader(requestBody)
		}

		headers := make(map[string]string, len(c.Request.Header))
		for key, values := range c.Request.Header {
			if redactedHeaders[key] {
				headers[key] = "[REDACTED]"
			} else {
				headers[key] = values[0]
			}
		}

		log.Info("Detailed request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Any("headers", headers),
			zap.Any("body", redactJSON(requestBody)),
			zap.Int("body_size", len(requestBody)),
		)

		blw := &bodyLogWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		var responseBody interface{}
		if strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "application/json") {
			responseBody = redactJSON(blw.body.Bytes())
		}

		log.Info("Detailed response",
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.Any("body", responseBody),
			zap.Int("body_size", blw.body.Len()),
			zap.Int("errors_count", len(c.Errors)),
		)

		for _, err := range c.Errors {
			log.Error("Request error",
				zap.Error(err.Err),
				zap.Uint64("type", uint64(err.Type)),
				zap.Any("meta", err.Meta),
			)
		}
	}
}

// RequestLoggingMiddleware logs one line per completed request
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(startTime)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}

		log := LogWithCorrelationID(c.Request.Context())
		switch {
		case status >= 500:
			log.Error("Request completed", fields...)
		case status >= 400:
			log.Warn("Request completed", fields...)
		default:
			log.Info("Request completed", fields...)
		}
	}
}

// redactJSON decodes a JSON body and masks sensitive fields. Non-JSON input
// is returned as nil.
func redactJSON(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return redactValue(v)
}

func redactValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, inner := range t {
			if redactedFields[strings.ToLower(k)] {
				t[k] = "[REDACTED]"
				continue
			}
			t[k] = redactValue(inner)
		}
		return t
	case []interface{}:
		for i, inner := range t {
			t[i] = redactValue(inner)
		}
		return t
	}
	return v
}
