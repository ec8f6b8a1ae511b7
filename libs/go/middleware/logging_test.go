package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactJSON(t *testing.T) {
	got := redactJSON([]byte(`{"password":"hunter2","customer_name":"Rahim","customer_phone":"01711111111","items":[{"token":"abc","id":1}]}`))

	m, ok := got.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "[REDACTED]", m["password"])
	assert.Equal(t, "[REDACTED]", m["customer_phone"])
	assert.Equal(t, "Rahim", m["customer_name"])

	item := m["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "[REDACTED]", item["token"])
	assert.Equal(t, float64(1), item["id"])

	assert.Nil(t, redactJSON([]byte("not json")))
	assert.Nil(t, redactJSON(nil))
}

func TestEnhancedLoggingMiddleware_PreservesBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(EnhancedLoggingMiddleware(true), RequestLoggingMiddleware())
	router.POST("/echo", func(c *gin.Context) {
		var body map[string]string
		require.NoError(t, c.ShouldBindJSON(&body))
		c.JSON(http.StatusOK, body)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"password":"hunter2"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"password":"hunter2"}`, w.Body.String())
}
