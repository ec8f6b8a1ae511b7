package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/logger"
	"github.com/chokka/chokka-api/libs/go/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	// Initialize logger for tests to avoid panic
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.CorrelationIDMiddleware())
	return router
}

func performRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func num(v int64) pgtype.Numeric {
	return helpers.DecimalToNumeric(decimal.NewFromInt(v))
}

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

var testTime = time.Date(2024, 3, 11, 4, 0, 0, 0, time.UTC)

func sampleOrder(id int64) db.Order {
	return db.Order{
		ID:              id,
		CustomerName:    "Rahim Uddin",
		CustomerPhone:   "01712345678",
		CustomerAddress: "House 12, Road 5, Mirpur",
		City:            "Dhaka",
		ProductID:       1,
		Quantity:        1,
		Subtotal:        num(360),
		ShippingFee:     num(80),
		Discount:        num(0),
		TotalPrice:      num(440),
		Status:          "Pending",
		CreatedAt:       ts(testTime),
		UpdatedAt:       ts(testTime),
	}
}
