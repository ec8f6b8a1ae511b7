package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/orders?"+rawQuery, nil)
	return c
}

func TestParsePaginationParams(t *testing.T) {
	tests := []struct {
		query   string
		want    PaginationParams
		wantErr bool
	}{
		{query: "", want: PaginationParams{Limit: 200, Offset: 0, Page: 1}},
		{query: "limit=50", want: PaginationParams{Limit: 50, Offset: 0, Page: 1}},
		{query: "limit=9000", want: PaginationParams{Limit: 500, Offset: 0, Page: 1}},
		{query: "limit=20&page=3", want: PaginationParams{Limit: 20, Offset: 40, Page: 3}},
		{query: "limit=20&offset=45", want: PaginationParams{Limit: 20, Offset: 45, Page: 3}},
		{query: "limit=20&page=2&offset=99", want: PaginationParams{Limit: 20, Offset: 20, Page: 2}},
		{query: "limit=-1", want: PaginationParams{Limit: 200, Offset: 0, Page: 1}},
		{query: "limit=abc", wantErr: true},
		{query: "offset=99999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := ParsePaginationParams(queryContext(tt.query))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOptionalInt64Query(t *testing.T) {
	v, ok, err := ParseOptionalInt64Query(queryContext("product_id=2"), "product_id")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(2), v)

	_, ok, err = ParseOptionalInt64Query(queryContext(""), "product_id")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = ParseOptionalInt64Query(queryContext("product_id=0"), "product_id")
	assert.Error(t, err)
}
