package helpers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultPageLimit is used when ?limit is absent
	DefaultPageLimit int32 = 200
	// MaxPageLimit caps ?limit
	MaxPageLimit int32 = 500
)

// PaginationParams holds the parsed ?limit, ?offset or ?page values
type PaginationParams struct {
	Limit  int32
	Offset int32
	Page   int32
}

// ParsePaginationParams reads ?limit plus either ?page or ?offset. Limits
// above MaxPageLimit are clamped; zero or negative values keep the
// defaults. ?page wins over ?offset when both are given.
func ParsePaginationParams(c *gin.Context) (PaginationParams, error) {
	p := PaginationParams{Limit: DefaultPageLimit, Page: 1}

	limit, err := queryInt32(c, "limit")
	if err != nil {
		return p, err
	}
	if limit > 0 {
		p.Limit = min(limit, MaxPageLimit)
	}

	page, err := queryInt32(c, "page")
	if err != nil {
		return p, err
	}
	if page > 0 {
		p.Page = page
		p.Offset = (page - 1) * p.Limit
		return p, nil
	}

	offset, err := queryInt32(c, "offset")
	if err != nil {
		return p, err
	}
	if offset > 0 {
		p.Offset = offset
		p.Page = offset/p.Limit + 1
	}
	return p, nil
}

func queryInt32(c *gin.Context, name string) (int32, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := SafeParseInt32(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %w", name, err)
	}
	return v, nil
}

// ParseIDParam reads a positive integer path parameter such as :id
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}

// ParseOptionalInt64Query reads an optional positive integer query parameter.
// The boolean is false when the parameter is absent.
func ParseOptionalInt64Query(c *gin.Context, name string) (int64, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, false, fmt.Errorf("invalid %s parameter: %q", name, raw)
	}
	return v, true, nil
}

// SafeParseInt32 parses s, rejecting values outside the int32 range
func SafeParseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}
