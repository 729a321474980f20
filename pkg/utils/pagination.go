package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultPage is used when the page query parameter is missing or invalid
	DefaultPage = 1
	// DefaultPageSize is used when the page_size query parameter is missing or invalid
	DefaultPageSize = 10
	// MaxPageSize caps page_size
	MaxPageSize = 100
)

// GetPaginationParams reads page and page_size from the query string.
// pageSize is 0 when the caller did not send one, so a stored preference can apply.
func GetPaginationParams(c *gin.Context) (page int, pageSize int) {
	page = DefaultPage
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 {
			pageSize = v
		}
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return page, pageSize
}

// GetIDParam parses the :id path parameter
func GetIDParam(c *gin.Context) (uint, error) {
	return GetUintParam(c, "id")
}

// GetUintParam parses a named path parameter as an unsigned integer
func GetUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	if v == 0 {
		return 0, fmt.Errorf("invalid %s: must be greater than zero", name)
	}
	return uint(v), nil
}

// GetOptionalUintQuery parses an optional unsigned integer query parameter
func GetOptionalUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	u := uint(v)
	return &u, nil
}
