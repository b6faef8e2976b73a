package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hoteltec/internal/shared/constants"
)

// Pagination holds normalized page parameters from a request.
type Pagination struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page.
func (p Pagination) Offset() int {
	if p.Page <= 0 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Limit returns the clamped page size.
func (p Pagination) Limit() int {
	if p.PageSize <= 0 {
		return constants.DefaultPageSize
	}
	if p.PageSize > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	return p.PageSize
}

// GetPagination extracts and normalizes page/page_size query parameters.
func GetPagination(c *gin.Context) Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	if err != nil || page < 1 {
		page = constants.DefaultPage
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return Pagination{Page: page, PageSize: pageSize}
}
