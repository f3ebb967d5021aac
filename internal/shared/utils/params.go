package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sendloop-inc/sendloop/internal/shared/constants"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
)

// ParseUintParam parses a numeric path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.NewBadRequestError("invalid " + name + " parameter")
	}
	return uint(value), nil
}

// ParsePagination extracts page/page_size query parameters with defaults.
func ParsePagination(c *gin.Context) (page, pageSize int) {
	page = constants.DefaultPage
	pageSize = constants.DefaultPageSize

	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	if raw := c.Query("page_size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			pageSize = v
		}
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return page, pageSize
}

// GetUserID extracts the authenticated user id seeded by the auth middleware.
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

// GetUserRole extracts the authenticated user role seeded by the auth middleware.
func GetUserRole(c *gin.Context) string {
	value, exists := c.Get(constants.ContextKeyUserRole)
	if !exists {
		return ""
	}
	role, _ := value.(string)
	return role
}
