package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hoteltec/internal/shared/errors"
)

// ParseUintParam parses a numeric ID from a URL path parameter.
// entityName is used in error messages (e.g., "product", "order").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(parsed), nil
}

// CurrentUserID returns the authenticated user ID placed by the auth middleware.
func CurrentUserID(c *gin.Context) (uint, error) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}
	userID, ok := v.(uint)
	if !ok || userID == 0 {
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}
	return userID, nil
}

// CurrentHotelID returns the hotel scope placed by the hotel scope middleware.
func CurrentHotelID(c *gin.Context) (uint, error) {
	v, exists := c.Get("hotel_id")
	if !exists {
		return 0, errors.NewForbiddenError("no hotel is linked to this account")
	}
	hotelID, ok := v.(uint)
	if !ok || hotelID == 0 {
		return 0, errors.NewForbiddenError("no hotel is linked to this account")
	}
	return hotelID, nil
}
