package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ticketdesk/ticketdesk/internal/shared/constants"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/id"
)

// ParseIDParam parses a positive integer path parameter.
// entityName is used in error messages (e.g., "ticket").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError("Invalid " + entityName + " ID")
	}
	return uint(value), nil
}

// ParseUUIDParam validates an external identifier path parameter.
func ParseUUIDParam(c *gin.Context, paramName, entityName string) (string, error) {
	raw := c.Param(paramName)
	if !id.IsValid(raw) {
		return "", errors.NewValidationError("Invalid " + entityName + " UUID")
	}
	return raw, nil
}

// QueryInt parses an integer query parameter, returning defaultVal when the
// parameter is absent. Range checks are left to the caller.
func QueryInt(c *gin.Context, key string, defaultVal int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewValidationError(key + " must be an integer")
	}
	return n, nil
}

// GetUserIDFromContext returns the acting user set by the default user middleware.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, errors.NewInternalError("user context missing")
	}
	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return 0, errors.NewInternalError("user context invalid")
	}
	return userID, nil
}
