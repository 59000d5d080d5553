package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ticketdesk/ticketdesk/internal/application/user/dto"
	"github.com/ticketdesk/ticketdesk/internal/application/user/usecases"
	"github.com/ticketdesk/ticketdesk/internal/shared/constants"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
	"github.com/ticketdesk/ticketdesk/internal/shared/utils"
)

// DefaultUser stands in for authentication: every request acts as the
// configured default user, which is created on first use.
func DefaultUser(ensureUser usecases.EnsureUserExecutor, identity dto.EnsureUserRequest, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := ensureUser.Execute(c.Request.Context(), identity)
		if err != nil {
			log.Errorw("failed to resolve default user", "error", err)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Next()
	}
}
