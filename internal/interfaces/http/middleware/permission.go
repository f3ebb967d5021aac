package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sendloop-inc/sendloop/internal/domain/permission"
	"github.com/sendloop-inc/sendloop/internal/domain/user"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
	"github.com/sendloop-inc/sendloop/internal/shared/utils"
)

// PermissionMiddleware enforces capability checks on management routes.
type PermissionMiddleware struct {
	users  user.Repository
	logger logger.Interface
}

func NewPermissionMiddleware(users user.Repository, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		users:  users,
		logger: logger,
	}
}

// RequireCapability rejects callers whose resolved capability map lacks the
// named permission. Admins resolve to the full registry and always pass.
func (m *PermissionMiddleware) RequireCapability(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.GetUserID(c)
		if !ok {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
			c.Abort()
			return
		}

		role := utils.GetUserRole(c)
		if role == permission.AdminRole {
			c.Next()
			return
		}

		u, err := m.users.GetByID(c.Request.Context(), userID)
		if err != nil {
			m.logger.Errorw("failed to load user for permission check", "user_id", userID, "error", err)
			utils.ErrorResponseWithError(c, errors.NewInternalError("failed to verify permissions"))
			c.Abort()
			return
		}
		if u == nil {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not found"))
			c.Abort()
			return
		}

		capabilities := permission.Resolve(u.Role(), u.Permissions())
		if !capabilities.Has(name) {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("missing required permission: "+name))
			c.Abort()
			return
		}

		c.Next()
	}
}
