package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sendloop-inc/sendloop/internal/application/identity"
	"github.com/sendloop-inc/sendloop/internal/application/quota"
	"github.com/sendloop-inc/sendloop/internal/application/quota/usecases"
	vo "github.com/sendloop-inc/sendloop/internal/domain/subscription/valueobjects"
	"github.com/sendloop-inc/sendloop/internal/infrastructure/lock"
	"github.com/sendloop-inc/sendloop/internal/shared/constants"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
	"github.com/sendloop-inc/sendloop/internal/shared/utils"
)

// QuotaMiddleware gates resource creation behind the subscription quota
// check. The check is check-then-act, so the middleware serializes gate and
// create per (owner, kind) with an advisory lock held across the handler.
type QuotaMiddleware struct {
	resolver quota.PrincipalResolver
	gate     *usecases.AuthorizeUseCase
	locks    *lock.QuotaLock
	logger   logger.Interface
}

func NewQuotaMiddleware(
	resolver quota.PrincipalResolver,
	gate *usecases.AuthorizeUseCase,
	locks *lock.QuotaLock,
	logger logger.Interface,
) *QuotaMiddleware {
	return &QuotaMiddleware{
		resolver: resolver,
		gate:     gate,
		locks:    locks,
		logger:   logger,
	}
}

// Require gates the request on the given resource kind. Identity comes from
// the session principal seeded by auth middleware, or from a site SID path
// parameter on public widget routes.
func (m *QuotaMiddleware) Require(kind vo.ResourceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := requestContext(c)

		ownerID, err := m.resolver.Resolve(c.Request.Context(), rc)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		release, err := m.locks.Acquire(c.Request.Context(), ownerID, kind.String())
		if err != nil {
			m.logger.Warnw("failed to acquire quota lock",
				"owner_id", ownerID,
				"kind", kind.String(),
				"error", err)
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Concurrent request in progress, please retry")
			c.Abort()
			return
		}
		defer release()

		decision, err := m.gate.ExecuteForOwner(c.Request.Context(), ownerID, kind)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		if !decision.Allowed {
			m.logger.Infow("resource creation denied",
				"owner_id", ownerID,
				"kind", kind.String(),
				"reason", string(decision.Reason))
			c.JSON(http.StatusForbidden, utils.APIResponse{
				Success: false,
				Data:    decision,
				Error: &utils.ErrorInfo{
					Type:    string(decision.Reason),
					Message: denyMessage(decision.Reason),
				},
			})
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyOwnerID, ownerID)

		// The lock stays held while the handler creates the resource.
		c.Next()
	}
}

func requestContext(c *gin.Context) identity.RequestContext {
	var rc identity.RequestContext

	if userID, ok := utils.GetUserID(c); ok {
		rc.UserID = &userID
	}
	if sid := c.Param("sid"); sid != "" {
		rc.SiteSID = &sid
	}

	return rc
}

func denyMessage(reason quota.DenyReason) string {
	switch reason {
	case quota.ReasonSubscriptionRequired:
		return "An active subscription is required"
	case quota.ReasonSubscriptionInactive:
		return "Your subscription is not active"
	case quota.ReasonSubscriptionExpired:
		return "Your subscription has expired"
	case quota.ReasonKindNotPermitted:
		return "Your plan does not include this resource"
	case quota.ReasonQuotaExceeded:
		return "Plan quota exceeded for this resource"
	default:
		return "Request denied"
	}
}
