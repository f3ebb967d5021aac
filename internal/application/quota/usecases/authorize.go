package usecases

import (
	"context"
	"time"

	"github.com/sendloop-inc/sendloop/internal/application/identity"
	"github.com/sendloop-inc/sendloop/internal/application/quota"
	"github.com/sendloop-inc/sendloop/internal/domain/subscription"
	vo "github.com/sendloop-inc/sendloop/internal/domain/subscription/valueobjects"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

// AuthorizeUseCase is the quota gate. It resolves the principal, walks the
// subscription → plan → limit chain in a fixed order and short-circuits on
// the first failing condition.
//
// The gate is check-then-act: it reads the count and decides, it does not
// reserve. The HTTP layer serializes check-and-create per (owner, kind)
// with an advisory lock; without that lock two concurrent requests can both
// pass and transiently exceed the limit.
type AuthorizeUseCase struct {
	resolver quota.PrincipalResolver
	subs     subscription.Repository
	plans    subscription.PlanRepository
	counter  quota.UsageCounter
	logger   logger.Interface
	now      func() time.Time
}

func NewAuthorizeUseCase(
	resolver quota.PrincipalResolver,
	subs subscription.Repository,
	plans subscription.PlanRepository,
	counter quota.UsageCounter,
	logger logger.Interface,
) *AuthorizeUseCase {
	return &AuthorizeUseCase{
		resolver: resolver,
		subs:     subs,
		plans:    plans,
		counter:  counter,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the time source. Test use only.
func (uc *AuthorizeUseCase) WithClock(now func() time.Time) *AuthorizeUseCase {
	uc.now = now
	return uc
}

// Execute evaluates the gate for one request and kind.
//
// Identity failures and storage faults surface as errors; policy outcomes
// surface as a Decision. A subscription row pointing at a missing plan is an
// integrity fault and comes back as an internal error, not a denial.
func (uc *AuthorizeUseCase) Execute(ctx context.Context, rc identity.RequestContext, kind vo.ResourceKind) (*quota.Decision, error) {
	if !kind.IsValid() {
		return nil, errors.NewBadRequestError("unknown resource kind: " + kind.String())
	}

	ownerID, err := uc.resolver.Resolve(ctx, rc)
	if err != nil {
		return nil, err
	}

	return uc.ExecuteForOwner(ctx, ownerID, kind)
}

// ExecuteForOwner evaluates the gate for an already-resolved owner. Callers
// that resolve the principal themselves (to key an advisory lock on it) use
// this to avoid a second resolution.
func (uc *AuthorizeUseCase) ExecuteForOwner(ctx context.Context, ownerID uint, kind vo.ResourceKind) (*quota.Decision, error) {
	if !kind.IsValid() {
		return nil, errors.NewBadRequestError("unknown resource kind: " + kind.String())
	}

	sub, err := uc.subs.GetByUserID(ctx, ownerID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load subscription", err.Error())
	}
	if sub == nil {
		return quota.Deny(kind, quota.ReasonSubscriptionRequired), nil
	}

	// Status before expiry: an inactive-but-expired subscription reports
	// inactivity, not expiry.
	if !sub.Status().CanUseService() {
		return quota.Deny(kind, quota.ReasonSubscriptionInactive), nil
	}
	if sub.IsExpiredAt(uc.now()) {
		return quota.Deny(kind, quota.ReasonSubscriptionExpired), nil
	}

	plan, err := uc.plans.GetByID(ctx, sub.PlanID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load plan", err.Error())
	}
	if plan == nil {
		uc.logger.Errorw("subscription references missing plan",
			"subscription_id", sub.ID(),
			"plan_id", sub.PlanID(),
			"owner_id", ownerID,
		)
		return nil, errors.NewInternalError("subscription plan not found")
	}

	limit, permitted := plan.LimitFor(kind)
	if !permitted {
		return quota.Deny(kind, quota.ReasonKindNotPermitted), nil
	}

	current, err := uc.counter.Count(ctx, kind, ownerID)
	if err != nil {
		return nil, errors.NewInternalError("failed to count usage", err.Error())
	}

	if current >= int64(limit) {
		uc.logger.Infow("quota exceeded",
			"owner_id", ownerID,
			"kind", kind.String(),
			"limit", limit,
			"current", current,
		)
		return quota.DenyExceeded(kind, limit, current), nil
	}

	return quota.Allow(kind, limit, current), nil
}
