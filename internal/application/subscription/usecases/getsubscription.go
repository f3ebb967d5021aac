package usecases

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/application/subscription/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/subscription"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type GetSubscriptionUseCase struct {
	subs   subscription.Repository
	plans  subscription.PlanRepository
	logger logger.Interface
}

func NewGetSubscriptionUseCase(subs subscription.Repository, plans subscription.PlanRepository, logger logger.Interface) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subs:   subs,
		plans:  plans,
		logger: logger,
	}
}

// Execute returns the caller's subscription with its plan embedded. The plan
// may be nil in the response if the referenced plan row has vanished; the
// read surface tolerates that even though the quota gate treats it as a
// fault.
func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, userID uint) (*dto.SubscriptionResponse, error) {
	sub, err := uc.subs.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load subscription", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	if sub == nil {
		return nil, errors.NewNotFoundError("no subscription found")
	}

	plan, err := uc.plans.GetByID(ctx, sub.PlanID())
	if err != nil {
		uc.logger.Errorw("failed to load plan", "plan_id", sub.PlanID(), "error", err)
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}

	return dto.ToSubscriptionResponse(sub, plan), nil
}
