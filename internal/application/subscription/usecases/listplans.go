package usecases

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/application/subscription/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/subscription"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type ListPlansUseCase struct {
	plans  subscription.PlanRepository
	logger logger.Interface
}

func NewListPlansUseCase(plans subscription.PlanRepository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		plans:  plans,
		logger: logger,
	}
}

// Execute returns the public plan catalog ordered by sort order.
func (uc *ListPlansUseCase) Execute(ctx context.Context) ([]*dto.PlanResponse, error) {
	plans, err := uc.plans.ListPublic(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return dto.ToPlanResponseList(plans), nil
}
