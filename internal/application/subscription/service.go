// Package subscription exposes the plan catalog and the caller's own
// subscription as an application service.
package subscription

import (
	"context"

	"github.com/sendloop-inc/sendloop/internal/application/subscription/dto"
	"github.com/sendloop-inc/sendloop/internal/application/subscription/usecases"
	domainSub "github.com/sendloop-inc/sendloop/internal/domain/subscription"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type Service struct {
	listPlansUC *usecases.ListPlansUseCase
	getSubUC    *usecases.GetSubscriptionUseCase
	logger      logger.Interface
}

func NewService(subs domainSub.Repository, plans domainSub.PlanRepository, logger logger.Interface) *Service {
	return &Service{
		listPlansUC: usecases.NewListPlansUseCase(plans, logger),
		getSubUC:    usecases.NewGetSubscriptionUseCase(subs, plans, logger),
		logger:      logger,
	}
}

// ListPlans returns the public plan catalog.
func (s *Service) ListPlans(ctx context.Context) ([]*dto.PlanResponse, error) {
	return s.listPlansUC.Execute(ctx)
}

// GetSubscription returns the caller's subscription with its plan.
func (s *Service) GetSubscription(ctx context.Context, userID uint) (*dto.SubscriptionResponse, error) {
	return s.getSubUC.Execute(ctx, userID)
}
