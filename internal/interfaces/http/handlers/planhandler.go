package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/sendloop-inc/sendloop/internal/application/subscription/dto"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
	"github.com/sendloop-inc/sendloop/internal/shared/utils"
)

type planService interface {
	ListPlans(ctx context.Context) ([]*dto.PlanResponse, error)
}

type PlanHandler struct {
	service planService
	logger  logger.Interface
}

func NewPlanHandler(service planService, logger logger.Interface) *PlanHandler {
	return &PlanHandler{
		service: service,
		logger:  logger,
	}
}

// List returns the public plan catalog. No authentication required.
func (h *PlanHandler) List(c *gin.Context) {
	result, err := h.service.ListPlans(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Plans retrieved successfully", result)
}
