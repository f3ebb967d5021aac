package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sendloop-inc/sendloop/internal/application/resource/dto"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
	"github.com/sendloop-inc/sendloop/internal/shared/utils"
)

type automationService interface {
	CreateAutomation(ctx context.Context, req dto.CreateAutomationRequest, createdBy uint) (*dto.AutomationResponse, error)
	ListAutomations(ctx context.Context, createdBy uint, req dto.ListRequest) ([]*dto.AutomationResponse, int64, error)
}

type AutomationHandler struct {
	service automationService
	logger  logger.Interface
}

func NewAutomationHandler(service automationService, logger logger.Interface) *AutomationHandler {
	return &AutomationHandler{
		service: service,
		logger:  logger,
	}
}

// Create creates an automation. Runs behind the quota gate.
func (h *AutomationHandler) Create(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req dto.CreateAutomationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create automation", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateAutomation(c.Request.Context(), req, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Automation created successfully")
}

// List returns the caller's automations.
func (h *AutomationHandler) List(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	page, pageSize := utils.ParsePagination(c)

	items, total, err := h.service.ListAutomations(c.Request.Context(), userID, dto.ListRequest{Page: page, PageSize: pageSize})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Automations retrieved successfully", utils.ListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}
