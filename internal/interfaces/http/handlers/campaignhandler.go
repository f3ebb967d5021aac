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

type campaignService interface {
	CreateCampaign(ctx context.Context, req dto.CreateCampaignRequest, createdBy uint) (*dto.CampaignResponse, error)
	ListCampaigns(ctx context.Context, createdBy uint, req dto.ListRequest) ([]*dto.CampaignResponse, int64, error)
}

type CampaignHandler struct {
	service campaignService
	logger  logger.Interface
}

func NewCampaignHandler(service campaignService, logger logger.Interface) *CampaignHandler {
	return &CampaignHandler{
		service: service,
		logger:  logger,
	}
}

// Create creates a campaign. Runs behind the quota gate.
func (h *CampaignHandler) Create(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create campaign", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateCampaign(c.Request.Context(), req, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Campaign created successfully")
}

// List returns the caller's campaigns.
func (h *CampaignHandler) List(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	page, pageSize := utils.ParsePagination(c)

	items, total, err := h.service.ListCampaigns(c.Request.Context(), userID, dto.ListRequest{Page: page, PageSize: pageSize})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Campaigns retrieved successfully", utils.ListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}
