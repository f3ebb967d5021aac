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

type channelService interface {
	CreateChannel(ctx context.Context, req dto.CreateChannelRequest, createdBy uint) (*dto.ChannelResponse, error)
	ListChannels(ctx context.Context, createdBy uint, req dto.ListRequest) ([]*dto.ChannelResponse, int64, error)
	CreateSite(ctx context.Context, channelID, actorID uint, req dto.CreateSiteRequest) (*dto.SiteResponse, error)
}

type ChannelHandler struct {
	service channelService
	logger  logger.Interface
}

func NewChannelHandler(service channelService, logger logger.Interface) *ChannelHandler {
	return &ChannelHandler{
		service: service,
		logger:  logger,
	}
}

// Create creates a channel for the authenticated user. Runs behind the
// quota gate.
func (h *ChannelHandler) Create(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req dto.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create channel", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateChannel(c.Request.Context(), req, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Channel created successfully")
}

// List returns the caller's channels.
func (h *ChannelHandler) List(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	page, pageSize := utils.ParsePagination(c)

	items, total, err := h.service.ListChannels(c.Request.Context(), userID, dto.ListRequest{Page: page, PageSize: pageSize})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Channels retrieved successfully", utils.ListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// CreateSite attaches a widget site to one of the caller's channels.
func (h *ChannelHandler) CreateSite(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	channelID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create site", "channel_id", channelID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateSite(c.Request.Context(), channelID, userID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Site created successfully")
}
