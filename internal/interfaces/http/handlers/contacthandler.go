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

type contactService interface {
	CreateContact(ctx context.Context, channelID, actorID uint, req dto.CreateContactRequest) (*dto.ContactResponse, error)
	CreateContactForSite(ctx context.Context, siteSID string, req dto.CreateContactRequest) (*dto.ContactResponse, error)
	ListContacts(ctx context.Context, channelID, actorID uint, req dto.ListRequest) ([]*dto.ContactResponse, int64, error)
}

type ContactHandler struct {
	service contactService
	logger  logger.Interface
}

func NewContactHandler(service contactService, logger logger.Interface) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger,
	}
}

// Create adds a contact to one of the caller's channels. Runs behind the
// quota gate.
func (h *ContactHandler) Create(c *gin.Context) {
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

	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create contact", "channel_id", channelID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateContact(c.Request.Context(), channelID, userID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Contact created successfully")
}

// CreateFromWidget stores a contact submitted by the public widget. Identity
// comes from the site SID in the path; the quota gate has already resolved
// and checked the channel owner.
func (h *ContactHandler) CreateFromWidget(c *gin.Context) {
	siteSID := c.Param("sid")
	if siteSID == "" {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("missing site id"))
		return
	}

	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid widget contact submission", "site_sid", siteSID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateContactForSite(c.Request.Context(), siteSID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Contact created successfully")
}

// List returns the contacts of one of the caller's channels.
func (h *ContactHandler) List(c *gin.Context) {
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

	page, pageSize := utils.ParsePagination(c)

	items, total, err := h.service.ListContacts(c.Request.Context(), channelID, userID, dto.ListRequest{Page: page, PageSize: pageSize})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Contacts retrieved successfully", utils.ListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}
