package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sendloop-inc/sendloop/internal/application/notification/dto"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
	"github.com/sendloop-inc/sendloop/internal/shared/utils"
)

// notificationService is the subset of the notification application service
// used by NotificationHandler. Narrowed for unit testing with mocks.
type notificationService interface {
	CreateNotification(ctx context.Context, req dto.CreateNotificationRequest, createdBy uint) (*dto.NotificationResponse, error)
	DispatchNotification(ctx context.Context, id uint) (*dto.DispatchResponse, error)
	GetNotification(ctx context.Context, id uint) (*dto.NotificationResponse, error)
	ListNotifications(ctx context.Context, createdBy uint, req dto.ListNotificationsRequest) ([]*dto.NotificationResponse, int64, error)
}

type NotificationHandler struct {
	service notificationService
	logger  logger.Interface
}

func NewNotificationHandler(service notificationService, logger logger.Interface) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		logger:  logger,
	}
}

// Create stores a draft notification owned by the caller.
func (h *NotificationHandler) Create(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create notification", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateNotification(c.Request.Context(), req, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Notification created successfully")
}

// Dispatch fans a draft notification out to its recipients. A second
// dispatch of the same notification is rejected as a conflict.
func (h *NotificationHandler) Dispatch(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.DispatchNotification(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Notification dispatched successfully", result)
}

// Get returns one notification with its message rendered to HTML.
func (h *NotificationHandler) Get(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetNotification(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Notification retrieved successfully", result)
}

// List returns the notifications created by the caller.
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	page, pageSize := utils.ParsePagination(c)

	items, total, err := h.service.ListNotifications(c.Request.Context(), userID, dto.ListNotificationsRequest{Page: page, PageSize: pageSize})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Notifications retrieved successfully", utils.ListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}
