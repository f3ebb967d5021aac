package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sendloop-inc/sendloop/internal/application/identity"
	"github.com/sendloop-inc/sendloop/internal/application/quota"
	subscriptionDto "github.com/sendloop-inc/sendloop/internal/application/subscription/dto"
	userDto "github.com/sendloop-inc/sendloop/internal/application/user/dto"
	vo "github.com/sendloop-inc/sendloop/internal/domain/subscription/valueobjects"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
	"github.com/sendloop-inc/sendloop/internal/shared/utils"
)

type profileService interface {
	GetCapabilities(ctx context.Context, userID uint) (*userDto.CapabilitiesResponse, error)
	RegisterPushToken(ctx context.Context, userID uint, token string) error
}

type subscriptionReader interface {
	GetSubscription(ctx context.Context, userID uint) (*subscriptionDto.SubscriptionResponse, error)
}

type quotaProbe interface {
	Execute(ctx context.Context, rc identity.RequestContext, kind vo.ResourceKind) (*quota.Decision, error)
}

// ProfileHandler serves the authenticated caller's own account surface:
// capabilities, subscription, quota headroom and push token.
type ProfileHandler struct {
	profile       profileService
	subscriptions subscriptionReader
	gate          quotaProbe
	logger        logger.Interface
}

func NewProfileHandler(profile profileService, subscriptions subscriptionReader, gate quotaProbe, logger logger.Interface) *ProfileHandler {
	return &ProfileHandler{
		profile:       profile,
		subscriptions: subscriptions,
		gate:          gate,
		logger:        logger,
	}
}

// GetCapabilities returns the caller's resolved capability names.
func (h *ProfileHandler) GetCapabilities(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	result, err := h.profile.GetCapabilities(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Capabilities retrieved successfully", result)
}

// GetSubscription returns the caller's subscription with its plan.
func (h *ProfileHandler) GetSubscription(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	result, err := h.subscriptions.GetSubscription(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Subscription retrieved successfully", result)
}

// GetQuota probes the quota gate for one resource kind without creating
// anything. Denials come back as a 200 with Allowed false: the probe reports
// the decision, it does not enforce it.
func (h *ProfileHandler) GetQuota(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	kind := vo.ResourceKind(c.Param("kind"))

	decision, err := h.gate.Execute(c.Request.Context(), identity.RequestContext{UserID: &userID}, kind)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Quota retrieved successfully", decision)
}

// RegisterPushToken stores the caller's device push token.
func (h *ProfileHandler) RegisterPushToken(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	var req userDto.RegisterPushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for push token registration", "user_id", userID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.profile.RegisterPushToken(c.Request.Context(), userID, req.Token); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Push token registered successfully", nil)
}

// ClearPushToken removes the caller's device push token.
func (h *ProfileHandler) ClearPushToken(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	if err := h.profile.RegisterPushToken(c.Request.Context(), userID, ""); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Push token cleared successfully", nil)
}
