// Package http assembles the HTTP surface: routes, middleware and handlers.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/sendloop-inc/sendloop/internal/domain/permission"
	vo "github.com/sendloop-inc/sendloop/internal/domain/subscription/valueobjects"
	"github.com/sendloop-inc/sendloop/internal/interfaces/http/handlers"
	"github.com/sendloop-inc/sendloop/internal/interfaces/http/middleware"
	sharedConfig "github.com/sendloop-inc/sendloop/internal/shared/config"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

// Router wires handlers and middleware into a gin engine.
type Router struct {
	serverConfig *sharedConfig.ServerConfig
	logger       logger.Interface

	authMW  *middleware.AuthMiddleware
	quotaMW *middleware.QuotaMiddleware
	permMW  *middleware.PermissionMiddleware

	auth          *handlers.AuthHandler
	profile       *handlers.ProfileHandler
	channels      *handlers.ChannelHandler
	contacts      *handlers.ContactHandler
	automations   *handlers.AutomationHandler
	campaigns     *handlers.CampaignHandler
	notifications *handlers.NotificationHandler
	plans         *handlers.PlanHandler
}

func NewRouter(
	serverConfig *sharedConfig.ServerConfig,
	logger logger.Interface,
	authMW *middleware.AuthMiddleware,
	quotaMW *middleware.QuotaMiddleware,
	permMW *middleware.PermissionMiddleware,
	auth *handlers.AuthHandler,
	profile *handlers.ProfileHandler,
	channels *handlers.ChannelHandler,
	contacts *handlers.ContactHandler,
	automations *handlers.AutomationHandler,
	campaigns *handlers.CampaignHandler,
	notifications *handlers.NotificationHandler,
	plans *handlers.PlanHandler,
) *Router {
	return &Router{
		serverConfig:  serverConfig,
		logger:        logger,
		authMW:        authMW,
		quotaMW:       quotaMW,
		permMW:        permMW,
		auth:          auth,
		profile:       profile,
		channels:      channels,
		contacts:      contacts,
		automations:   automations,
		campaigns:     campaigns,
		notifications: notifications,
		plans:         plans,
	}
}

// Setup builds the gin engine with all routes registered.
func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.serverConfig.Mode)

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(r.logger))
	engine.Use(middleware.CORS(r.serverConfig.AllowedOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	// Public surface: account bootstrap, plan catalog and the widget
	// submission endpoint used by embedded forms.
	api.POST("/auth/register", r.auth.Register)
	api.POST("/auth/login", r.auth.Login)
	api.POST("/auth/refresh", r.auth.Refresh)
	api.GET("/plans", r.plans.List)

	// A widget submit from a logged-in browser resolves to the session
	// principal, so the token is honored when present.
	api.POST("/widget/sites/:sid/contacts",
		r.authMW.OptionalAuth(),
		r.quotaMW.Require(vo.KindContacts),
		r.contacts.CreateFromWidget)

	// Everything below requires a session.
	authed := api.Group("")
	authed.Use(r.authMW.RequireAuth())

	me := authed.Group("/me")
	{
		me.GET("/capabilities", r.profile.GetCapabilities)
		me.GET("/subscription", r.profile.GetSubscription)
		me.GET("/quota/:kind", r.profile.GetQuota)
		me.PUT("/push-token", r.profile.RegisterPushToken)
		me.DELETE("/push-token", r.profile.ClearPushToken)
	}

	channels := authed.Group("/channels")
	{
		channels.POST("", r.quotaMW.Require(vo.KindChannel), r.channels.Create)
		channels.GET("", r.channels.List)
		channels.POST("/:id/sites", r.channels.CreateSite)
		channels.POST("/:id/contacts", r.quotaMW.Require(vo.KindContacts), r.contacts.Create)
		channels.GET("/:id/contacts", r.contacts.List)
	}

	automations := authed.Group("/automations")
	{
		automations.POST("", r.quotaMW.Require(vo.KindAutomation), r.automations.Create)
		automations.GET("", r.automations.List)
	}

	campaigns := authed.Group("/campaigns")
	{
		campaigns.POST("", r.quotaMW.Require(vo.KindCampaign), r.campaigns.Create)
		campaigns.GET("", r.campaigns.List)
	}

	notifications := authed.Group("/notifications")
	notifications.Use(r.permMW.RequireCapability(permission.ManageNotifications))
	{
		notifications.POST("", r.notifications.Create)
		notifications.GET("", r.notifications.List)
		notifications.GET("/:id", r.notifications.Get)
		notifications.POST("/:id/dispatch", r.notifications.Dispatch)
	}

	return engine
}
