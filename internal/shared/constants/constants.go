package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
	ContextKeyOwnerID   = "owner_id"

	// Roles
	RoleAdmin = "admin"
	RoleUser  = "user"

	// User status
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"

	// Database table names
	TableUsers             = "users"
	TableSites             = "sites"
	TableChannels          = "channels"
	TableContacts          = "contacts"
	TableAutomations       = "automations"
	TableCampaigns         = "campaigns"
	TableSubscriptions     = "subscriptions"
	TablePlans             = "plans"
	TableNotifications     = "notifications"
	TableSentNotifications = "sent_notifications"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgValidationFailed    = "Validation failed"
)
