package migration

import (
	"github.com/sendloop-inc/sendloop/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every model the auto-migrate strategy manages.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.PlanModel{},
		&models.SubscriptionModel{},
		&models.ChannelModel{},
		&models.SiteModel{},
		&models.ContactModel{},
		&models.AutomationModel{},
		&models.CampaignModel{},
		&models.NotificationModel{},
		&models.SentNotificationModel{},
	}
}
