// Package permission defines the fixed permission registry and the
// capability resolution rules for roles and stored permission lists.
package permission

// Permission names recognized by the system. The registry is closed: the
// admin role resolves to exactly this set.
const (
	ManageChannels      = "manage_channels"
	ManageContacts      = "manage_contacts"
	ManageCampaigns     = "manage_campaigns"
	ManageAutomations   = "manage_automations"
	ManageTemplates     = "manage_templates"
	ManageNotifications = "manage_notifications"
	ManageUsers         = "manage_users"
	ManageBilling       = "manage_billing"
	ViewReports         = "view_reports"
)

// Registry lists every permission name defined in the system.
func Registry() []string {
	return []string{
		ManageChannels,
		ManageContacts,
		ManageCampaigns,
		ManageAutomations,
		ManageTemplates,
		ManageNotifications,
		ManageUsers,
		ManageBilling,
		ViewReports,
	}
}

// IsRegistered reports whether the given name is part of the registry.
func IsRegistered(name string) bool {
	for _, p := range Registry() {
		if p == name {
			return true
		}
	}
	return false
}
