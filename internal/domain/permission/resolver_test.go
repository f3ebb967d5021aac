package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_AdminGetsFullRegistry(t *testing.T) {
	tests := []struct {
		name   string
		stored []string
	}{
		{"nil stored list", nil},
		{"empty stored list", []string{}},
		{"garbage stored list", []string{"bogus", "also_bogus", ""}},
		{"partial stored list", []string{ManageChannels}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capabilities := Resolve(AdminRole, tt.stored)

			assert.Len(t, capabilities, len(Registry()))
			for _, name := range Registry() {
				assert.True(t, capabilities.Has(name), "admin should have %s", name)
			}
		})
	}
}

func TestResolve_NonAdminEmptyList(t *testing.T) {
	assert.Empty(t, Resolve("user", nil))
	assert.Empty(t, Resolve("user", []string{}))
	assert.Empty(t, Resolve("operator", nil))
}

func TestResolve_NonAdminFoldsStoredList(t *testing.T) {
	capabilities := Resolve("user", []string{ManageChannels, ManageChannels, ManageContacts})

	assert.Len(t, capabilities, 2)
	assert.True(t, capabilities.Has(ManageChannels))
	assert.True(t, capabilities.Has(ManageContacts))
	assert.False(t, capabilities.Has(ManageCampaigns))
}

func TestResolve_UnknownNamesPassThrough(t *testing.T) {
	capabilities := Resolve("user", []string{"custom_integration"})

	assert.True(t, capabilities.Has("custom_integration"))
	assert.False(t, IsRegistered("custom_integration"))
}

func TestResolve_NeverEmitsFalseEntries(t *testing.T) {
	capabilities := Resolve("user", []string{ManageChannels})

	for name, granted := range capabilities {
		assert.True(t, granted, "capability %s must not be stored as false", name)
	}
}

func TestCapabilityMap_Names(t *testing.T) {
	capabilities := Resolve("user", []string{ManageChannels, ViewReports})
	assert.ElementsMatch(t, []string{ManageChannels, ViewReports}, capabilities.Names())
}
