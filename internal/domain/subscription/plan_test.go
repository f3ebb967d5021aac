package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/sendloop-inc/sendloop/internal/domain/subscription/valueobjects"
)

func TestNewPlan(t *testing.T) {
	limits := map[vo.ResourceKind]int{
		vo.KindChannel:  3,
		vo.KindContacts: 500,
	}

	plan, err := NewPlan("Starter", "starter", 1900, limits)
	require.NoError(t, err)

	assert.Equal(t, "Starter", plan.Name())
	assert.Equal(t, "starter", plan.Slug())
	assert.True(t, plan.IsPublic())
}

func TestNewPlan_Validation(t *testing.T) {
	_, err := NewPlan("", "starter", 0, nil)
	assert.Error(t, err)

	_, err = NewPlan("Starter", "", 0, nil)
	assert.Error(t, err)
}

func TestPlan_LimitFor(t *testing.T) {
	plan, err := NewPlan("Starter", "starter", 1900, map[vo.ResourceKind]int{
		vo.KindChannel:    3,
		vo.KindContacts:   0,
		vo.KindAutomation: -1,
	})
	require.NoError(t, err)

	tests := []struct {
		name          string
		kind          vo.ResourceKind
		wantLimit     int
		wantPermitted bool
	}{
		{"positive limit is permitted", vo.KindChannel, 3, true},
		{"zero entry means not permitted", vo.KindContacts, 0, false},
		{"negative entry means not permitted", vo.KindAutomation, 0, false},
		{"absent entry means not permitted", vo.KindCampaign, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, permitted := plan.LimitFor(tt.kind)
			assert.Equal(t, tt.wantPermitted, permitted)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestPlan_LimitsReturnsCopy(t *testing.T) {
	plan, err := NewPlan("Starter", "starter", 1900, map[vo.ResourceKind]int{vo.KindChannel: 3})
	require.NoError(t, err)

	limits := plan.Limits()
	limits[vo.KindChannel] = 99

	got, _ := plan.LimitFor(vo.KindChannel)
	assert.Equal(t, 3, got)
}

func TestReconstructPlan(t *testing.T) {
	now := time.Now()

	plan, err := ReconstructPlan(7, "Pro", "pro", 4900, nil, true, 1, now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(7), plan.ID())

	_, permitted := plan.LimitFor(vo.KindChannel)
	assert.False(t, permitted)

	_, err = ReconstructPlan(0, "Pro", "pro", 4900, nil, true, 1, now, now)
	assert.Error(t, err)
}
