package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendloop-inc/sendloop/internal/application/identity"
	"github.com/sendloop-inc/sendloop/internal/application/quota"
	"github.com/sendloop-inc/sendloop/internal/domain/channel"
	"github.com/sendloop-inc/sendloop/internal/domain/subscription"
	vo "github.com/sendloop-inc/sendloop/internal/domain/subscription/valueobjects"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

// =====================================================================
// Mocks
// =====================================================================

type mockResolver struct {
	resolveFn func(ctx context.Context, rc identity.RequestContext) (uint, error)
}

func (m *mockResolver) Resolve(ctx context.Context, rc identity.RequestContext) (uint, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, rc)
	}
	return 1, nil
}

type mockSubscriptionRepo struct {
	getByUserIDFn func(ctx context.Context, userID uint) (*subscription.Subscription, error)
}

func (m *mockSubscriptionRepo) Create(ctx context.Context, sub *subscription.Subscription) error {
	return nil
}
func (m *mockSubscriptionRepo) Update(ctx context.Context, sub *subscription.Subscription) error {
	return nil
}
func (m *mockSubscriptionRepo) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	return nil, nil
}

func (m *mockSubscriptionRepo) GetByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	if m.getByUserIDFn != nil {
		return m.getByUserIDFn(ctx, userID)
	}
	return nil, nil
}

type mockPlanRepo struct {
	getByIDFn func(ctx context.Context, id uint) (*subscription.Plan, error)
}

func (m *mockPlanRepo) Create(ctx context.Context, plan *subscription.Plan) error { return nil }
func (m *mockPlanRepo) ListPublic(ctx context.Context) ([]*subscription.Plan, error) {
	return nil, nil
}

func (m *mockPlanRepo) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

type mockCounter struct {
	countFn func(ctx context.Context, kind vo.ResourceKind, ownerID uint) (int64, error)
}

func (m *mockCounter) Count(ctx context.Context, kind vo.ResourceKind, ownerID uint) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, kind, ownerID)
	}
	return 0, nil
}

// =====================================================================
// Fixtures
// =====================================================================

func activeSubscription(t *testing.T, userID, planID uint) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.ReconstructSubscription(
		1, userID, planID,
		vo.StatusActive,
		testNow.AddDate(0, -1, 0), testNow.AddDate(0, 1, 0),
		testNow, testNow,
	)
	require.NoError(t, err)
	return sub
}

func subscriptionWith(t *testing.T, status vo.SubscriptionStatus, endDate time.Time) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.ReconstructSubscription(
		1, 1, 2,
		status,
		testNow.AddDate(0, -2, 0), endDate,
		testNow, testNow,
	)
	require.NoError(t, err)
	return sub
}

func planWithLimits(t *testing.T, limits map[vo.ResourceKind]int) *subscription.Plan {
	t.Helper()
	plan, err := subscription.ReconstructPlan(2, "Starter", "starter", 1900, limits, true, 0, testNow, testNow)
	require.NoError(t, err)
	return plan
}

func newGate(resolver quota.PrincipalResolver, subs *mockSubscriptionRepo, plans *mockPlanRepo, counter *mockCounter) *AuthorizeUseCase {
	return NewAuthorizeUseCase(resolver, subs, plans, counter, logger.NewLogger()).
		WithClock(func() time.Time { return testNow })
}

func sessionCtx(userID uint) identity.RequestContext {
	return identity.RequestContext{UserID: &userID}
}

// =====================================================================
// Tests
// =====================================================================

func TestAuthorize_NoSubscription(t *testing.T) {
	gate := newGate(&mockResolver{}, &mockSubscriptionRepo{}, &mockPlanRepo{}, &mockCounter{})

	decision, err := gate.Execute(context.Background(), sessionCtx(1), vo.KindChannel)
	require.NoError(t, err)

	assert.False(t, decision.Allowed)
	assert.Equal(t, quota.ReasonSubscriptionRequired, decision.Reason)
}

func TestAuthorize_InactiveBeatsExpired(t *testing.T) {
	// inactive status AND end date in the past: the status check comes
	// first, so the reported reason must be inactivity.
	subs := &mockSubscriptionRepo{
		getByUserIDFn: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
			return subscriptionWith(t, vo.StatusInactive, testNow.AddDate(0, -1, 0)), nil
		},
	}

	gate := newGate(&mockResolver{}, subs, &mockPlanRepo{}, &mockCounter{})

	decision, err := gate.Execute(context.Background(), sessionCtx(1), vo.KindChannel)
	require.NoError(t, err)

	assert.False(t, decision.Allowed)
	assert.Equal(t, quota.ReasonSubscriptionInactive, decision.Reason)
}

func TestAuthorize_ActiveButExpired(t *testing.T) {
	subs := &mockSubscriptionRepo{
		getByUserIDFn: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
			return subscriptionWith(t, vo.StatusActive, testNow.AddDate(0, -1, 0)), nil
		},
	}

	gate := newGate(&mockResolver{}, subs, &mockPlanRepo{}, &mockCounter{})

	decision, err := gate.Execute(context.Background(), sessionCtx(1), vo.KindChannel)
	require.NoError(t, err)

	assert.False(t, decision.Allowed)
	assert.Equal(t, quota.ReasonSubscriptionExpired, decision.Reason)
}

func TestAuthorize_MissingPlanIsIntegrityFault(t *testing.T) {
	subs := &mockSubscriptionRepo{
		getByUserIDFn: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
			return activeSubscription(t, userID, 2), nil
		},
	}

	gate := newGate(&mockResolver{}, subs, &mockPlanRepo{}, &mockCounter{})

	_, err := gate.Execute(context.Background(), sessionCtx(1), vo.KindChannel)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}

func TestAuthorize_KindNotPermitted(t *testing.T) {
	subs := &mockSubscriptionRepo{
		getByUserIDFn: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
			return activeSubscription(t, userID, 2), nil
		},
	}
	plans := &mockPlanRepo{
		getByIDFn: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			// no automation entry at all
			return planWithLimits(t, map[vo.ResourceKind]int{vo.KindChannel: 3}), nil
		},
	}

	gate := newGate(&mockResolver{}, subs, plans, &mockCounter{})

	decision, err := gate.Execute(context.Background(), sessionCtx(1), vo.KindAutomation)
	require.NoError(t, err)

	assert.False(t, decision.Allowed)
	assert.Equal(t, quota.ReasonKindNotPermitted, decision.Reason)
}

func TestAuthorize_QuotaBoundary(t *testing.T) {
	subs := &mockSubscriptionRepo{
		getByUserIDFn: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
			return activeSubscription(t, userID, 2), nil
		},
	}
	plans := &mockPlanRepo{
		getByIDFn: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return planWithLimits(t, map[vo.ResourceKind]int{vo.KindChannel: 3}), nil
		},
	}

	tests := []struct {
		name        string
		current     int64
		wantAllowed bool
	}{
		{"below limit allows", 2, true},
		{"at limit denies", 3, false},
		{"above limit denies", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := &mockCounter{
				countFn: func(ctx context.Context, kind vo.ResourceKind, ownerID uint) (int64, error) {
					return tt.current, nil
				},
			}

			gate := newGate(&mockResolver{}, subs, plans, counter)

			decision, err := gate.Execute(context.Background(), sessionCtx(1), vo.KindChannel)
			require.NoError(t, err)

			assert.Equal(t, tt.wantAllowed, decision.Allowed)
			if !tt.wantAllowed {
				assert.Equal(t, quota.ReasonQuotaExceeded, decision.Reason)
				assert.Equal(t, 3, decision.Limit)
				assert.Equal(t, tt.current, decision.Current)
			}
		})
	}
}

func TestAuthorize_WidgetChainResolvesOwner(t *testing.T) {
	// an unauthenticated request carrying a site SID must resolve the
	// channel creator and evaluate the same quota rules for them.
	siteSID := "site_abc123"

	sites := &widgetSiteRepo{sid: siteSID, channelID: 9}
	channels := &widgetChannelRepo{id: 9, createdBy: 77}
	resolver := identity.NewResolver(sites, channels, logger.NewLogger())

	var consultedOwner uint
	subs := &mockSubscriptionRepo{
		getByUserIDFn: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
			consultedOwner = userID
			return activeSubscription(t, userID, 2), nil
		},
	}
	plans := &mockPlanRepo{
		getByIDFn: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return planWithLimits(t, map[vo.ResourceKind]int{vo.KindContacts: 100}), nil
		},
	}
	counter := &mockCounter{
		countFn: func(ctx context.Context, kind vo.ResourceKind, ownerID uint) (int64, error) {
			assert.Equal(t, uint(77), ownerID)
			return 99, nil
		},
	}

	gate := newGate(resolver, subs, plans, counter)

	decision, err := gate.Execute(context.Background(), identity.RequestContext{SiteSID: &siteSID}, vo.KindContacts)
	require.NoError(t, err)

	assert.Equal(t, uint(77), consultedOwner)
	assert.True(t, decision.Allowed)
}

func TestAuthorize_UnauthorizedPropagates(t *testing.T) {
	resolver := &mockResolver{
		resolveFn: func(ctx context.Context, rc identity.RequestContext) (uint, error) {
			return 0, errors.NewUnauthorizedError("no resolvable principal")
		},
	}

	gate := newGate(resolver, &mockSubscriptionRepo{}, &mockPlanRepo{}, &mockCounter{})

	_, err := gate.Execute(context.Background(), identity.RequestContext{}, vo.KindChannel)
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestAuthorize_UnknownKind(t *testing.T) {
	gate := newGate(&mockResolver{}, &mockSubscriptionRepo{}, &mockPlanRepo{}, &mockCounter{})

	_, err := gate.Execute(context.Background(), sessionCtx(1), vo.ResourceKind("widgets"))
	require.Error(t, err)
	assert.True(t, errors.IsAppError(err))
}

// widget repo stubs for the chain test

type widgetSiteRepo struct {
	sid       string
	channelID uint
}

func (r *widgetSiteRepo) Create(ctx context.Context, site *channel.Site) error { return nil }

func (r *widgetSiteRepo) GetBySID(ctx context.Context, sid string) (*channel.Site, error) {
	if sid != r.sid {
		return nil, nil
	}
	site, err := channel.ReconstructSite(1, r.sid, "Widget", "example.com", r.channelID, testNow, testNow)
	if err != nil {
		return nil, err
	}
	return site, nil
}

type widgetChannelRepo struct {
	id        uint
	createdBy uint
}

func (r *widgetChannelRepo) Create(ctx context.Context, ch *channel.Channel) error { return nil }

func (r *widgetChannelRepo) GetByID(ctx context.Context, id uint) (*channel.Channel, error) {
	if id != r.id {
		return nil, nil
	}
	ch, err := channel.ReconstructChannel(r.id, "Main", "+15550001111", r.createdBy, testNow, testNow)
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func (r *widgetChannelRepo) ListByCreator(ctx context.Context, createdBy uint, limit, offset int) ([]*channel.Channel, int64, error) {
	return nil, 0, nil
}

func (r *widgetChannelRepo) CountByCreator(ctx context.Context, createdBy uint) (int64, error) {
	return 0, nil
}
