package identity

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendloop-inc/sendloop/internal/domain/channel"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type mockSiteRepo struct {
	getBySIDFn func(ctx context.Context, sid string) (*channel.Site, error)
}

func (m *mockSiteRepo) Create(ctx context.Context, site *channel.Site) error { return nil }

func (m *mockSiteRepo) GetBySID(ctx context.Context, sid string) (*channel.Site, error) {
	if m.getBySIDFn != nil {
		return m.getBySIDFn(ctx, sid)
	}
	return nil, nil
}

type mockChannelRepo struct {
	getByIDFn func(ctx context.Context, id uint) (*channel.Channel, error)
}

func (m *mockChannelRepo) Create(ctx context.Context, ch *channel.Channel) error { return nil }

func (m *mockChannelRepo) GetByID(ctx context.Context, id uint) (*channel.Channel, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockChannelRepo) ListByCreator(ctx context.Context, createdBy uint, limit, offset int) ([]*channel.Channel, int64, error) {
	return nil, 0, nil
}

func (m *mockChannelRepo) CountByCreator(ctx context.Context, createdBy uint) (int64, error) {
	return 0, nil
}

func uintPtr(v uint) *uint    { return &v }
func strPtr(s string) *string { return &s }

func testSite(t *testing.T, channelID uint) *channel.Site {
	t.Helper()
	now := time.Now()
	site, err := channel.ReconstructSite(1, "site_abc123", "Widget", "example.com", channelID, now, now)
	require.NoError(t, err)
	return site
}

func testChannel(t *testing.T, id, createdBy uint) *channel.Channel {
	t.Helper()
	now := time.Now()
	ch, err := channel.ReconstructChannel(id, "Main", "+15550001111", createdBy, now, now)
	require.NoError(t, err)
	return ch
}

func TestResolve_SessionPrincipalWins(t *testing.T) {
	resolver := NewResolver(&mockSiteRepo{}, &mockChannelRepo{}, logger.NewLogger())

	// site lookup must not run when a session principal is present
	principal, err := resolver.Resolve(context.Background(), RequestContext{
		UserID:  uintPtr(42),
		SiteSID: strPtr("site_abc123"),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), principal)
}

func TestResolve_WidgetChain(t *testing.T) {
	sites := &mockSiteRepo{
		getBySIDFn: func(ctx context.Context, sid string) (*channel.Site, error) {
			assert.Equal(t, "site_abc123", sid)
			return testSite(t, 9), nil
		},
	}
	channels := &mockChannelRepo{
		getByIDFn: func(ctx context.Context, id uint) (*channel.Channel, error) {
			assert.Equal(t, uint(9), id)
			return testChannel(t, 9, 77), nil
		},
	}

	resolver := NewResolver(sites, channels, logger.NewLogger())

	principal, err := resolver.Resolve(context.Background(), RequestContext{SiteSID: strPtr("site_abc123")})
	require.NoError(t, err)
	assert.Equal(t, uint(77), principal)
}

func TestResolve_SiteNotFound(t *testing.T) {
	resolver := NewResolver(&mockSiteRepo{}, &mockChannelRepo{}, logger.NewLogger())

	_, err := resolver.Resolve(context.Background(), RequestContext{SiteSID: strPtr("site_missing")})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestResolve_MalformedSIDSkipsLookup(t *testing.T) {
	sites := &mockSiteRepo{
		getBySIDFn: func(ctx context.Context, sid string) (*channel.Site, error) {
			t.Fatal("lookup must not run for an unprefixed SID")
			return nil, nil
		},
	}

	resolver := NewResolver(sites, &mockChannelRepo{}, logger.NewLogger())

	_, err := resolver.Resolve(context.Background(), RequestContext{SiteSID: strPtr("abc123")})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestResolve_ChannelMissingIsErrorNotEmptyOwner(t *testing.T) {
	sites := &mockSiteRepo{
		getBySIDFn: func(ctx context.Context, sid string) (*channel.Site, error) {
			return testSite(t, 9), nil
		},
	}

	resolver := NewResolver(sites, &mockChannelRepo{}, logger.NewLogger())

	_, err := resolver.Resolve(context.Background(), RequestContext{SiteSID: strPtr("site_abc123")})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestResolve_NoCredentials(t *testing.T) {
	resolver := NewResolver(&mockSiteRepo{}, &mockChannelRepo{}, logger.NewLogger())

	_, err := resolver.Resolve(context.Background(), RequestContext{})
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestResolve_StorageErrorPropagates(t *testing.T) {
	sites := &mockSiteRepo{
		getBySIDFn: func(ctx context.Context, sid string) (*channel.Site, error) {
			return nil, fmt.Errorf("connection refused")
		},
	}

	resolver := NewResolver(sites, &mockChannelRepo{}, logger.NewLogger())

	_, err := resolver.Resolve(context.Background(), RequestContext{SiteSID: strPtr("site_abc123")})
	require.Error(t, err)
	assert.False(t, errors.IsNotFoundError(err))
}
