package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendloop-inc/sendloop/internal/application/resource/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/channel"
	"github.com/sendloop-inc/sendloop/internal/domain/contact"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type mockContactRepo struct {
	createFn func(ctx context.Context, c *contact.Contact) error
}

func (m *mockContactRepo) Create(ctx context.Context, c *contact.Contact) error {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	return c.SetID(100)
}

func (m *mockContactRepo) GetByID(ctx context.Context, id uint) (*contact.Contact, error) {
	return nil, nil
}

func (m *mockContactRepo) ListByChannel(ctx context.Context, channelID uint, limit, offset int) ([]*contact.Contact, int64, error) {
	return nil, 0, nil
}

func (m *mockContactRepo) CountByChannelOwner(ctx context.Context, ownerID uint) (int64, error) {
	return 0, nil
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

func ownedChannel(t *testing.T, id, createdBy uint) *channel.Channel {
	t.Helper()
	now := time.Now()
	ch, err := channel.ReconstructChannel(id, "support", "+15551230000", createdBy, now, now)
	require.NoError(t, err)
	return ch
}

func TestCreateContact_OwnChannel(t *testing.T) {
	channels := &mockChannelRepo{
		getByIDFn: func(ctx context.Context, id uint) (*channel.Channel, error) {
			return ownedChannel(t, id, 7), nil
		},
	}
	uc := NewCreateContactUseCase(&mockContactRepo{}, channels, &mockSiteRepo{}, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), 3, 7, dto.CreateContactRequest{Phone: "+15550001111", Name: "Ada"})

	require.NoError(t, err)
	assert.Equal(t, uint(100), resp.ID)
	assert.Equal(t, uint(3), resp.ChannelID)
	assert.Equal(t, "+15550001111", resp.Phone)
}

func TestCreateContact_ForeignChannelForbidden(t *testing.T) {
	channels := &mockChannelRepo{
		getByIDFn: func(ctx context.Context, id uint) (*channel.Channel, error) {
			return ownedChannel(t, id, 99), nil
		},
	}
	uc := NewCreateContactUseCase(&mockContactRepo{}, channels, &mockSiteRepo{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), 3, 7, dto.CreateContactRequest{Phone: "+15550001111"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestCreateContact_MissingChannel(t *testing.T) {
	uc := NewCreateContactUseCase(&mockContactRepo{}, &mockChannelRepo{}, &mockSiteRepo{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), 3, 7, dto.CreateContactRequest{Phone: "+15550001111"})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateContact_WidgetSiteResolvesChannel(t *testing.T) {
	now := time.Now()
	site, err := channel.ReconstructSite(5, "st_abc123", "landing", "example.com", 42, now, now)
	require.NoError(t, err)

	sites := &mockSiteRepo{
		getBySIDFn: func(ctx context.Context, sid string) (*channel.Site, error) {
			assert.Equal(t, "st_abc123", sid)
			return site, nil
		},
	}
	uc := NewCreateContactUseCase(&mockContactRepo{}, &mockChannelRepo{}, sites, logger.NewLogger())

	resp, err := uc.ExecuteForSite(context.Background(), "st_abc123", dto.CreateContactRequest{Phone: "+15550002222"})

	require.NoError(t, err)
	assert.Equal(t, uint(42), resp.ChannelID)
}

func TestCreateContact_WidgetUnknownSite(t *testing.T) {
	uc := NewCreateContactUseCase(&mockContactRepo{}, &mockChannelRepo{}, &mockSiteRepo{}, logger.NewLogger())

	_, err := uc.ExecuteForSite(context.Background(), "st_missing", dto.CreateContactRequest{Phone: "+15550002222"})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
