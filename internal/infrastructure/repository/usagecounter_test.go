package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendloop-inc/sendloop/internal/domain/automation"
	"github.com/sendloop-inc/sendloop/internal/domain/campaign"
	"github.com/sendloop-inc/sendloop/internal/domain/channel"
	"github.com/sendloop-inc/sendloop/internal/domain/contact"
	vo "github.com/sendloop-inc/sendloop/internal/domain/subscription/valueobjects"
)

type stubChannelRepo struct {
	channel.Repository
	count int64
}

func (s *stubChannelRepo) CountByCreator(ctx context.Context, createdBy uint) (int64, error) {
	return s.count, nil
}

type stubContactRepo struct {
	contact.Repository
	count   int64
	ownerID uint
}

func (s *stubContactRepo) CountByChannelOwner(ctx context.Context, ownerID uint) (int64, error) {
	s.ownerID = ownerID
	return s.count, nil
}

type stubAutomationRepo struct {
	automation.Repository
	count int64
}

func (s *stubAutomationRepo) CountByCreator(ctx context.Context, createdBy uint) (int64, error) {
	return s.count, nil
}

type stubCampaignRepo struct {
	campaign.Repository
	count int64
}

func (s *stubCampaignRepo) CountByCreator(ctx context.Context, createdBy uint) (int64, error) {
	return s.count, nil
}

func TestUsageCounter_DispatchesByKind(t *testing.T) {
	contacts := &stubContactRepo{count: 42}
	counter := NewUsageCounter(
		&stubChannelRepo{count: 3},
		contacts,
		&stubAutomationRepo{count: 7},
		&stubCampaignRepo{count: 9},
	)

	tests := []struct {
		kind vo.ResourceKind
		want int64
	}{
		{vo.KindChannel, 3},
		{vo.KindContacts, 42},
		{vo.KindAutomation, 7},
		{vo.KindCampaign, 9},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := counter.Count(context.Background(), tt.kind, 5)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	// contacts are counted through the channel owner, so the owner id
	// must be forwarded unchanged
	assert.Equal(t, uint(5), contacts.ownerID)
}

func TestUsageCounter_UnknownKind(t *testing.T) {
	counter := NewUsageCounter(&stubChannelRepo{}, &stubContactRepo{}, &stubAutomationRepo{}, &stubCampaignRepo{})

	_, err := counter.Count(context.Background(), vo.ResourceKind("widgets"), 1)
	assert.Error(t, err)
}
