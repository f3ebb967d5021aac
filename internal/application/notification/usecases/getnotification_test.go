package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendloop-inc/sendloop/internal/domain/notification"
	vo "github.com/sendloop-inc/sendloop/internal/domain/notification/valueobjects"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
	"github.com/sendloop-inc/sendloop/internal/shared/services/markdown"
)

func sentNotification(t *testing.T) *notification.Notification {
	t.Helper()
	sentAt := dispatchNow
	n, err := notification.ReconstructNotification(
		10, "Maintenance window", "Service pauses at **midnight**", "general",
		vo.TargetAll, nil, 1,
		vo.StatusSent, &sentAt, dispatchNow, dispatchNow,
	)
	require.NoError(t, err)
	return n
}

func TestGetNotification_SentIncludesDeliveredCount(t *testing.T) {
	notifications := &mockNotificationRepo{
		getByIDFn: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return sentNotification(t), nil
		},
	}
	sent := &mockSentRepo{
		countFn: func(ctx context.Context, notificationID uint) (int64, error) {
			assert.Equal(t, uint(10), notificationID)
			return 3, nil
		},
	}

	uc := NewGetNotificationUseCase(notifications, sent, markdown.NewService(), logger.NewLogger())

	resp, err := uc.Execute(context.Background(), 10)
	require.NoError(t, err)

	require.NotNil(t, resp.DeliveredCount)
	assert.Equal(t, int64(3), *resp.DeliveredCount)
	assert.Contains(t, resp.MessageHTML, "<strong>midnight</strong>")
}

func TestGetNotification_DraftHasNoDeliveredCount(t *testing.T) {
	notifications := &mockNotificationRepo{
		getByIDFn: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return draftNotification(t, vo.TargetAll, nil), nil
		},
	}

	uc := NewGetNotificationUseCase(notifications, &mockSentRepo{}, markdown.NewService(), logger.NewLogger())

	resp, err := uc.Execute(context.Background(), 10)
	require.NoError(t, err)
	assert.Nil(t, resp.DeliveredCount)
}

func TestGetNotification_Missing(t *testing.T) {
	uc := NewGetNotificationUseCase(&mockNotificationRepo{}, &mockSentRepo{}, markdown.NewService(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
