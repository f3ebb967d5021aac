package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendloop-inc/sendloop/internal/application/notification/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/notification"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type creatingNotificationRepo struct {
	mockNotificationRepo
	created *notification.Notification
}

func (m *creatingNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	if err := n.SetID(42); err != nil {
		return err
	}
	m.created = n
	return nil
}

func TestCreateNotification_Draft(t *testing.T) {
	repo := &creatingNotificationRepo{}
	uc := NewCreateNotificationUseCase(repo, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), dto.CreateNotificationRequest{
		Title:      "Welcome aboard",
		Message:    "Thanks for signing up",
		TargetType: "all",
	}, 3)
	require.NoError(t, err)

	assert.Equal(t, uint(42), resp.ID)
	assert.Equal(t, "draft", resp.Status)
	assert.Equal(t, "general", resp.Type)
	assert.Equal(t, uint(3), resp.CreatedBy)
	assert.Nil(t, resp.SentAt)
	require.NotNil(t, repo.created)
}

func TestCreateNotification_SingleRequiresOneTarget(t *testing.T) {
	uc := NewCreateNotificationUseCase(&creatingNotificationRepo{}, logger.NewLogger())

	tests := []struct {
		name      string
		targetIDs []uint
	}{
		{"no targets", nil},
		{"two targets", []uint{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), dto.CreateNotificationRequest{
				Title:      "Ping",
				Message:    "Hello",
				TargetType: "single",
				TargetIDs:  tt.targetIDs,
			}, 3)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestCreateNotification_SpecificRequiresTargets(t *testing.T) {
	uc := NewCreateNotificationUseCase(&creatingNotificationRepo{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.CreateNotificationRequest{
		Title:      "Ping",
		Message:    "Hello",
		TargetType: "specific",
	}, 3)
	assert.True(t, errors.IsValidationError(err))
}
