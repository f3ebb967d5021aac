package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/sendloop-inc/sendloop/internal/domain/notification/valueobjects"
)

func TestNewNotification_Defaults(t *testing.T) {
	n, err := NewNotification("Maintenance", "We will be down briefly.", "", vo.TargetAll, nil, 1)
	require.NoError(t, err)

	assert.Equal(t, DefaultType, n.Type())
	assert.Equal(t, vo.StatusDraft, n.Status())
	assert.Nil(t, n.SentAt())
	assert.Empty(t, n.TargetIDs())
}

func TestNewNotification_TargetShapeValidation(t *testing.T) {
	tests := []struct {
		name       string
		targetType vo.TargetType
		targetIDs  []uint
		wantErr    bool
	}{
		{"all with no ids", vo.TargetAll, nil, false},
		{"all ignores extra ids", vo.TargetAll, []uint{1, 2}, false},
		{"single with exactly one id", vo.TargetSingle, []uint{5}, false},
		{"single with no ids is rejected", vo.TargetSingle, nil, true},
		{"single with two ids is rejected", vo.TargetSingle, []uint{5, 6}, true},
		{"specific with ids", vo.TargetSpecific, []uint{5, 6}, false},
		{"specific with no ids is rejected", vo.TargetSpecific, []uint{}, true},
		{"unknown target type is rejected", vo.TargetType("broadcast"), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNotification("t", "m", "", tt.targetType, tt.targetIDs, 1)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotification_MarkSent(t *testing.T) {
	n, err := NewNotification("t", "m", "", vo.TargetAll, nil, 1)
	require.NoError(t, err)

	sentAt := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, n.MarkSent(sentAt))

	assert.True(t, n.IsSent())
	require.NotNil(t, n.SentAt())
	assert.Equal(t, sentAt, *n.SentAt())

	// the transition happens exactly once
	assert.Error(t, n.MarkSent(sentAt.Add(time.Hour)))
	assert.Equal(t, sentAt, *n.SentAt())
}

func TestNewSentNotification(t *testing.T) {
	rec, err := NewSentNotification(10, 20)
	require.NoError(t, err)
	assert.Equal(t, uint(10), rec.NotificationID())
	assert.Equal(t, uint(20), rec.UserID())

	_, err = NewSentNotification(0, 20)
	assert.Error(t, err)

	_, err = NewSentNotification(10, 0)
	assert.Error(t, err)
}
