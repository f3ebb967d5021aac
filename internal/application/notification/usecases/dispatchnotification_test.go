package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendloop-inc/sendloop/internal/domain/notification"
	vo "github.com/sendloop-inc/sendloop/internal/domain/notification/valueobjects"
	"github.com/sendloop-inc/sendloop/internal/domain/user"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

var dispatchNow = time.Date(2026, 7, 15, 9, 30, 0, 0, time.UTC)

// =====================================================================
// Mocks
// =====================================================================

type mockNotificationRepo struct {
	getByIDFn func(ctx context.Context, id uint) (*notification.Notification, error)
	updateFn  func(ctx context.Context, n *notification.Notification) error
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	return nil
}

func (m *mockNotificationRepo) Update(ctx context.Context, n *notification.Notification) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepo) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepo) ListByCreator(ctx context.Context, createdBy uint, limit, offset int) ([]*notification.Notification, int64, error) {
	return nil, 0, nil
}

type mockSentRepo struct {
	bulkCreateFn func(ctx context.Context, records []*notification.SentNotification) error
	countFn      func(ctx context.Context, notificationID uint) (int64, error)
}

func (m *mockSentRepo) BulkCreate(ctx context.Context, records []*notification.SentNotification) error {
	if m.bulkCreateFn != nil {
		return m.bulkCreateFn(ctx, records)
	}
	return nil
}

func (m *mockSentRepo) CountByNotification(ctx context.Context, notificationID uint) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, notificationID)
	}
	return 0, nil
}

type mockUserRepo struct {
	findAllFn   func(ctx context.Context) ([]*user.User, error)
	findByIDsFn func(ctx context.Context, ids []uint) ([]*user.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*user.User, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.findByIDsFn != nil {
		return m.findByIDsFn(ctx, ids)
	}
	return nil, nil
}

type mockPushGateway struct {
	pushFn func(ctx context.Context, token string, payload PushPayload) error
	calls  []string
}

func (m *mockPushGateway) Push(ctx context.Context, token string, payload PushPayload) error {
	m.calls = append(m.calls, token)
	if m.pushFn != nil {
		return m.pushFn(ctx, token, payload)
	}
	return nil
}

// =====================================================================
// Fixtures
// =====================================================================

func draftNotification(t *testing.T, targetType vo.TargetType, targetIDs []uint) *notification.Notification {
	t.Helper()
	n, err := notification.ReconstructNotification(
		10, "Maintenance window", "Service pauses at midnight", "general",
		targetType, targetIDs, 1,
		vo.StatusDraft, nil, dispatchNow, dispatchNow,
	)
	require.NoError(t, err)
	return n
}

func testUser(t *testing.T, id uint, pushToken *string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(
		id, fmt.Sprintf("user%d@example.com", id), "Test User", "hash", "user",
		nil, pushToken, "active", dispatchNow, dispatchNow,
	)
	require.NoError(t, err)
	return u
}

func strPtr(s string) *string { return &s }

func newDispatch(notifications *mockNotificationRepo, sent *mockSentRepo, users *mockUserRepo, push *mockPushGateway) *DispatchNotificationUseCase {
	return NewDispatchNotificationUseCase(notifications, sent, users, push, logger.NewLogger()).
		WithClock(func() time.Time { return dispatchNow })
}

// =====================================================================
// Tests
// =====================================================================

func TestDispatch_AllUsersFanOut(t *testing.T) {
	notifications := &mockNotificationRepo{
		getByIDFn: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return draftNotification(t, vo.TargetAll, nil), nil
		},
	}
	users := &mockUserRepo{
		findAllFn: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{
				testUser(t, 1, strPtr("tok-1")),
				testUser(t, 2, nil),
				testUser(t, 3, strPtr("tok-3")),
			}, nil
		},
	}

	var persisted []*notification.SentNotification
	sent := &mockSentRepo{
		bulkCreateFn: func(ctx context.Context, records []*notification.SentNotification) error {
			persisted = records
			return nil
		},
	}
	push := &mockPushGateway{}

	uc := newDispatch(notifications, sent, users, push)

	resp, err := uc.Execute(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.RecipientCount)
	assert.Equal(t, dispatchNow, resp.SentAt)
	require.Len(t, persisted, 3)
	for i, wantUserID := range []uint{1, 2, 3} {
		assert.Equal(t, uint(10), persisted[i].NotificationID())
		assert.Equal(t, wantUserID, persisted[i].UserID())
	}
	// user 2 has no push token and gets no push attempt
	assert.Equal(t, []string{"tok-1", "tok-3"}, push.calls)
}

func TestDispatch_PushFailuresAreSwallowed(t *testing.T) {
	notifications := &mockNotificationRepo{
		getByIDFn: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return draftNotification(t, vo.TargetAll, nil), nil
		},
	}
	users := &mockUserRepo{
		findAllFn: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{
				testUser(t, 1, strPtr("tok-1")),
				testUser(t, 2, strPtr("tok-2")),
			}, nil
		},
	}
	sent := &mockSentRepo{}
	push := &mockPushGateway{
		pushFn: func(ctx context.Context, token string, payload PushPayload) error {
			return fmt.Errorf("gateway unavailable")
		},
	}

	var updated *notification.Notification
	notifications.updateFn = func(ctx context.Context, n *notification.Notification) error {
		updated = n
		return nil
	}

	uc := newDispatch(notifications, sent, users, push)

	resp, err := uc.Execute(context.Background(), 10)
	require.NoError(t, err)

	// every recipient counted, notification still marked sent
	assert.Equal(t, 2, resp.RecipientCount)
	assert.Len(t, push.calls, 2)
	require.NotNil(t, updated)
	assert.True(t, updated.IsSent())
	require.NotNil(t, updated.SentAt())
	assert.Equal(t, dispatchNow, *updated.SentAt())
}

func TestDispatch_SpecificDropsUnmatchedIDs(t *testing.T) {
	notifications := &mockNotificationRepo{
		getByIDFn: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return draftNotification(t, vo.TargetSpecific, []uint{5, 6, 999}), nil
		},
	}
	users := &mockUserRepo{
		findByIDsFn: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			assert.Equal(t, []uint{5, 6, 999}, ids)
			// 999 has no matching row
			return []*user.User{
				testUser(t, 5, strPtr("tok-5")),
				testUser(t, 6, strPtr("tok-6")),
			}, nil
		},
	}
	sent := &mockSentRepo{}
	push := &mockPushGateway{}

	uc := newDispatch(notifications, sent, users, push)

	resp, err := uc.Execute(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.RecipientCount)
}

func TestDispatch_SingleTarget(t *testing.T) {
	notifications := &mockNotificationRepo{
		getByIDFn: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return draftNotification(t, vo.TargetSingle, []uint{7}), nil
		},
	}
	users := &mockUserRepo{
		findByIDsFn: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			assert.Equal(t, []uint{7}, ids)
			return []*user.User{testUser(t, 7, strPtr("tok-7"))}, nil
		},
	}
	sent := &mockSentRepo{}
	push := &mockPushGateway{}

	uc := newDispatch(notifications, sent, users, push)

	resp, err := uc.Execute(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.RecipientCount)
	assert.Equal(t, []string{"tok-7"}, push.calls)
}

func TestDispatch_SingleWithoutTargetRejected(t *testing.T) {
	// Shape is enforced at create time; a malformed stored row must still
	// fail dispatch instead of fanning out to nobody.
	notifications := &mockNotificationRepo{
		getByIDFn: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return draftNotification(t, vo.TargetSingle, nil), nil
		},
	}
	sent := &mockSentRepo{
		bulkCreateFn: func(ctx context.Context, records []*notification.SentNotification) error {
			t.Fatal("no delivery records may be written for a malformed target")
			return nil
		},
	}
	push := &mockPushGateway{}

	uc := newDispatch(notifications, sent, &mockUserRepo{}, push)

	_, err := uc.Execute(context.Background(), 10)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, push.calls)
}

func TestDispatch_NotFound(t *testing.T) {
	uc := newDispatch(&mockNotificationRepo{}, &mockSentRepo{}, &mockUserRepo{}, &mockPushGateway{})

	_, err := uc.Execute(context.Background(), 404)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDispatch_AlreadySentRejected(t *testing.T) {
	sentAt := dispatchNow.Add(-time.Hour)
	notifications := &mockNotificationRepo{
		getByIDFn: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return notification.ReconstructNotification(
				10, "Done", "Already out", "general",
				vo.TargetAll, nil, 1,
				vo.StatusSent, &sentAt, dispatchNow, dispatchNow,
			)
		},
	}
	users := &mockUserRepo{}
	push := &mockPushGateway{}

	uc := newDispatch(notifications, &mockSentRepo{}, users, push)

	_, err := uc.Execute(context.Background(), 10)
	assert.True(t, errors.IsConflictError(err))
	assert.Empty(t, push.calls)
}

func TestDispatch_StorageFailureAborts(t *testing.T) {
	notifications := &mockNotificationRepo{
		getByIDFn: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return draftNotification(t, vo.TargetAll, nil), nil
		},
	}
	users := &mockUserRepo{
		findAllFn: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{testUser(t, 1, strPtr("tok-1"))}, nil
		},
	}
	sent := &mockSentRepo{
		bulkCreateFn: func(ctx context.Context, records []*notification.SentNotification) error {
			return fmt.Errorf("insert failed")
		},
	}
	push := &mockPushGateway{}

	uc := newDispatch(notifications, sent, users, push)

	_, err := uc.Execute(context.Background(), 10)
	require.Error(t, err)
	// no push happens when delivery records cannot be persisted
	assert.Empty(t, push.calls)
}
