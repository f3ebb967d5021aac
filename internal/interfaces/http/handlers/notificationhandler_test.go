package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendloop-inc/sendloop/internal/application/notification/dto"
	"github.com/sendloop-inc/sendloop/internal/interfaces/http/handlers/testutil"
	"github.com/sendloop-inc/sendloop/internal/shared/constants"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
)

type mockNotificationService struct {
	createFn   func(ctx context.Context, req dto.CreateNotificationRequest, createdBy uint) (*dto.NotificationResponse, error)
	dispatchFn func(ctx context.Context, id uint) (*dto.DispatchResponse, error)
	getFn      func(ctx context.Context, id uint) (*dto.NotificationResponse, error)
	listFn     func(ctx context.Context, createdBy uint, req dto.ListNotificationsRequest) ([]*dto.NotificationResponse, int64, error)
}

func (m *mockNotificationService) CreateNotification(ctx context.Context, req dto.CreateNotificationRequest, createdBy uint) (*dto.NotificationResponse, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req, createdBy)
	}
	return nil, nil
}

func (m *mockNotificationService) DispatchNotification(ctx context.Context, id uint) (*dto.DispatchResponse, error) {
	if m.dispatchFn != nil {
		return m.dispatchFn(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationService) GetNotification(ctx context.Context, id uint) (*dto.NotificationResponse, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationService) ListNotifications(ctx context.Context, createdBy uint, req dto.ListNotificationsRequest) ([]*dto.NotificationResponse, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, createdBy, req)
	}
	return nil, 0, nil
}

func TestNotificationHandler_Create_Success(t *testing.T) {
	svc := &mockNotificationService{
		createFn: func(ctx context.Context, req dto.CreateNotificationRequest, createdBy uint) (*dto.NotificationResponse, error) {
			assert.Equal(t, uint(7), createdBy)
			assert.Equal(t, "all", req.TargetType)
			return &dto.NotificationResponse{ID: 1, Title: req.Title, Status: "draft"}, nil
		},
	}
	handler := NewNotificationHandler(svc, testutil.NewMockLogger())

	reqBody := dto.CreateNotificationRequest{
		Title:      "Maintenance window",
		Message:    "We will be down briefly",
		TargetType: "all",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/notifications", reqBody)
	testutil.SetAuthContext(c, 7, constants.RoleAdmin)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestNotificationHandler_Create_InvalidTargetType(t *testing.T) {
	handler := NewNotificationHandler(&mockNotificationService{}, testutil.NewMockLogger())

	reqBody := map[string]string{
		"title":       "Broken",
		"message":     "bad target",
		"target_type": "everyone",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/notifications", reqBody)
	testutil.SetAuthContext(c, 7, constants.RoleAdmin)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationHandler_Create_MalformedBody(t *testing.T) {
	handler := NewNotificationHandler(&mockNotificationService{}, testutil.NewMockLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader("{not json"))
	c.Request.Header.Set("Content-Type", "application/json")
	testutil.SetAuthContext(c, 7, constants.RoleAdmin)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationHandler_Create_Unauthenticated(t *testing.T) {
	handler := NewNotificationHandler(&mockNotificationService{}, testutil.NewMockLogger())

	reqBody := dto.CreateNotificationRequest{
		Title:      "No auth",
		Message:    "no session",
		TargetType: "all",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/notifications", reqBody)

	handler.Create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNotificationHandler_Dispatch_Success(t *testing.T) {
	sentAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &mockNotificationService{
		dispatchFn: func(ctx context.Context, id uint) (*dto.DispatchResponse, error) {
			assert.Equal(t, uint(12), id)
			return &dto.DispatchResponse{NotificationID: 12, RecipientCount: 3, SentAt: sentAt}, nil
		},
	}
	handler := NewNotificationHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/notifications/12/dispatch", nil)
	testutil.SetURLParam(c, "id", "12")

	handler.Dispatch(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestNotificationHandler_Dispatch_AlreadySent(t *testing.T) {
	svc := &mockNotificationService{
		dispatchFn: func(ctx context.Context, id uint) (*dto.DispatchResponse, error) {
			return nil, errors.NewConflictError("notification has already been dispatched")
		},
	}
	handler := NewNotificationHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/notifications/12/dispatch", nil)
	testutil.SetURLParam(c, "id", "12")

	handler.Dispatch(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestNotificationHandler_Get_NotFound(t *testing.T) {
	svc := &mockNotificationService{
		getFn: func(ctx context.Context, id uint) (*dto.NotificationResponse, error) {
			return nil, errors.NewNotFoundError("notification not found")
		},
	}
	handler := NewNotificationHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/notifications/99", nil)
	testutil.SetURLParam(c, "id", "99")

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationHandler_List_Success(t *testing.T) {
	svc := &mockNotificationService{
		listFn: func(ctx context.Context, createdBy uint, req dto.ListNotificationsRequest) ([]*dto.NotificationResponse, int64, error) {
			assert.Equal(t, uint(7), createdBy)
			return []*dto.NotificationResponse{{ID: 1}, {ID: 2}}, 2, nil
		},
	}
	handler := NewNotificationHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/notifications", nil)
	testutil.SetAuthContext(c, 7, constants.RoleAdmin)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
