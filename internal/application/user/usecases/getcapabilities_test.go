package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendloop-inc/sendloop/internal/domain/permission"
	"github.com/sendloop-inc/sendloop/internal/domain/user"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type mockUserRepo struct {
	getByIDFn    func(ctx context.Context, id uint) (*user.User, error)
	getByEmailFn func(ctx context.Context, email string) (*user.User, error)
	updateFn     func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepo) FindByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
}

func reconstructedUser(t *testing.T, role string, permissions []string) *user.User {
	t.Helper()
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	u, err := user.ReconstructUser(1, "ops@example.com", "Ops", "hash", role, permissions, nil, "active", now, now)
	require.NoError(t, err)
	return u
}

func TestGetCapabilities_AdminGetsFullRegistry(t *testing.T) {
	repo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
			return reconstructedUser(t, "admin", nil), nil
		},
	}

	uc := NewGetCapabilitiesUseCase(repo, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "admin", resp.Role)
	assert.ElementsMatch(t, permission.Registry(), resp.Capabilities)
}

func TestGetCapabilities_UserGetsStoredList(t *testing.T) {
	repo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
			return reconstructedUser(t, "user", []string{
				permission.ManageChannels,
				permission.ViewReports,
			}), nil
		},
	}

	uc := NewGetCapabilitiesUseCase(repo, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []string{permission.ManageChannels, permission.ViewReports}, resp.Capabilities)
}

func TestGetCapabilities_UserNotFound(t *testing.T) {
	uc := NewGetCapabilitiesUseCase(&mockUserRepo{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), 99)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetCapabilities_StorageErrorPropagates(t *testing.T) {
	repo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, fmt.Errorf("connection reset")
		},
	}

	uc := NewGetCapabilitiesUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, errors.IsAppError(err))
}
