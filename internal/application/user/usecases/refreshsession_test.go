package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendloop-inc/sendloop/internal/application/user/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/user"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

func TestRefreshSession_Success(t *testing.T) {
	account, err := user.NewUser("ops@example.com", "Ops", "s3cretpass", "user", 4)
	require.NoError(t, err)
	require.NoError(t, account.SetID(9))

	repo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
			assert.Equal(t, uint(9), id)
			return account, nil
		},
	}
	tokens := &mockTokenIssuer{
		verifyRefreshFn: func(token string) (uint, error) {
			assert.Equal(t, "old-refresh", token)
			return 9, nil
		},
		issueFn: func(userID uint, role string) (string, int64, error) {
			return "new-access", 7200, nil
		},
		issueRefreshFn: func(userID uint, role string) (string, error) {
			return "new-refresh", nil
		},
	}

	uc := NewRefreshSessionUseCase(repo, tokens, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), dto.RefreshRequest{RefreshToken: "old-refresh"})
	require.NoError(t, err)

	assert.Equal(t, "new-access", resp.AccessToken)
	assert.Equal(t, "new-refresh", resp.RefreshToken)
	assert.Equal(t, uint(9), resp.User.ID)
}

func TestRefreshSession_InvalidToken(t *testing.T) {
	tokens := &mockTokenIssuer{
		verifyRefreshFn: func(token string) (uint, error) {
			return 0, fmt.Errorf("not a refresh token")
		},
	}

	uc := NewRefreshSessionUseCase(&mockUserRepo{}, tokens, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.RefreshRequest{RefreshToken: "bogus"})
	require.Error(t, err)
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestRefreshSession_UserGone(t *testing.T) {
	repo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, nil
		},
	}

	uc := NewRefreshSessionUseCase(repo, &mockTokenIssuer{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.RefreshRequest{RefreshToken: "orphaned"})
	require.Error(t, err)
	assert.True(t, errors.IsUnauthorizedError(err))
}
