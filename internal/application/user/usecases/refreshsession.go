package usecases

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/application/user/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/user"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type RefreshSessionUseCase struct {
	users  user.Repository
	tokens TokenIssuer
	logger logger.Interface
}

func NewRefreshSessionUseCase(users user.Repository, tokens TokenIssuer, logger logger.Interface) *RefreshSessionUseCase {
	return &RefreshSessionUseCase{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Execute exchanges a valid refresh token for a fresh token pair. The user is
// re-loaded so role changes and deactivations take effect on rotation.
func (uc *RefreshSessionUseCase) Execute(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error) {
	userID, err := uc.tokens.VerifyRefresh(req.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	existing, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}
	if !existing.IsActive() {
		return nil, errors.NewForbiddenError("account is not active")
	}

	token, expiresIn, err := uc.tokens.Issue(existing.ID(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", existing.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	refresh, err := uc.tokens.IssueRefresh(existing.ID(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue refresh token", "user_id", existing.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Debugw("session refreshed", "user_id", existing.ID())
	return &dto.LoginResponse{
		AccessToken:  token,
		RefreshToken: refresh,
		ExpiresIn:    expiresIn,
		User:         dto.ToUserResponse(existing),
	}, nil
}
