package usecases

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/application/user/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/user"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type LoginWithPasswordUseCase struct {
	users  user.Repository
	tokens TokenIssuer
	logger logger.Interface
}

func NewLoginWithPasswordUseCase(users user.Repository, tokens TokenIssuer, logger logger.Interface) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	existing, err := uc.users.GetByEmail(ctx, req.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// generic error on both unknown email and bad password
	if existing == nil || !existing.VerifyPassword(req.Password) {
		return nil, errors.NewUnauthorizedError("invalid email or password")
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

	uc.logger.Infow("user logged in", "user_id", existing.ID())
	return &dto.LoginResponse{
		AccessToken:  token,
		RefreshToken: refresh,
		ExpiresIn:    expiresIn,
		User:         dto.ToUserResponse(existing),
	}, nil
}
