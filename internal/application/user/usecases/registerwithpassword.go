package usecases

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/application/user/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/user"
	"github.com/sendloop-inc/sendloop/internal/shared/constants"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type RegisterWithPasswordUseCase struct {
	users      user.Repository
	bcryptCost int
	logger     logger.Interface
}

func NewRegisterWithPasswordUseCase(users user.Repository, bcryptCost int, logger logger.Interface) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		users:      users,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.GetByEmail(ctx, req.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("email is already registered")
	}

	newUser, err := user.NewUser(req.Email, req.Name, req.Password, constants.RoleUser, uc.bcryptCost)
	if err != nil {
		uc.logger.Warnw("invalid registration", "error", err)
		return nil, errors.NewValidationError(fmt.Sprintf("invalid registration: %v", err))
	}

	if err := uc.users.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to persist user", "error", err)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID())
	return dto.ToUserResponse(newUser), nil
}
