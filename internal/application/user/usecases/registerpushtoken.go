package usecases

import (
	"context"
	"fmt"

	"github.com/sendloop-inc/sendloop/internal/domain/user"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type RegisterPushTokenUseCase struct {
	users  user.Repository
	logger logger.Interface
}

func NewRegisterPushTokenUseCase(users user.Repository, logger logger.Interface) *RegisterPushTokenUseCase {
	return &RegisterPushTokenUseCase{
		users:  users,
		logger: logger,
	}
}

// Execute stores the device token used for notification push delivery.
// An empty token clears the registration.
func (uc *RegisterPushTokenUseCase) Execute(ctx context.Context, userID uint, token string) error {
	existing, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return errors.NewNotFoundError("user not found")
	}

	if token == "" {
		existing.ClearPushToken()
	} else if err := existing.RegisterPushToken(token); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.users.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to save push token", "user_id", userID, "error", err)
		return fmt.Errorf("failed to save push token: %w", err)
	}

	uc.logger.Infow("push token updated", "user_id", userID)
	return nil
}
