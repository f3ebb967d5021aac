package usecases

import (
	"context"
	"fmt"
	"sort"

	"github.com/sendloop-inc/sendloop/internal/application/user/dto"
	"github.com/sendloop-inc/sendloop/internal/domain/permission"
	"github.com/sendloop-inc/sendloop/internal/domain/user"
	"github.com/sendloop-inc/sendloop/internal/shared/errors"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

type GetCapabilitiesUseCase struct {
	users  user.Repository
	logger logger.Interface
}

func NewGetCapabilitiesUseCase(users user.Repository, logger logger.Interface) *GetCapabilitiesUseCase {
	return &GetCapabilitiesUseCase{
		users:  users,
		logger: logger,
	}
}

// Execute resolves the capability set for a user from their role and stored
// permission list. The result is sorted for stable responses.
func (uc *GetCapabilitiesUseCase) Execute(ctx context.Context, userID uint) (*dto.CapabilitiesResponse, error) {
	existing, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	capabilities := permission.Resolve(existing.Role(), existing.Permissions())
	names := capabilities.Names()
	sort.Strings(names)

	return &dto.CapabilitiesResponse{
		Role:         existing.Role(),
		Capabilities: names,
	}, nil
}
