package user

import (
	"context"

	"github.com/sendloop-inc/sendloop/internal/application/user/dto"
	"github.com/sendloop-inc/sendloop/internal/application/user/usecases"
	domainUser "github.com/sendloop-inc/sendloop/internal/domain/user"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

// Service is the application service that orchestrates account use cases.
type Service struct {
	registerUC     *usecases.RegisterWithPasswordUseCase
	loginUC        *usecases.LoginWithPasswordUseCase
	refreshUC      *usecases.RefreshSessionUseCase
	capabilitiesUC *usecases.GetCapabilitiesUseCase
	pushTokenUC    *usecases.RegisterPushTokenUseCase
	logger         logger.Interface
}

func NewService(
	users domainUser.Repository,
	tokens usecases.TokenIssuer,
	bcryptCost int,
	logger logger.Interface,
) *Service {
	return &Service{
		registerUC:     usecases.NewRegisterWithPasswordUseCase(users, bcryptCost, logger),
		loginUC:        usecases.NewLoginWithPasswordUseCase(users, tokens, logger),
		refreshUC:      usecases.NewRefreshSessionUseCase(users, tokens, logger),
		capabilitiesUC: usecases.NewGetCapabilitiesUseCase(users, logger),
		pushTokenUC:    usecases.NewRegisterPushTokenUseCase(users, logger),
		logger:         logger,
	}
}

// Register creates a new account with the default role.
func (s *Service) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	return s.registerUC.Execute(ctx, req)
}

// Login authenticates by email and password and issues an access token.
func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginUC.Execute(ctx, req)
}

// Refresh exchanges a refresh token for a new token pair.
func (s *Service) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error) {
	return s.refreshUC.Execute(ctx, req)
}

// GetCapabilities resolves the caller's capability set.
func (s *Service) GetCapabilities(ctx context.Context, userID uint) (*dto.CapabilitiesResponse, error) {
	return s.capabilitiesUC.Execute(ctx, userID)
}

// RegisterPushToken stores or clears the caller's push device token.
func (s *Service) RegisterPushToken(ctx context.Context, userID uint, token string) error {
	return s.pushTokenUC.Execute(ctx, userID, token)
}
