// Package resource wires the application services for quota-bound resources:
// channels, widget sites, contacts, automations and campaigns.
package resource

import (
	"context"

	"github.com/sendloop-inc/sendloop/internal/application/resource/dto"
	"github.com/sendloop-inc/sendloop/internal/application/resource/usecases"
	"github.com/sendloop-inc/sendloop/internal/domain/automation"
	"github.com/sendloop-inc/sendloop/internal/domain/campaign"
	"github.com/sendloop-inc/sendloop/internal/domain/channel"
	"github.com/sendloop-inc/sendloop/internal/domain/contact"
	"github.com/sendloop-inc/sendloop/internal/shared/logger"
)

// Service is the application service facade over resource use cases.
type Service struct {
	createChannelUC    *usecases.CreateChannelUseCase
	listChannelsUC     *usecases.ListChannelsUseCase
	createSiteUC       *usecases.CreateSiteUseCase
	createContactUC    *usecases.CreateContactUseCase
	listContactsUC     *usecases.ListContactsUseCase
	createAutomationUC *usecases.CreateAutomationUseCase
	listAutomationsUC  *usecases.ListAutomationsUseCase
	createCampaignUC   *usecases.CreateCampaignUseCase
	listCampaignsUC    *usecases.ListCampaignsUseCase
	logger             logger.Interface
}

func NewService(
	channels channel.Repository,
	sites channel.SiteRepository,
	contacts contact.Repository,
	automations automation.Repository,
	campaigns campaign.Repository,
	logger logger.Interface,
) *Service {
	return &Service{
		createChannelUC:    usecases.NewCreateChannelUseCase(channels, logger),
		listChannelsUC:     usecases.NewListChannelsUseCase(channels, logger),
		createSiteUC:       usecases.NewCreateSiteUseCase(sites, channels, logger),
		createContactUC:    usecases.NewCreateContactUseCase(contacts, channels, sites, logger),
		listContactsUC:     usecases.NewListContactsUseCase(contacts, channels, logger),
		createAutomationUC: usecases.NewCreateAutomationUseCase(automations, logger),
		listAutomationsUC:  usecases.NewListAutomationsUseCase(automations, logger),
		createCampaignUC:   usecases.NewCreateCampaignUseCase(campaigns, logger),
		listCampaignsUC:    usecases.NewListCampaignsUseCase(campaigns, logger),
		logger:             logger,
	}
}

func (s *Service) CreateChannel(ctx context.Context, req dto.CreateChannelRequest, createdBy uint) (*dto.ChannelResponse, error) {
	return s.createChannelUC.Execute(ctx, req, createdBy)
}

func (s *Service) ListChannels(ctx context.Context, createdBy uint, req dto.ListRequest) ([]*dto.ChannelResponse, int64, error) {
	return s.listChannelsUC.Execute(ctx, createdBy, req)
}

func (s *Service) CreateSite(ctx context.Context, channelID, actorID uint, req dto.CreateSiteRequest) (*dto.SiteResponse, error) {
	return s.createSiteUC.Execute(ctx, channelID, actorID, req)
}

func (s *Service) CreateContact(ctx context.Context, channelID, actorID uint, req dto.CreateContactRequest) (*dto.ContactResponse, error) {
	return s.createContactUC.Execute(ctx, channelID, actorID, req)
}

// CreateContactForSite stores a contact submitted through the public widget.
func (s *Service) CreateContactForSite(ctx context.Context, siteSID string, req dto.CreateContactRequest) (*dto.ContactResponse, error) {
	return s.createContactUC.ExecuteForSite(ctx, siteSID, req)
}

func (s *Service) ListContacts(ctx context.Context, channelID, actorID uint, req dto.ListRequest) ([]*dto.ContactResponse, int64, error) {
	return s.listContactsUC.Execute(ctx, channelID, actorID, req)
}

func (s *Service) CreateAutomation(ctx context.Context, req dto.CreateAutomationRequest, createdBy uint) (*dto.AutomationResponse, error) {
	return s.createAutomationUC.Execute(ctx, req, createdBy)
}

func (s *Service) ListAutomations(ctx context.Context, createdBy uint, req dto.ListRequest) ([]*dto.AutomationResponse, int64, error) {
	return s.listAutomationsUC.Execute(ctx, createdBy, req)
}

func (s *Service) CreateCampaign(ctx context.Context, req dto.CreateCampaignRequest, createdBy uint) (*dto.CampaignResponse, error) {
	return s.createCampaignUC.Execute(ctx, req, createdBy)
}

func (s *Service) ListCampaigns(ctx context.Context, createdBy uint, req dto.ListRequest) ([]*dto.CampaignResponse, int64, error) {
	return s.listCampaignsUC.Execute(ctx, createdBy, req)
}
