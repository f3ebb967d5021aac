// Package dto defines request and response shapes for quota-bound resources.
package dto

import (
	"time"

	"github.com/sendloop-inc/sendloop/internal/domain/automation"
	"github.com/sendloop-inc/sendloop/internal/domain/campaign"
	"github.com/sendloop-inc/sendloop/internal/domain/channel"
	"github.com/sendloop-inc/sendloop/internal/domain/contact"
)

type CreateChannelRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
}

type ChannelResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	CreatedBy   uint      `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateSiteRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Domain string `json:"domain" validate:"required,max=255"`
}

type SiteResponse struct {
	ID        uint      `json:"id"`
	SID       string    `json:"sid"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain"`
	ChannelID uint      `json:"channel_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateContactRequest struct {
	Phone string `json:"phone" validate:"required,max=20"`
	Name  string `json:"name" validate:"omitempty,max=100"`
}

type ContactResponse struct {
	ID        uint      `json:"id"`
	ChannelID uint      `json:"channel_id"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateAutomationRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Trigger string `json:"trigger" validate:"required,max=100"`
}

type AutomationResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Trigger   string    `json:"trigger"`
	Enabled   bool      `json:"enabled"`
	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCampaignRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Message string `json:"message" validate:"required"`
}

type CampaignResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListRequest struct {
	Page     int
	PageSize int
}

// Normalize clamps pagination to sane bounds.
func (r *ListRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 || r.PageSize > 100 {
		r.PageSize = 20
	}
}

func (r *ListRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

func ToChannelResponse(ch *channel.Channel) *ChannelResponse {
	return &ChannelResponse{
		ID:          ch.ID(),
		Name:        ch.Name(),
		PhoneNumber: ch.PhoneNumber(),
		CreatedBy:   ch.CreatedBy(),
		CreatedAt:   ch.CreatedAt(),
		UpdatedAt:   ch.UpdatedAt(),
	}
}

func ToChannelResponseList(items []*channel.Channel) []*ChannelResponse {
	responses := make([]*ChannelResponse, 0, len(items))
	for _, ch := range items {
		responses = append(responses, ToChannelResponse(ch))
	}
	return responses
}

func ToSiteResponse(s *channel.Site) *SiteResponse {
	return &SiteResponse{
		ID:        s.ID(),
		SID:       s.SID(),
		Name:      s.Name(),
		Domain:    s.Domain(),
		ChannelID: s.ChannelID(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}

func ToContactResponse(ct *contact.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        ct.ID(),
		ChannelID: ct.ChannelID(),
		Phone:     ct.Phone(),
		Name:      ct.Name(),
		CreatedAt: ct.CreatedAt(),
		UpdatedAt: ct.UpdatedAt(),
	}
}

func ToContactResponseList(items []*contact.Contact) []*ContactResponse {
	responses := make([]*ContactResponse, 0, len(items))
	for _, ct := range items {
		responses = append(responses, ToContactResponse(ct))
	}
	return responses
}

func ToAutomationResponse(a *automation.Automation) *AutomationResponse {
	return &AutomationResponse{
		ID:        a.ID(),
		Name:      a.Name(),
		Trigger:   a.Trigger(),
		Enabled:   a.Enabled(),
		CreatedBy: a.CreatedBy(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

func ToAutomationResponseList(items []*automation.Automation) []*AutomationResponse {
	responses := make([]*AutomationResponse, 0, len(items))
	for _, a := range items {
		responses = append(responses, ToAutomationResponse(a))
	}
	return responses
}

func ToCampaignResponse(cp *campaign.Campaign) *CampaignResponse {
	return &CampaignResponse{
		ID:        cp.ID(),
		Name:      cp.Name(),
		Message:   cp.Message(),
		Status:    cp.Status(),
		CreatedBy: cp.CreatedBy(),
		CreatedAt: cp.CreatedAt(),
		UpdatedAt: cp.UpdatedAt(),
	}
}

func ToCampaignResponseList(items []*campaign.Campaign) []*CampaignResponse {
	responses := make([]*CampaignResponse, 0, len(items))
	for _, cp := range items {
		responses = append(responses, ToCampaignResponse(cp))
	}
	return responses
}
