package dto

import (
	"time"

	"github.com/sendloop-inc/sendloop/internal/domain/notification"
)

type CreateNotificationRequest struct {
	Title      string `json:"title" validate:"required,max=200"`
	Message    string `json:"message" validate:"required"`
	Type       string `json:"type" validate:"omitempty,max=50"`
	TargetType string `json:"target_type" validate:"required,oneof=all specific single"`
	TargetIDs  []uint `json:"target_ids" validate:"omitempty,dive,gt=0"`
}

type ListNotificationsRequest struct {
	Page     int
	PageSize int
}

type NotificationResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	MessageHTML string     `json:"message_html,omitempty"`
	Type        string     `json:"type"`
	TargetType  string     `json:"target_type"`
	TargetIDs   []uint     `json:"target_ids"`
	CreatedBy   uint       `json:"created_by"`
	Status      string     `json:"status"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	// DeliveredCount is populated on sent notifications only.
	DeliveredCount *int64    `json:"delivered_count,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DispatchResponse reports how many recipients got a delivery record.
// The count is independent of push outcome: a failed push still counts.
type DispatchResponse struct {
	NotificationID uint      `json:"notification_id"`
	RecipientCount int       `json:"recipient_count"`
	SentAt         time.Time `json:"sent_at"`
}

func ToNotificationResponse(n *notification.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:         n.ID(),
		Title:      n.Title(),
		Message:    n.Message(),
		Type:       n.Type(),
		TargetType: string(n.TargetType()),
		TargetIDs:  n.TargetIDs(),
		CreatedBy:  n.CreatedBy(),
		Status:     string(n.Status()),
		SentAt:     n.SentAt(),
		CreatedAt:  n.CreatedAt(),
		UpdatedAt:  n.UpdatedAt(),
	}
}

func ToNotificationResponseList(items []*notification.Notification) []*NotificationResponse {
	responses := make([]*NotificationResponse, 0, len(items))
	for _, n := range items {
		responses = append(responses, ToNotificationResponse(n))
	}
	return responses
}
