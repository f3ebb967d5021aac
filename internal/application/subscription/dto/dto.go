// Package dto defines the read shapes for plans and subscriptions.
package dto

import (
	"time"

	"github.com/sendloop-inc/sendloop/internal/domain/subscription"
)

type PlanResponse struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	Price     uint64         `json:"price"`
	Limits    map[string]int `json:"limits"`
	SortOrder int            `json:"sort_order"`
}

type SubscriptionResponse struct {
	ID        uint          `json:"id"`
	PlanID    uint          `json:"plan_id"`
	Status    string        `json:"status"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Plan      *PlanResponse `json:"plan,omitempty"`
}

func ToPlanResponse(p *subscription.Plan) *PlanResponse {
	limits := make(map[string]int)
	for kind, limit := range p.Limits() {
		limits[kind.String()] = limit
	}
	return &PlanResponse{
		ID:        p.ID(),
		Name:      p.Name(),
		Slug:      p.Slug(),
		Price:     p.Price(),
		Limits:    limits,
		SortOrder: p.SortOrder(),
	}
}

func ToPlanResponseList(plans []*subscription.Plan) []*PlanResponse {
	responses := make([]*PlanResponse, 0, len(plans))
	for _, p := range plans {
		responses = append(responses, ToPlanResponse(p))
	}
	return responses
}

func ToSubscriptionResponse(sub *subscription.Subscription, plan *subscription.Plan) *SubscriptionResponse {
	resp := &SubscriptionResponse{
		ID:        sub.ID(),
		PlanID:    sub.PlanID(),
		Status:    sub.Status().String(),
		StartDate: sub.StartDate(),
		EndDate:   sub.EndDate(),
	}
	if plan != nil {
		resp.Plan = ToPlanResponse(plan)
	}
	return resp
}
