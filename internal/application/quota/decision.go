// Package quota implements the subscription-gated admission check that runs
// before any quota-bound resource is created.
package quota

import (
	vo "github.com/sendloop-inc/sendloop/internal/domain/subscription/valueobjects"
)

// DenyReason classifies why the gate refused a request. Reasons are part of
// the API surface: callers render them into actionable upgrade prompts.
type DenyReason string

const (
	ReasonSubscriptionRequired DenyReason = "subscription_required"
	ReasonSubscriptionInactive DenyReason = "subscription_inactive"
	ReasonSubscriptionExpired  DenyReason = "subscription_expired"
	ReasonKindNotPermitted     DenyReason = "kind_not_permitted"
	ReasonQuotaExceeded        DenyReason = "quota_exceeded"
)

// Decision is the gate's verdict for one (principal, kind) evaluation.
// Limit and Current are meaningful for quota_exceeded denials and for
// allowed decisions; other denials carry zeroes.
type Decision struct {
	Allowed bool            `json:"allowed"`
	Kind    vo.ResourceKind `json:"kind"`
	Reason  DenyReason      `json:"reason,omitempty"`
	Limit   int             `json:"limit,omitempty"`
	Current int64           `json:"current,omitempty"`
}

// Allow builds an allowing decision.
func Allow(kind vo.ResourceKind, limit int, current int64) *Decision {
	return &Decision{
		Allowed: true,
		Kind:    kind,
		Limit:   limit,
		Current: current,
	}
}

// Deny builds a denying decision without count context.
func Deny(kind vo.ResourceKind, reason DenyReason) *Decision {
	return &Decision{
		Allowed: false,
		Kind:    kind,
		Reason:  reason,
	}
}

// DenyExceeded builds a quota_exceeded denial carrying the plan limit and
// the observed count.
func DenyExceeded(kind vo.ResourceKind, limit int, current int64) *Decision {
	return &Decision{
		Allowed: false,
		Kind:    kind,
		Reason:  ReasonQuotaExceeded,
		Limit:   limit,
		Current: current,
	}
}
