package quota

import (
	"context"

	"github.com/sendloop-inc/sendloop/internal/application/identity"
	vo "github.com/sendloop-inc/sendloop/internal/domain/subscription/valueobjects"
)

// UsageCounter reads live resource counts for an owner. Every call re-reads
// current state; the gate never caches counts.
type UsageCounter interface {
	Count(ctx context.Context, kind vo.ResourceKind, ownerID uint) (int64, error)
}

// PrincipalResolver derives the acting tenant owner from request identity
// material.
type PrincipalResolver interface {
	Resolve(ctx context.Context, rc identity.RequestContext) (uint, error)
}
