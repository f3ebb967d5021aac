package subscription

import (
	"fmt"
	"time"

	vo "github.com/sendloop-inc/sendloop/internal/domain/subscription/valueobjects"
)

// Plan is a named tier carrying a sparse map of resource-kind limits.
// A missing, zero or negative entry means the kind is not permitted at all,
// not unlimited.
type Plan struct {
	id        uint
	name      string
	slug      string
	price     uint64
	limits    map[vo.ResourceKind]int
	isPublic  bool
	sortOrder int
	createdAt time.Time
	updatedAt time.Time
}

// NewPlan creates a new plan with the given limit map.
func NewPlan(name, slug string, price uint64, limits map[vo.ResourceKind]int) (*Plan, error) {
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("plan slug is required")
	}
	if limits == nil {
		limits = make(map[vo.ResourceKind]int)
	}

	now := time.Now()
	return &Plan{
		name:      name,
		slug:      slug,
		price:     price,
		limits:    limits,
		isPublic:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructPlan rebuilds a plan from persistence.
func ReconstructPlan(
	id uint,
	name, slug string,
	price uint64,
	limits map[vo.ResourceKind]int,
	isPublic bool,
	sortOrder int,
	createdAt, updatedAt time.Time,
) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if limits == nil {
		limits = make(map[vo.ResourceKind]int)
	}

	return &Plan{
		id:        id,
		name:      name,
		slug:      slug,
		price:     price,
		limits:    limits,
		isPublic:  isPublic,
		sortOrder: sortOrder,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Plan) ID() uint             { return p.id }
func (p *Plan) Name() string         { return p.name }
func (p *Plan) Slug() string         { return p.slug }
func (p *Plan) Price() uint64        { return p.price }
func (p *Plan) IsPublic() bool       { return p.isPublic }
func (p *Plan) SortOrder() int       { return p.sortOrder }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

// Limits returns a copy of the sparse limit map.
func (p *Plan) Limits() map[vo.ResourceKind]int {
	limits := make(map[vo.ResourceKind]int, len(p.limits))
	for kind, limit := range p.limits {
		limits[kind] = limit
	}
	return limits
}

// SetID sets the plan ID (only for persistence layer use)
func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

// LimitFor returns the numeric limit for a resource kind and whether the
// kind is permitted at all. Absent, zero and negative entries all mean
// not permitted.
func (p *Plan) LimitFor(kind vo.ResourceKind) (int, bool) {
	limit, exists := p.limits[kind]
	if !exists || limit <= 0 {
		return 0, false
	}
	return limit, true
}
