package valueobjects

// ResourceKind is one of the fixed categories subject to plan quotas.
type ResourceKind string

const (
	KindChannel    ResourceKind = "channel"
	KindContacts   ResourceKind = "contacts"
	KindAutomation ResourceKind = "automation"
	KindCampaign   ResourceKind = "campaign"
)

func (k ResourceKind) String() string {
	return string(k)
}

// AllResourceKinds lists the closed set of gated resource kinds.
func AllResourceKinds() []ResourceKind {
	return []ResourceKind{KindChannel, KindContacts, KindAutomation, KindCampaign}
}

// IsValid reports whether the kind belongs to the closed set.
func (k ResourceKind) IsValid() bool {
	switch k {
	case KindChannel, KindContacts, KindAutomation, KindCampaign:
		return true
	}
	return false
}
