package permission

// AdminRole is the privileged administrative role. It resolves to every
// registry permission regardless of the stored list.
const AdminRole = "admin"

// CapabilityMap maps permission names to true. Absent names are unset;
// the map never carries false entries.
type CapabilityMap map[string]bool

// Has reports whether the capability is present.
func (m CapabilityMap) Has(name string) bool {
	return m[name]
}

// Names returns the capability names present in the map.
func (m CapabilityMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names
}

// Resolve folds a role and a stored permission list into a capability map.
//
// The admin role gets the full registry unconditionally. Any other role gets
// exactly the stored list: duplicates are idempotent, an empty or nil list
// yields an empty map, and unknown names pass through unvalidated. Resolve
// is pure and never fails.
func Resolve(role string, storedPermissions []string) CapabilityMap {
	if role == AdminRole {
		capabilities := make(CapabilityMap, len(Registry()))
		for _, name := range Registry() {
			capabilities[name] = true
		}
		return capabilities
	}

	capabilities := make(CapabilityMap, len(storedPermissions))
	for _, name := range storedPermissions {
		capabilities[name] = true
	}
	return capabilities
}
