package valueobjects

// TargetType selects the audience of a notification.
type TargetType string

const (
	// TargetAll fans out to every user in the system.
	TargetAll TargetType = "all"
	// TargetSpecific fans out to the users listed in targetIDs; ids with
	// no matching row are silently dropped.
	TargetSpecific TargetType = "specific"
	// TargetSingle fans out to exactly one user, targetIDs[0].
	TargetSingle TargetType = "single"
)

func (t TargetType) String() string {
	return string(t)
}

func (t TargetType) IsValid() bool {
	switch t {
	case TargetAll, TargetSpecific, TargetSingle:
		return true
	}
	return false
}
