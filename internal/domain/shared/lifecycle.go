package shared

// DeletionState is the tri-state lifecycle flag gating visibility in
// list and export operations. Records are never physically removed;
// soft-delete flips Active to Inactive and restore flips it back.
// Unknown exists for records whose lifecycle was never resolved and is
// excluded from exports.
type DeletionState string

const (
	DeletionStateActive   DeletionState = "active"
	DeletionStateInactive DeletionState = "inactive"
	DeletionStateUnknown  DeletionState = "unknown"
)

// IsValid checks if the state is a member of the closed enum
func (s DeletionState) IsValid() bool {
	switch s {
	case DeletionStateActive, DeletionStateInactive, DeletionStateUnknown:
		return true
	}
	return false
}

// String returns the string representation of the state
func (s DeletionState) String() string {
	return string(s)
}
