package models

// ChangeKind classifies a local mutation recorded since the last synchronization.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeModified ChangeKind = "modified"
	ChangeDeleted  ChangeKind = "deleted"
)

// ChangeLogEntry identifies one local item by its resource name.
// An item appears at most once in the change log.
type ChangeLogEntry struct {
	ResourceName string     `json:"resource_name"`
	Kind         ChangeKind `json:"kind"`
}
