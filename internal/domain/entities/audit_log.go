package entities

import "time"

// AuditLog is an immutable trail entry. Exactly one entry is written per
// soft-delete, before the target record is flagged; entries are never edited
// or removed.
type AuditLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
	TargetID  string    `json:"targetId,omitempty"`
}

// AuditActionDeletion is the action category for attendance soft-deletes.
const AuditActionDeletion = "EXCLUSÃO"
