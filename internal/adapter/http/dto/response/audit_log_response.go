package response

import (
	"time"

	"iblind_pos/internal/domain/entities"
)

type AuditLogResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
	TargetID  string    `json:"target_id,omitempty"`
}

func FromAuditLog(l entities.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		UserName:  l.UserName,
		Action:    l.Action,
		Details:   l.Details,
		Timestamp: l.Timestamp,
		TargetID:  l.TargetID,
	}
}

func FromAuditLogs(list []entities.AuditLog) []AuditLogResponse {
	out := make([]AuditLogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, FromAuditLog(l))
	}
	return out
}
