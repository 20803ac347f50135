package interfaces

import (
	"context"

	"iblind_pos/internal/domain/entities"
)

// IAuditLogRepository abstracts DynamoDB persistence for AuditLog.
// The trail is append-only: no update or delete operations exist.

type IAuditLogRepository interface {
	Create(ctx context.Context, l entities.AuditLog) (entities.AuditLog, error)
	ListAll(ctx context.Context) ([]entities.AuditLog, error)
}
