package usecase

import (
	"context"
	"sort"

	"iblind_pos/internal/domain/entities"
	"iblind_pos/internal/usecase/interfaces"
)

// IAuditUseCase exposes the read side of the audit trail. Writing entries is
// the exclusive job of the flows that mutate audited records.

type IAuditUseCase interface {
	List(ctx context.Context) ([]entities.AuditLog, error)
}

type AuditUseCase struct {
	repo interfaces.IAuditLogRepository
}

var _ IAuditUseCase = (*AuditUseCase)(nil)

func NewAuditUseCase(repo interfaces.IAuditLogRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// List returns the full trail, newest first.
func (u *AuditUseCase) List(ctx context.Context) ([]entities.AuditLog, error) {
	logs, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	return logs, nil
}
