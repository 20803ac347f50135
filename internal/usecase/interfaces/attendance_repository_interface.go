package interfaces

import (
	"context"

	"iblind_pos/internal/domain/entities"
)

// IAttendanceRepository abstracts DynamoDB persistence for Attendance.
//
// Not-found reads return a zero-value entity with a nil error; the use case
// layer decides whether that is an error. SetDeleted must be the only write
// path that mutates an existing attendance.

type IAttendanceRepository interface {
	Create(ctx context.Context, a entities.Attendance) (entities.Attendance, error)
	GetByID(ctx context.Context, id string) (entities.Attendance, error)
	ListAll(ctx context.Context) ([]entities.Attendance, error)
	SetDeleted(ctx context.Context, id string) (entities.Attendance, error)
}

// IWarrantySequence hands out tenant/year-scoped monotonic warranty numbers.
// Backed by an atomic server-side counter so concurrent finalizes never
// collide.
type IWarrantySequence interface {
	Next(ctx context.Context, tenantPrefix string, year int) (int, error)
}
