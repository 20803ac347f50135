package interfaces

import (
	"context"

	"iblind_pos/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for staff accounts.
//
// Delete is a hard delete and is only ever invoked for specialist accounts;
// the use case layer enforces the role guard.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	ListByRole(ctx context.Context, role entities.UserRole) ([]entities.User, error)
	Delete(ctx context.Context, id string) error
}
