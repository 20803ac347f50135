package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"iblind_pos/internal/domain/entities"
	"iblind_pos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSpecialistNotFound = errors.New("specialist not found")
	ErrInvalidSpecialist  = errors.New("invalid specialist payload")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrAdminRequired      = errors.New("admin role required")
	ErrCannotDeleteAdmin  = errors.New("admin accounts cannot be deleted")
)

// SpecialistPerformance aggregates a specialist's non-deleted attendances.
type SpecialistPerformance struct {
	SpecialistID string  `json:"specialistId"`
	Count        int     `json:"count"`
	Revenue      float64 `json:"revenue"`
}

// ISpecialistUseCase manages the specialist roster: admin-gated creation,
// listing for the wizard, hard delete (specialist role only) and per-head
// performance stats.

type ISpecialistUseCase interface {
	Add(ctx context.Context, name, email string, actor entities.Actor) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Remove(ctx context.Context, id string, actor entities.Actor) error
	Performance(ctx context.Context, id string) (SpecialistPerformance, error)
}

type SpecialistUseCase struct {
	userRepo       interfaces.IUserRepository
	attendanceRepo interfaces.IAttendanceRepository
}

var _ ISpecialistUseCase = (*SpecialistUseCase)(nil)

func NewSpecialistUseCase(userRepo interfaces.IUserRepository, attendanceRepo interfaces.IAttendanceRepository) *SpecialistUseCase {
	return &SpecialistUseCase{userRepo: userRepo, attendanceRepo: attendanceRepo}
}

func (u *SpecialistUseCase) Add(ctx context.Context, name, email string, actor entities.Actor) (entities.User, error) {
	if actor.Role != entities.RoleAdmin {
		return entities.User{}, ErrAdminRequired
	}
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || !strings.Contains(email, "@") {
		return entities.User{}, ErrInvalidSpecialist
	}

	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrEmailAlreadyUsed
	}

	created, err := u.userRepo.Create(ctx, entities.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Role:  entities.RoleEspecialista,
	})
	if err != nil {
		return entities.User{}, err
	}
	log.Printf("[specialist][usecase] added id=%s by=%s", created.ID, actor.ID)
	return created, nil
}

func (u *SpecialistUseCase) List(ctx context.Context) ([]entities.User, error) {
	return u.userRepo.ListByRole(ctx, entities.RoleEspecialista)
}

// Remove hard-deletes a specialist account. Admin accounts are never deleted
// through this path.
func (u *SpecialistUseCase) Remove(ctx context.Context, id string, actor entities.Actor) error {
	if actor.Role != entities.RoleAdmin {
		return ErrAdminRequired
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSpecialist
	}

	target, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if target.ID == "" {
		return ErrSpecialistNotFound
	}
	if target.Role != entities.RoleEspecialista {
		return ErrCannotDeleteAdmin
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[specialist][usecase] removed id=%s by=%s", id, actor.ID)
	return nil
}

func (u *SpecialistUseCase) Performance(ctx context.Context, id string) (SpecialistPerformance, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return SpecialistPerformance{}, ErrInvalidSpecialist
	}

	all, err := u.attendanceRepo.ListAll(ctx)
	if err != nil {
		return SpecialistPerformance{}, err
	}

	perf := SpecialistPerformance{SpecialistID: id}
	for _, a := range all {
		if a.IsDeleted || a.SpecialistID != id {
			continue
		}
		perf.Count++
		perf.Revenue += a.TotalValue
	}
	return perf, nil
}
