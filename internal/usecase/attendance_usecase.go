package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"iblind_pos/internal/domain/entities"
	"iblind_pos/internal/domain/wizard"
	"iblind_pos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAttendanceNotFound  = errors.New("attendance not found")
	ErrInvalidAttendanceID = errors.New("invalid attendance id")
	ErrIncompleteDraft     = errors.New("incomplete attendance draft")
	ErrInvalidActor        = errors.New("invalid actor")
	ErrReasonTooShort      = errors.New("deletion reason too short")
	ErrPartialCompletion   = errors.New("attendance created but secondary effects failed")
)

// MinDeletionReasonLen is the hard precondition on soft-delete justifications.
const MinDeletionReasonLen = 5

// IAttendanceUseCase exposes the attendance operations:
//   - Finalize is the completion handler: it converts a validated wizard
//     draft into a persisted attendance plus its inventory side effect.
//   - RequestDeletion is the audited soft-delete flow.
//   - The list/search operations feed the history and audit views.

type IAttendanceUseCase interface {
	Finalize(ctx context.Context, draft wizard.Draft, actor entities.Actor) (entities.Attendance, error)
	GetByID(ctx context.Context, id string) (entities.Attendance, error)
	ListActive(ctx context.Context) ([]entities.Attendance, error)
	ListAll(ctx context.Context) ([]entities.Attendance, error)
	Search(ctx context.Context, term string) ([]entities.Attendance, error)
	RequestDeletion(ctx context.Context, id, reason string, actor entities.Actor) error
}

type AttendanceUseCase struct {
	repo          interfaces.IAttendanceRepository
	inventoryRepo interfaces.IInventoryRepository
	movementRepo  interfaces.IStockMovementRepository
	auditRepo     interfaces.IAuditLogRepository
	sequence      interfaces.IWarrantySequence
	gateway       interfaces.IPaymentGateway
	tenant        entities.TenantConfig

	nowFn func() time.Time
}

var _ IAttendanceUseCase = (*AttendanceUseCase)(nil)

func NewAttendanceUseCase(
	repo interfaces.IAttendanceRepository,
	inventoryRepo interfaces.IInventoryRepository,
	movementRepo interfaces.IStockMovementRepository,
	auditRepo interfaces.IAuditLogRepository,
	sequence interfaces.IWarrantySequence,
	gateway interfaces.IPaymentGateway,
	tenant entities.TenantConfig,
) *AttendanceUseCase {
	return &AttendanceUseCase{
		repo:          repo,
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
		auditRepo:     auditRepo,
		sequence:      sequence,
		gateway:       gateway,
		tenant:        tenant,
		nowFn:         time.Now,
	}
}

// WarrantyUntil computes the warranty expiry: calendar-day arithmetic,
// exclusive of the start day (2024-01-10 + 365 => 2025-01-09).
func WarrantyUntil(date time.Time, days int) time.Time {
	return date.AddDate(0, 0, days)
}

// Finalize persists a new attendance from a fully-validated draft.
//
// The attendance create is issued first; the stock deduction and its journal
// entry are best-effort secondary effects. When they fail the attendance
// survives and the error wraps ErrPartialCompletion so the boundary can
// report the divergence instead of silently accepting it.
func (u *AttendanceUseCase) Finalize(ctx context.Context, draft wizard.Draft, actor entities.Actor) (entities.Attendance, error) {
	if strings.TrimSpace(actor.ID) == "" {
		return entities.Attendance{}, ErrInvalidActor
	}
	if verrs := wizard.ValidateAll(draft); len(verrs) > 0 {
		return entities.Attendance{}, fmt.Errorf("%w: %s", ErrIncompleteDraft, verrs.Error())
	}

	now := u.nowFn().UTC()

	seq, err := u.sequence.Next(ctx, u.tenant.TenantPrefix, now.Year())
	if err != nil {
		return entities.Attendance{}, fmt.Errorf("warranty sequence: %w", err)
	}

	a := entities.Attendance{
		ID:              uuid.NewString(),
		WarrantyID:      fmt.Sprintf("%s-%d-%04d", u.tenant.TenantPrefix, now.Year(), seq),
		Date:            now,
		WarrantyUntil:   WarrantyUntil(now, u.tenant.WarrantyDefaultDays),
		TechnicianID:    actor.ID,
		TechnicianName:  actor.Name,
		SpecialistID:    draft.SpecialistID,
		SpecialistName:  draft.SpecialistName,
		ClientName:      strings.TrimSpace(draft.ClientName),
		ClientPhone:     strings.TrimSpace(draft.ClientPhone),
		DeviceModel:     strings.TrimSpace(draft.DeviceModel),
		DeviceIMEI:      strings.TrimSpace(draft.DeviceIMEI),
		State:           draft.State,
		Coverage:        draft.Coverage,
		UsedItemID:      strings.TrimSpace(draft.UsedItemID),
		ValueBlindagem:  draft.ValueBlindagem,
		ValuePelicula:   draft.ValuePelicula,
		ValueOthers:     draft.ValueOthers,
		TotalValue:      draft.TotalValue(),
		PaymentMethod:   draft.PaymentMethod,
		ClientSignature: draft.ClientSignature,
		Photos:          draft.Photos,
	}

	// Non-cash settlements go through the gateway when one is configured.
	// A declined/failed charge never blocks the attendance record.
	if u.gateway != nil && a.PaymentMethod != entities.PaymentMethodDinheiro {
		ref, status, err := u.gateway.Charge(ctx, interfaces.ChargeRequest{
			Amount:      a.TotalValue,
			Method:      a.PaymentMethod,
			Reference:   a.WarrantyID,
			Description: fmt.Sprintf("Blindagem %s - %s", a.Coverage, a.DeviceModel),
		})
		if err != nil {
			log.Printf("[attendance][usecase] gateway charge failed warranty_id=%s err=%v", a.WarrantyID, err)
		} else {
			log.Printf("[attendance][usecase] gateway charge ok warranty_id=%s provider_id=%s status=%s", a.WarrantyID, ref, status)
			a.PaymentReference = ref
		}
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return entities.Attendance{}, err
	}
	log.Printf("[attendance][usecase] created id=%s warranty_id=%s total=%.2f", created.ID, created.WarrantyID, created.TotalValue)

	if created.UsedItemID == "" {
		return created, nil
	}

	item, consumed, err := u.inventoryRepo.ConsumeOne(ctx, created.UsedItemID)
	if err != nil {
		log.Printf("[attendance][usecase] stock deduction failed id=%s item_id=%s err=%v", created.ID, created.UsedItemID, err)
		return created, fmt.Errorf("%w: stock deduction: %v", ErrPartialCompletion, err)
	}
	if !consumed {
		// Item missing or already at zero: not fatal for the attendance.
		log.Printf("[attendance][usecase] stock not deducted id=%s item_id=%s current=%d", created.ID, created.UsedItemID, item.CurrentStock)
		return created, nil
	}

	_, err = u.movementRepo.Create(ctx, entities.StockMovement{
		ID:                  uuid.NewString(),
		ItemID:              created.UsedItemID,
		Type:                entities.MovementAutoDeduction,
		Quantity:            1,
		UserID:              actor.ID,
		UserName:            actor.Name,
		Timestamp:           now,
		Reason:              "Baixa automática de atendimento",
		RelatedAttendanceID: created.ID,
	})
	if err != nil {
		log.Printf("[attendance][usecase] movement journal failed id=%s item_id=%s err=%v", created.ID, created.UsedItemID, err)
		return created, fmt.Errorf("%w: stock movement journal: %v", ErrPartialCompletion, err)
	}

	return created, nil
}

func (u *AttendanceUseCase) GetByID(ctx context.Context, id string) (entities.Attendance, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Attendance{}, ErrInvalidAttendanceID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Attendance{}, err
	}
	if a.ID == "" {
		return entities.Attendance{}, ErrAttendanceNotFound
	}
	return a, nil
}

// ListActive returns non-deleted attendances, most recent first.
func (u *AttendanceUseCase) ListActive(ctx context.Context) ([]entities.Attendance, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]entities.Attendance, 0, len(all))
	for _, a := range all {
		if !a.IsDeleted {
			active = append(active, a)
		}
	}
	sortByDateDesc(active)
	return active, nil
}

// ListAll returns every attendance including soft-deleted ones (audit view).
func (u *AttendanceUseCase) ListAll(ctx context.Context) ([]entities.Attendance, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sortByDateDesc(all)
	return all, nil
}

// Search filters active attendances by client name, device model, IMEI or
// warranty code, case-insensitively.
func (u *AttendanceUseCase) Search(ctx context.Context, term string) ([]entities.Attendance, error) {
	active, err := u.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return active, nil
	}
	matched := make([]entities.Attendance, 0, len(active))
	for _, a := range active {
		if strings.Contains(strings.ToLower(a.ClientName), term) ||
			strings.Contains(strings.ToLower(a.DeviceModel), term) ||
			strings.Contains(strings.ToLower(a.DeviceIMEI), term) ||
			strings.Contains(strings.ToLower(a.WarrantyID), term) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

// RequestDeletion soft-deletes an attendance with mandatory justification.
//
// The audit entry is written before the flag flips: a failed log write leaves
// the record untouched, a failed flag write leaves the log durable and
// surfaces the error.
func (u *AttendanceUseCase) RequestDeletion(ctx context.Context, id, reason string, actor entities.Actor) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAttendanceID
	}
	reason = strings.TrimSpace(reason)
	if len([]rune(reason)) < MinDeletionReasonLen {
		return ErrReasonTooShort
	}
	if strings.TrimSpace(actor.ID) == "" {
		return ErrInvalidActor
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.ID == "" {
		return ErrAttendanceNotFound
	}
	if a.IsDeleted {
		// Exactly one audit entry per soft-delete.
		return nil
	}

	now := u.nowFn().UTC()
	_, err = u.auditRepo.Create(ctx, entities.AuditLog{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		UserName:  actor.Name,
		Action:    entities.AuditActionDeletion,
		Details:   fmt.Sprintf("Atendimento %s excluído. Justificativa: %s", id, reason),
		Timestamp: now,
		TargetID:  id,
	})
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}

	updated, err := u.repo.SetDeleted(ctx, id)
	if err != nil {
		return err
	}
	if updated.ID == "" {
		return ErrAttendanceNotFound
	}
	log.Printf("[attendance][usecase] soft-deleted id=%s by=%s", id, actor.ID)
	return nil
}

func sortByDateDesc(list []entities.Attendance) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.After(list[j].Date)
	})
}
