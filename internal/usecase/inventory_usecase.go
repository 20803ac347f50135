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
	"iblind_pos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound       = errors.New("inventory item not found")
	ErrInvalidItemID      = errors.New("invalid inventory item id")
	ErrInvalidItemPayload = errors.New("invalid inventory item payload")
	ErrInvalidAdjustment  = errors.New("invalid stock adjustment")
)

// IInventoryUseCase exposes stock management: item CRUD, search, the critical
// listing feeding the dashboard, manual adjustments and the movement journal.

type IInventoryUseCase interface {
	CreateItem(ctx context.Context, item entities.InventoryItem, actor entities.Actor) (entities.InventoryItem, error)
	UpdateItem(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error)
	GetItem(ctx context.Context, id string) (entities.InventoryItem, error)
	ListItems(ctx context.Context, search string) ([]entities.InventoryItem, error)
	ListCritical(ctx context.Context) ([]entities.InventoryItem, error)
	AdjustStock(ctx context.Context, id string, delta int, reason string, actor entities.Actor) (entities.InventoryItem, error)
	ListMovements(ctx context.Context, itemID string) ([]entities.StockMovement, error)
}

type InventoryUseCase struct {
	repo         interfaces.IInventoryRepository
	movementRepo interfaces.IStockMovementRepository

	nowFn func() time.Time
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.IInventoryRepository, movementRepo interfaces.IStockMovementRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, movementRepo: movementRepo, nowFn: time.Now}
}

func (u *InventoryUseCase) CreateItem(ctx context.Context, item entities.InventoryItem, actor entities.Actor) (entities.InventoryItem, error) {
	item.Brand = strings.TrimSpace(item.Brand)
	item.Model = strings.TrimSpace(item.Model)
	if item.Brand == "" || item.Model == "" {
		return entities.InventoryItem{}, ErrInvalidItemPayload
	}
	if item.CurrentStock < 0 || item.MinStock < 0 {
		return entities.InventoryItem{}, ErrInvalidItemPayload
	}
	if item.Category == "" {
		item.Category = entities.CategoryPelicula
	}

	now := u.nowFn().UTC()
	item.ID = uuid.NewString()
	item.SKU = newSKU()
	item.LastEntryDate = now

	created, err := u.repo.Create(ctx, item)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	log.Printf("[inventory][usecase] item created id=%s sku=%s stock=%d", created.ID, created.SKU, created.CurrentStock)

	if created.CurrentStock > 0 {
		if _, err := u.movementRepo.Create(ctx, entities.StockMovement{
			ID:        uuid.NewString(),
			ItemID:    created.ID,
			Type:      entities.MovementIn,
			Quantity:  created.CurrentStock,
			UserID:    actor.ID,
			UserName:  actor.Name,
			Timestamp: now,
			Reason:    "Entrada inicial de estoque",
		}); err != nil {
			log.Printf("[inventory][usecase] initial movement journal failed item_id=%s err=%v", created.ID, err)
		}
	}

	return created, nil
}

func (u *InventoryUseCase) UpdateItem(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error) {
	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" {
		return entities.InventoryItem{}, ErrInvalidItemID
	}
	if strings.TrimSpace(item.Brand) == "" || strings.TrimSpace(item.Model) == "" {
		return entities.InventoryItem{}, ErrInvalidItemPayload
	}

	existing, err := u.repo.GetByID(ctx, item.ID)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if existing.ID == "" {
		return entities.InventoryItem{}, ErrItemNotFound
	}

	// Descriptive edits only: stock and sku are never rewritten here.
	item.SKU = existing.SKU
	item.CurrentStock = existing.CurrentStock
	item.LastEntryDate = existing.LastEntryDate

	return u.repo.Update(ctx, item)
}

func (u *InventoryUseCase) GetItem(ctx context.Context, id string) (entities.InventoryItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InventoryItem{}, ErrInvalidItemID
	}
	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if item.ID == "" {
		return entities.InventoryItem{}, ErrItemNotFound
	}
	return item, nil
}

// ListItems filters by brand/model substring, case-insensitively.
func (u *InventoryUseCase) ListItems(ctx context.Context, search string) ([]entities.InventoryItem, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Brand+all[i].Model < all[j].Brand+all[j].Model
	})

	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return all, nil
	}
	matched := make([]entities.InventoryItem, 0, len(all))
	for _, it := range all {
		if strings.Contains(strings.ToLower(it.Brand+" "+it.Model), search) {
			matched = append(matched, it)
		}
	}
	return matched, nil
}

func (u *InventoryUseCase) ListCritical(ctx context.Context) ([]entities.InventoryItem, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	critical := make([]entities.InventoryItem, 0, len(all))
	for _, it := range all {
		if it.IsCritical() {
			critical = append(critical, it)
		}
	}
	return critical, nil
}

// AdjustStock applies a signed manual correction and journals it. The
// repository rejects adjustments that would drive the stock negative.
func (u *InventoryUseCase) AdjustStock(ctx context.Context, id string, delta int, reason string, actor entities.Actor) (entities.InventoryItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InventoryItem{}, ErrInvalidItemID
	}
	if delta == 0 {
		return entities.InventoryItem{}, ErrInvalidAdjustment
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.InventoryItem{}, ErrInvalidAdjustment
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if existing.ID == "" {
		return entities.InventoryItem{}, ErrItemNotFound
	}

	updated, err := u.repo.AddStock(ctx, id, delta)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if updated.ID == "" {
		return entities.InventoryItem{}, fmt.Errorf("%w: stock cannot go below zero", ErrInvalidAdjustment)
	}

	if _, err := u.movementRepo.Create(ctx, entities.StockMovement{
		ID:        uuid.NewString(),
		ItemID:    id,
		Type:      entities.MovementAdjust,
		Quantity:  delta,
		UserID:    actor.ID,
		UserName:  actor.Name,
		Timestamp: u.nowFn().UTC(),
		Reason:    reason,
	}); err != nil {
		log.Printf("[inventory][usecase] adjustment journal failed item_id=%s err=%v", id, err)
	}

	return updated, nil
}

func (u *InventoryUseCase) ListMovements(ctx context.Context, itemID string) ([]entities.StockMovement, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, ErrInvalidItemID
	}
	return u.movementRepo.ListByItemID(ctx, itemID)
}

func newSKU() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return "SKU-" + suffix
}
