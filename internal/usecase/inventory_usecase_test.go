package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"iblind_pos/internal/domain/entities"
	mock_interfaces "iblind_pos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInventoryUseCase_CreateItem(t *testing.T) {
	t.Run("missing brand or model", func(t *testing.T) {
		uc := NewInventoryUseCase(nil, nil)
		_, err := uc.CreateItem(context.Background(), entities.InventoryItem{Brand: "  "}, testActor())
		if !errors.Is(err, ErrInvalidItemPayload) {
			t.Fatalf("expected ErrInvalidItemPayload, got %v", err)
		}
	})

	t.Run("negative stock", func(t *testing.T) {
		uc := NewInventoryUseCase(nil, nil)
		_, err := uc.CreateItem(context.Background(), entities.InventoryItem{Brand: "3M", Model: "Pro", CurrentStock: -1}, testActor())
		if !errors.Is(err, ErrInvalidItemPayload) {
			t.Fatalf("expected ErrInvalidItemPayload, got %v", err)
		}
	})

	t.Run("assigns id, sku and journals initial stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		movementRepo := mock_interfaces.NewMockIStockMovementRepository(ctrl)
		uc := NewInventoryUseCase(repo, movementRepo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, it entities.InventoryItem) (entities.InventoryItem, error) {
				if it.ID == "" {
					t.Fatal("expected generated id")
				}
				if !strings.HasPrefix(it.SKU, "SKU-") || len(it.SKU) != 10 {
					t.Fatalf("unexpected sku %q", it.SKU)
				}
				if it.Category != entities.CategoryPelicula {
					t.Fatalf("expected default category, got %s", it.Category)
				}
				return it, nil
			})
		movementRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.StockMovement) (entities.StockMovement, error) {
				if m.Type != entities.MovementIn || m.Quantity != 10 {
					t.Fatalf("unexpected movement: %+v", m)
				}
				return m, nil
			})

		item, err := uc.CreateItem(context.Background(), entities.InventoryItem{Brand: "3M", Model: "Pro", CurrentStock: 10}, testActor())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.LastEntryDate.IsZero() {
			t.Fatal("expected entry date")
		}
	})

	t.Run("no movement for zero initial stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		movementRepo := mock_interfaces.NewMockIStockMovementRepository(ctrl)
		uc := NewInventoryUseCase(repo, movementRepo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, it entities.InventoryItem) (entities.InventoryItem, error) { return it, nil })

		if _, err := uc.CreateItem(context.Background(), entities.InventoryItem{Brand: "3M", Model: "Pro"}, testActor()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInventoryUseCase_UpdateItem(t *testing.T) {
	t.Run("preserves sku, stock and entry date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo, nil)

		entry := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "i1").Return(entities.InventoryItem{
			ID: "i1", SKU: "SKU-AB12CD", CurrentStock: 7, LastEntryDate: entry,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, it entities.InventoryItem) (entities.InventoryItem, error) {
				if it.SKU != "SKU-AB12CD" || it.CurrentStock != 7 || !it.LastEntryDate.Equal(entry) {
					t.Fatalf("immutable fields rewritten: %+v", it)
				}
				return it, nil
			})

		_, err := uc.UpdateItem(context.Background(), entities.InventoryItem{
			ID: "i1", Brand: "3M", Model: "Pro Max", CurrentStock: 99, SKU: "SKU-HACKED",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "i404").Return(entities.InventoryItem{}, nil)

		_, err := uc.UpdateItem(context.Background(), entities.InventoryItem{ID: "i404", Brand: "3M", Model: "Pro"})
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestInventoryUseCase_ListItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
	uc := NewInventoryUseCase(repo, nil)

	repo.EXPECT().ListAll(gomock.Any()).Return([]entities.InventoryItem{
		{ID: "i1", Brand: "3M", Model: "Pro"},
		{ID: "i2", Brand: "HPrime", Model: "NanoShield"},
	}, nil)

	list, err := uc.ListItems(context.Background(), "nano")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].ID != "i2" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestInventoryUseCase_ListCritical(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
	uc := NewInventoryUseCase(repo, nil)

	repo.EXPECT().ListAll(gomock.Any()).Return([]entities.InventoryItem{
		{ID: "i1", CurrentStock: 0, MinStock: 2},
		{ID: "i2", CurrentStock: 9, MinStock: 2},
	}, nil)

	list, err := uc.ListCritical(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].ID != "i1" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestInventoryUseCase_AdjustStock(t *testing.T) {
	t.Run("zero delta", func(t *testing.T) {
		uc := NewInventoryUseCase(nil, nil)
		_, err := uc.AdjustStock(context.Background(), "i1", 0, "ajuste", testActor())
		if !errors.Is(err, ErrInvalidAdjustment) {
			t.Fatalf("expected ErrInvalidAdjustment, got %v", err)
		}
	})

	t.Run("missing reason", func(t *testing.T) {
		uc := NewInventoryUseCase(nil, nil)
		_, err := uc.AdjustStock(context.Background(), "i1", 2, "   ", testActor())
		if !errors.Is(err, ErrInvalidAdjustment) {
			t.Fatalf("expected ErrInvalidAdjustment, got %v", err)
		}
	})

	t.Run("journals the signed delta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		movementRepo := mock_interfaces.NewMockIStockMovementRepository(ctrl)
		uc := NewInventoryUseCase(repo, movementRepo)

		repo.EXPECT().GetByID(gomock.Any(), "i1").Return(entities.InventoryItem{ID: "i1", CurrentStock: 5}, nil)
		repo.EXPECT().AddStock(gomock.Any(), "i1", -2).Return(entities.InventoryItem{ID: "i1", CurrentStock: 3}, nil)
		movementRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.StockMovement) (entities.StockMovement, error) {
				if m.Type != entities.MovementAdjust || m.Quantity != -2 || m.Reason != "perda" {
					t.Fatalf("unexpected movement: %+v", m)
				}
				return m, nil
			})

		item, err := uc.AdjustStock(context.Background(), "i1", -2, "perda", testActor())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.CurrentStock != 3 {
			t.Fatalf("expected stock 3, got %d", item.CurrentStock)
		}
	})

	t.Run("floor at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "i1").Return(entities.InventoryItem{ID: "i1", CurrentStock: 1}, nil)
		repo.EXPECT().AddStock(gomock.Any(), "i1", -5).Return(entities.InventoryItem{}, nil)

		_, err := uc.AdjustStock(context.Background(), "i1", -5, "perda", testActor())
		if !errors.Is(err, ErrInvalidAdjustment) {
			t.Fatalf("expected ErrInvalidAdjustment, got %v", err)
		}
	})
}
