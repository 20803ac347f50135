package usecase

import (
	"context"
	"errors"
	"testing"

	"iblind_pos/internal/domain/entities"
	mock_interfaces "iblind_pos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func specialistActor() entities.Actor {
	return entities.Actor{ID: "spec-9", Name: "Lia", Role: entities.RoleEspecialista}
}

func TestSpecialistUseCase_Add(t *testing.T) {
	t.Run("specialists cannot add specialists", func(t *testing.T) {
		uc := NewSpecialistUseCase(nil, nil)
		_, err := uc.Add(context.Background(), "Lia", "lia@iblind.com", specialistActor())
		if !errors.Is(err, ErrAdminRequired) {
			t.Fatalf("expected ErrAdminRequired, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc := NewSpecialistUseCase(nil, nil)
		_, err := uc.Add(context.Background(), "Lia", "not-an-email", testActor())
		if !errors.Is(err, ErrInvalidSpecialist) {
			t.Fatalf("expected ErrInvalidSpecialist, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSpecialistUseCase(userRepo, nil)

		userRepo.EXPECT().GetByEmail(gomock.Any(), "lia@iblind.com").
			Return(entities.User{ID: "u-1", Email: "lia@iblind.com"}, nil)

		_, err := uc.Add(context.Background(), "Lia", "LIA@iblind.com", testActor())
		if !errors.Is(err, ErrEmailAlreadyUsed) {
			t.Fatalf("expected ErrEmailAlreadyUsed, got %v", err)
		}
	})

	t.Run("forces specialist role and lowercases the email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSpecialistUseCase(userRepo, nil)

		userRepo.EXPECT().GetByEmail(gomock.Any(), "lia@iblind.com").Return(entities.User{}, nil)
		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Role != entities.RoleEspecialista {
					t.Fatalf("expected specialist role, got %s", u.Role)
				}
				if u.Email != "lia@iblind.com" {
					t.Fatalf("expected lowercased email, got %q", u.Email)
				}
				return u, nil
			})

		user, err := uc.Add(context.Background(), " Lia ", " LIA@iblind.com ", testActor())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID == "" {
			t.Fatal("expected generated id")
		}
	})
}

func TestSpecialistUseCase_Remove(t *testing.T) {
	t.Run("admin accounts are protected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSpecialistUseCase(userRepo, nil)

		userRepo.EXPECT().GetByID(gomock.Any(), "u-1").
			Return(entities.User{ID: "u-1", Role: entities.RoleAdmin}, nil)

		err := uc.Remove(context.Background(), "u-1", testActor())
		if !errors.Is(err, ErrCannotDeleteAdmin) {
			t.Fatalf("expected ErrCannotDeleteAdmin, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSpecialistUseCase(userRepo, nil)

		userRepo.EXPECT().GetByID(gomock.Any(), "u-404").Return(entities.User{}, nil)

		err := uc.Remove(context.Background(), "u-404", testActor())
		if !errors.Is(err, ErrSpecialistNotFound) {
			t.Fatalf("expected ErrSpecialistNotFound, got %v", err)
		}
	})

	t.Run("hard-deletes a specialist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSpecialistUseCase(userRepo, nil)

		userRepo.EXPECT().GetByID(gomock.Any(), "u-2").
			Return(entities.User{ID: "u-2", Role: entities.RoleEspecialista}, nil)
		userRepo.EXPECT().Delete(gomock.Any(), "u-2").Return(nil)

		if err := uc.Remove(context.Background(), "u-2", testActor()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSpecialistUseCase_Performance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	attendanceRepo := mock_interfaces.NewMockIAttendanceRepository(ctrl)
	uc := NewSpecialistUseCase(nil, attendanceRepo)

	attendanceRepo.EXPECT().ListAll(gomock.Any()).Return([]entities.Attendance{
		{ID: "a1", SpecialistID: "spec-1", TotalValue: 170},
		{ID: "a2", SpecialistID: "spec-1", TotalValue: 230, IsDeleted: true},
		{ID: "a3", SpecialistID: "spec-2", TotalValue: 90},
	}, nil)

	perf, err := uc.Performance(context.Background(), "spec-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if perf.Count != 1 || perf.Revenue != 170 {
		t.Fatalf("unexpected performance: %+v", perf)
	}
}
