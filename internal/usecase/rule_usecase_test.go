package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"wardrobe_pricing/internal/domain/entities"
	"wardrobe_pricing/internal/domain/rules"
	mock_interfaces "wardrobe_pricing/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func TestRuleUseCase_Create(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		uc := NewRuleUseCase(nil, zerolog.Nop())
		r := loyaltyRule()
		r.Conditions[0].Field = "customer.shoe_size"
		_, err := uc.Create(context.Background(), r)
		if !errors.Is(err, rules.ErrUnknownField) {
			t.Fatalf("expected ErrUnknownField, got %v", err)
		}
	})

	t.Run("success assigns id and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRuleRepository(ctrl)
		uc := NewRuleUseCase(repo, zerolog.Nop())

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Rule{})).DoAndReturn(
			func(_ context.Context, r entities.Rule) (entities.Rule, error) {
				if r.ID == "" || r.ID == "loyal" || r.CreatedAt.IsZero() || !r.CreatedAt.Equal(r.UpdatedAt) {
					t.Fatalf("unexpected rule: %+v", r)
				}
				return r, nil
			},
		)

		if _, err := uc.Create(context.Background(), loyaltyRule()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRuleUseCase_Update(t *testing.T) {
	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRuleRepository(ctrl)
		uc := NewRuleUseCase(repo, zerolog.Nop())
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Rule{}, nil)

		_, err := uc.Update(context.Background(), "r-1", loyaltyRule())
		if !errors.Is(err, ErrRuleNotFound) {
			t.Fatalf("expected ErrRuleNotFound, got %v", err)
		}
	})

	t.Run("keeps id and creation time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRuleRepository(ctrl)
		uc := NewRuleUseCase(repo, zerolog.Nop())
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Rule{ID: "r-1", CreatedAt: created}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.Rule) (entities.Rule, error) {
			if r.ID != "r-1" || !r.CreatedAt.Equal(created) || !r.UpdatedAt.After(created) {
				t.Fatalf("unexpected rule: %+v", r)
			}
			return r, nil
		})

		r := loyaltyRule()
		r.Priority = 9
		updated, err := uc.Update(context.Background(), " r-1 ", r)
		if err != nil || updated.Priority != 9 {
			t.Fatalf("unexpected result err=%v rule=%+v", err, updated)
		}
	})

	t.Run("invalid update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRuleRepository(ctrl)
		uc := NewRuleUseCase(repo, zerolog.Nop())
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Rule{ID: "r-1", CreatedAt: created}, nil)

		r := loyaltyRule()
		r.Actions[0].Type = "teleport"
		_, err := uc.Update(context.Background(), "r-1", r)
		if !errors.Is(err, rules.ErrUnknownAction) {
			t.Fatalf("expected ErrUnknownAction, got %v", err)
		}
	})
}

func TestRuleUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewRuleUseCase(nil, zerolog.Nop())
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidRuleID) {
			t.Fatalf("expected ErrInvalidRuleID, got %v", err)
		}
	})

	t.Run("List", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRuleRepository(ctrl)
		uc := NewRuleUseCase(repo, zerolog.Nop())
		repo.EXPECT().List(gomock.Any()).Return([]entities.Rule{{ID: "a"}, {ID: "b"}}, nil)

		res, err := uc.List(context.Background())
		if err != nil || len(res) != 2 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}
