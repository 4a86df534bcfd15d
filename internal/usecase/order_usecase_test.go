package usecase

import (
	"context"
	"errors"
	"testing"

	"wardrobe_pricing/internal/domain/entities"
	mock_interfaces "wardrobe_pricing/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

type orderMocks struct {
	orders   *mock_interfaces.MockIOrderRepository
	catalog  *mock_interfaces.MockICatalogRepository
	rules    *mock_interfaces.MockIRuleRepository
	exporter *mock_interfaces.MockICutListExporter
}

func newOrderUseCase(ctrl *gomock.Controller) (*OrderUseCase, orderMocks) {
	m := orderMocks{
		orders:   mock_interfaces.NewMockIOrderRepository(ctrl),
		catalog:  mock_interfaces.NewMockICatalogRepository(ctrl),
		rules:    mock_interfaces.NewMockIRuleRepository(ctrl),
		exporter: mock_interfaces.NewMockICutListExporter(ctrl),
	}
	pricing := NewPricingUseCase(m.catalog, m.rules, m.orders, zerolog.Nop())
	return NewOrderUseCase(m.orders, pricing, m.exporter, zerolog.Nop()), m
}

func TestOrderUseCase_Confirm(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newOrderUseCase(ctrl)

		for _, email := range []string{"", "   ", "not-an-email", "Ana <ana@example.com>"} {
			_, err := uc.Confirm(context.Background(), ConfirmOrderInput{Email: email, Config: testConfig()})
			if !errors.Is(err, ErrInvalidEmail) {
				t.Fatalf("expected ErrInvalidEmail for %q, got %v", email, err)
			}
		}
	})

	t.Run("pricing failure is not persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)

		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(entities.Catalog{}, nil)
		m.rules.EXPECT().ListEnabled(gomock.Any()).Return(nil, nil)

		_, err := uc.Confirm(context.Background(), ConfirmOrderInput{Email: "ana@example.com", Config: testConfig()})
		if !errors.Is(err, ErrPriceCalculationFailed) {
			t.Fatalf("expected ErrPriceCalculationFailed, got %v", err)
		}
	})

	t.Run("client total is replaced by the server price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)

		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(testCatalog(), nil)
		m.rules.EXPECT().ListEnabled(gomock.Any()).Return([]entities.Rule{loyaltyRule()}, nil)
		m.orders.EXPECT().CountByEmail(gomock.Any(), "ana@example.com").Return(5, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.Status != entities.OrderStatusConfirmed || o.Email != "ana@example.com" {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.BaseTotal != 91.14 || o.FinalTotal != 82.14 {
					t.Fatalf("unexpected totals base=%v final=%v", o.BaseTotal, o.FinalTotal)
				}
				if len(o.CutList.Items) != 5 || len(o.Adjustments) != 1 {
					t.Fatalf("snapshots missing: %+v", o)
				}
				if o.CreatedAt.IsZero() || o.ShippingCity != "Gdańsk" {
					t.Fatalf("unexpected metadata: %+v", o)
				}
				return o, nil
			},
		)

		client := 1.0
		o, err := uc.Confirm(context.Background(), ConfirmOrderInput{
			Email:        "ANA@example.com ",
			ShippingCity: " Gdańsk ",
			Config:       testConfig(),
			ClientTotal:  &client,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.FinalTotal != 82.14 {
			t.Fatalf("expected server price, got %v", o.FinalTotal)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)

		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(testCatalog(), nil)
		m.rules.EXPECT().ListEnabled(gomock.Any()).Return(nil, nil)
		m.orders.EXPECT().CountByEmail(gomock.Any(), "ana@example.com").Return(0, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := uc.Confirm(context.Background(), ConfirmOrderInput{Email: "ana@example.com", Config: testConfig()})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOrderUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, zerolog.Nop())
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), "ord-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("ListByEmail normalises", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)
		m.orders.EXPECT().ListByEmail(gomock.Any(), "ana@example.com").Return([]entities.Order{{ID: "ord-1"}}, nil)

		res, err := uc.ListByEmail(context.Background(), " Ana@Example.com")
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestOrderUseCase_MarkPaid(t *testing.T) {
	t.Run("confirmed becomes paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusConfirmed}, nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusPaid).Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPaid}, nil)

		o, err := uc.MarkPaid(context.Background(), "ord-1")
		if err != nil || o.Status != entities.OrderStatusPaid {
			t.Fatalf("unexpected result err=%v order=%+v", err, o)
		}
	})

	t.Run("already paid is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPaid}, nil)

		if _, err := uc.MarkPaid(context.Background(), "ord-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancelled is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusCancelled}, nil)

		_, err := uc.MarkPaid(context.Background(), "ord-1")
		if !errors.Is(err, ErrOrderNotConfirmed) {
			t.Fatalf("expected ErrOrderNotConfirmed, got %v", err)
		}
	})
}

func TestOrderUseCase_ExportCutList(t *testing.T) {
	t.Run("no exporter", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, zerolog.Nop())
		_, err := uc.ExportCutList(context.Background(), "ord-1")
		if !errors.Is(err, ErrExporterNotAvailable) {
			t.Fatalf("expected ErrExporterNotAvailable, got %v", err)
		}
	})

	t.Run("exports the stored snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)
		stored := entities.Order{ID: "ord-1", CutList: entities.CutList{TotalCost: 10}}
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(stored, nil)
		m.exporter.EXPECT().Export(stored).Return([]byte("xlsx"), nil)

		b, err := uc.ExportCutList(context.Background(), "ord-1")
		if err != nil || string(b) != "xlsx" {
			t.Fatalf("unexpected result err=%v body=%q", err, b)
		}
	})
}
