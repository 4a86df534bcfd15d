package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wardrobe_pricing/internal/adapter/http/handlers/mocks"
	"wardrobe_pricing/internal/domain/entities"
	"wardrobe_pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(uc usecase.IOrderUseCase) *gin.Engine {
	h := NewOrderHandler(uc)
	r := gin.New()
	r.POST("/v1/orders", h.CreateOrder)
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/:id", h.GetOrder)
	r.GET("/v1/orders/:id/cutlist.xlsx", h.ExportCutList)
	return r
}

func getPath(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newOrderRouter(mocks.NewMockIOrderUseCase(ctrl))

		w := postJSON(r, "/v1/orders", `{"config":`+wardrobeJSON+`}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("price failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrPriceCalculationFailed)

		w := postJSON(r, "/v1/orders", `{"config":`+wardrobeJSON+`,"email":"ana@example.com"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().Confirm(gomock.Any(), gomock.AssignableToTypeOf(usecase.ConfirmOrderInput{})).DoAndReturn(
			func(_ context.Context, in usecase.ConfirmOrderInput) (entities.Order, error) {
				if in.ClientTotal == nil || *in.ClientTotal != 12.5 {
					t.Fatalf("expected client total, got %+v", in.ClientTotal)
				}
				return entities.Order{ID: "ord-1", Status: entities.OrderStatusConfirmed, FinalTotal: 91.14}, nil
			},
		)

		w := postJSON(r, "/v1/orders", `{"config":`+wardrobeJSON+`,"email":"ana@example.com","client_total":12.5}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestOrderHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, usecase.ErrOrderNotFound)

		if w := getPath(r, "/v1/orders/ord-1"); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list by email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().ListByEmail(gomock.Any(), "ana@example.com").Return([]entities.Order{{ID: "ord-1"}}, nil)

		if w := getPath(r, "/v1/orders?email=ana@example.com"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().ListByEmail(gomock.Any(), "").Return(nil, usecase.ErrInvalidEmail)

		if w := getPath(r, "/v1/orders"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ExportCutList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().ExportCutList(gomock.Any(), "ord-1").Return([]byte("PK"), nil)

		w := getPath(r, "/v1/orders/ord-1/cutlist.xlsx")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != xlsxContentType || w.Body.String() != "PK" {
			t.Fatalf("unexpected response: %v %q", w.Header(), w.Body.String())
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().ExportCutList(gomock.Any(), "ord-1").Return(nil, errors.New("boom"))

		if w := getPath(r, "/v1/orders/ord-1/cutlist.xlsx"); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
