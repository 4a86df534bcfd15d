package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"wardrobe_pricing/internal/adapter/http/handlers/mocks"
	"wardrobe_pricing/internal/domain/cutlist"
	"wardrobe_pricing/internal/domain/entities"
	"wardrobe_pricing/internal/domain/geometry"
	"wardrobe_pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const wardrobeJSON = `{"width":100,"height":200,"depth":60,"panel_thickness_mm":18,"selected_material_id":"oak","selected_front_material_id":"gloss","selected_back_material_id":"hdf"}`

func newPricingRouter(uc usecase.IPricingUseCase) *gin.Engine {
	h := NewPricingHandler(uc)
	r := gin.New()
	r.POST("/v1/layouts", h.Layout)
	r.POST("/v1/quotes", h.Quote)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPricingHandler_Layout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newPricingRouter(mocks.NewMockIPricingUseCase(ctrl))

		w := postJSON(r, "/v1/layouts", `{"width":0,"height":200,"depth":60,"selected_material_id":"oak"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(uc)

		uc.EXPECT().Layout(gomock.AssignableToTypeOf(entities.WardrobeConfig{})).DoAndReturn(
			func(cfg entities.WardrobeConfig) (geometry.WardrobeLayout, error) {
				return geometry.LayoutFromConfig(cfg), nil
			},
		)

		w := postJSON(r, "/v1/layouts", wardrobeJSON)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Columns []struct {
				Compartments []struct {
					Key string `json:"key"`
				} `json:"compartments"`
			} `json:"columns"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Columns) != 1 || len(body.Columns[0].Compartments) != 1 || body.Columns[0].Compartments[0].Key != "A1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPricingHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing material maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(uc)

		uc.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(usecase.Quote{}, fmt.Errorf("%w: %w", usecase.ErrPriceCalculationFailed, cutlist.ErrMaterialNotFound))

		w := postJSON(r, "/v1/quotes", `{"config":`+wardrobeJSON+`}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "CATALOG_ITEM_NOT_FOUND" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("only visible adjustments are listed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(uc)

		total := 95.0
		uc.EXPECT().Quote(gomock.Any(), gomock.AssignableToTypeOf(usecase.QuoteInput{})).DoAndReturn(
			func(_ context.Context, in usecase.QuoteInput) (usecase.Quote, error) {
				if in.Email != "ana@example.com" || len(in.CustomerTags) != 1 || in.CustomerTags[0] != "vip" {
					t.Fatalf("unexpected input: %+v", in)
				}
				if in.Config.SelectedMaterialID != "oak" || in.Config.Width != 100 {
					t.Fatalf("unexpected config: %+v", in.Config)
				}
				return usecase.Quote{
					Adjustments: []entities.RuleAdjustment{
						{RuleID: "r1", Description: "Promo", Amount: -10, Visible: true},
						{RuleID: "r2", Description: "Margin", Amount: 5, Visible: false},
					},
					AdjustedTotal: &total,
					BaseTotal:     100,
					FinalPrice:    95,
				}, nil
			},
		)

		w := postJSON(r, "/v1/quotes", `{"config":`+wardrobeJSON+`,"email":"ana@example.com","customer_tags":[" vip ",""]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Adjustments []map[string]any `json:"adjustments"`
			FinalPrice  float64          `json:"final_price"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Adjustments) != 1 || body.Adjustments[0]["rule_id"] != "r1" || body.FinalPrice != 95 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
